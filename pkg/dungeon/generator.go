// Package dungeon генерирует уровни: комнаты, коридоры и их наполнение,
// масштабируемое глубиной подземелья.
package dungeon

import (
	"errors"
	"math/rand"

	"tombs-server/internal/domain"
	"tombs-server/pkg/rng"
)

// Config - параметры генерации. Передаются явно, чтобы тесты могли
// задавать детерминированные, в том числе патологические, условия.
type Config struct {
	Width       int
	Height      int
	MaxRooms    int // бюджет ПОПЫТОК размещения, не гарантированное число комнат
	RoomMinSize int
	RoomMaxSize int
}

// DefaultConfig возвращает параметры классического подземелья.
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      43,
		MaxRooms:    30,
		RoomMinSize: 6,
		RoomMaxSize: 10,
	}
}

// Бюджет полных перезапусков, если ни одна комната не разместилась.
// При разумных размерах сетки срабатывает первый же проход.
const maxRestarts = 5

// ErrNoRooms - за все перезапуски не принята ни одна комната: сетка
// слишком мала относительно размеров комнат.
var ErrNoRooms = errors.New("dungeon: no rooms could be placed")

// Level - результат генерации одного уровня.
type Level struct {
	World       *domain.World
	Entities    []domain.Entity // монстры, предметы и лестница
	PlayerStart domain.Position // центр первой принятой комнаты
	Stairs      domain.Position // центр последней принятой комнаты
	Rooms       []Rect          // нужны только генерации и тестам инвариантов
}

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects - тест пересечения с включенными границами: комнаты,
// касающиеся стенами, тоже считаются пересекающимися.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Generate создает новый уровень глубины depth.
func Generate(depth int, cfg Config, r *rand.Rand) (*Level, error) {
	for restart := 0; restart < maxRestarts; restart++ {
		lvl := generate(depth, cfg, r)
		if len(lvl.Rooms) > 0 {
			return lvl, nil
		}
	}
	return nil, ErrNoRooms
}

func generate(depth int, cfg Config, r *rand.Rand) *Level {
	world := domain.NewWorld(cfg.Width, cfg.Height)
	lvl := &Level{World: world}

	for i := 0; i < cfg.MaxRooms; i++ {
		// Случайные размеры и позиция, не выходящие за границы карты
		w := rng.Range(r, cfg.RoomMinSize, cfg.RoomMaxSize)
		h := rng.Range(r, cfg.RoomMinSize, cfg.RoomMaxSize)
		if cfg.Width-w-1 < 0 || cfg.Height-h-1 < 0 {
			continue // комната физически не влезает
		}
		x := rng.Range(r, 0, cfg.Width-w-1)
		y := rng.Range(r, 0, cfg.Height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range lvl.Rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		carveRoom(world, newRoom)
		placeContents(newRoom, world, lvl, depth, r)

		cx, cy := newRoom.Center()
		if len(lvl.Rooms) == 0 {
			// Первая комната - стартовая позиция игрока
			lvl.PlayerStart = domain.Position{X: cx, Y: cy}
		} else {
			// Соединяем с предыдущей комнатой L-образным коридором.
			// Порядок осей случаен и влияет только на форму коридора.
			prevX, prevY := lvl.Rooms[len(lvl.Rooms)-1].Center()
			if r.Intn(2) == 0 {
				carveHCorridor(world, prevX, cx, prevY)
				carveVCorridor(world, prevY, cy, cx)
			} else {
				carveVCorridor(world, prevY, cy, prevX)
				carveHCorridor(world, prevX, cx, cy)
			}
		}

		lvl.Rooms = append(lvl.Rooms, newRoom)
	}

	if len(lvl.Rooms) == 0 {
		return lvl
	}

	// Лестница вниз - в центре последней принятой комнаты
	lx, ly := lvl.Rooms[len(lvl.Rooms)-1].Center()
	lvl.Stairs = domain.Position{X: lx, Y: ly}
	stairs := domain.NewEntity(lx, ly, "<", "stairs", domain.ColorWhite, false)
	stairs.AlwaysVisible = true
	lvl.Entities = append(lvl.Entities, stairs)

	return lvl
}

// placeContents населяет комнату монстрами и предметами согласно
// таблицам спавна, масштабированным глубиной.
func placeContents(room Rect, world *domain.World, lvl *Level, depth int, r *rand.Rand) {
	maxMonsters := rng.FromDungeonLevel(MaxMonstersPerRoom, depth)
	numMonsters := rng.Range(r, 0, maxMonsters)

	for i := 0; i < numMonsters; i++ {
		pos := randomSpot(room, r)
		if isOccupied(pos, world, lvl.Entities) {
			continue
		}
		if tmpl, ok := rollMonster(r, depth); ok {
			lvl.Entities = append(lvl.Entities, tmpl.Spawn(pos))
		}
	}

	maxItems := rng.FromDungeonLevel(MaxItemsPerRoom, depth)
	numItems := rng.Range(r, 0, maxItems)

	for i := 0; i < numItems; i++ {
		pos := randomSpot(room, r)
		if isOccupied(pos, world, lvl.Entities) {
			continue
		}
		if tmpl, ok := rollItem(r, depth); ok {
			lvl.Entities = append(lvl.Entities, tmpl.Spawn(pos))
		}
	}
}

func randomSpot(room Rect, r *rand.Rand) domain.Position {
	return domain.Position{
		X: rng.Range(r, room.X+1, room.X+room.W-1),
		Y: rng.Range(r, room.Y+1, room.Y+room.H-1),
	}
}

func isOccupied(pos domain.Position, world *domain.World, entities []domain.Entity) bool {
	if world.At(pos.X, pos.Y).Blocked {
		return true
	}
	for i := range entities {
		if entities[i].Blocks && entities[i].Pos == pos {
			return true
		}
	}
	return false
}

// --- Вырубание ---

func carveRoom(world *domain.World, room Rect) {
	// Внутренность комнаты, граница остается стеной
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			world.Tiles[y][x].Blocked = false
			world.Tiles[y][x].BlockSight = false
		}
	}
}

func carveHCorridor(world *domain.World, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		world.Tiles[y][x].Blocked = false
		world.Tiles[y][x].BlockSight = false
	}
}

func carveVCorridor(world *domain.World, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		world.Tiles[y][x].Blocked = false
		world.Tiles[y][x].BlockSight = false
	}
}
