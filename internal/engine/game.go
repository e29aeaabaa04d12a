// Package engine связывает мир, хранилище сущностей и системы в пошаговую
// игровую сессию: один вызов Step - один опрос ввода игрока.
package engine

import (
	"math/rand"

	"tombs-server/internal/domain"
	"tombs-server/pkg/dungeon"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	// TorchRadius - радиус факела игрока для FOV.
	TorchRadius = 10
	// InventoryCapacity - предел инвентаря (по числу букв алфавита).
	InventoryCapacity = 26
)

// Phase - режим ожидания движка: какой вид Intent он готов принять.
type Phase uint8

const (
	// PhaseAwaitingInput - обычный игровой ход.
	PhaseAwaitingInput Phase = iota
	// PhaseLevelUp - движок ждет исключительно выбора характеристики;
	// все прочие намерения отвергаются без побочных эффектов.
	PhaseLevelUp
	// PhaseGameOver - игрок мертв, состояние заморожено для осмотра.
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseAwaitingInput: "AWAITING_INPUT",
	PhaseLevelUp:       "LEVEL_UP",
	PhaseGameOver:      "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// FOVFactory создает службу видимости для свежесгенерированного мира.
// Движок зовет ее на старте и при каждом спуске.
type FOVFactory func(*domain.World) domain.FOV

// Game - полное состояние одной игровой сессии.
type Game struct {
	World        *domain.World
	Store        *domain.Store
	Log          *domain.MessageLog
	Inventory    []domain.Entity
	DungeonLevel int
	Phase        Phase

	fov        domain.FOV
	newFOV     FOVFactory
	rng        *rand.Rand
	seed       int64
	dungeonCfg dungeon.Config

	logger *logrus.Entry
}

// NewGame создает сессию: генерирует первый уровень, сажает игрока в
// стартовую комнату и приветствует его.
func NewGame(seed int64, cfg dungeon.Config, newFOV FOVFactory) (*Game, error) {
	g := &Game{
		Log:          &domain.MessageLog{},
		DungeonLevel: 1,
		newFOV:       newFOV,
		rng:          rand.New(rand.NewSource(seed)),
		seed:         seed,
		dungeonCfg:   cfg,
		logger:       logger.WithComponent("engine"),
	}

	lvl, err := dungeon.Generate(g.DungeonLevel, cfg, g.rng)
	if err != nil {
		return nil, err
	}

	player := domain.NewEntity(lvl.PlayerStart.X, lvl.PlayerStart.Y, "@", "player", domain.ColorWhite, true)
	player.Alive = true
	player.CharLevel = 1
	player.Fighter = &domain.FighterComponent{
		MaxHP:   100,
		HP:      100,
		Defense: 1,
		Power:   4,
		OnDeath: domain.DeathPlayer,
	}

	g.World = lvl.World
	g.Store = domain.NewStore(player)
	for _, e := range lvl.Entities {
		g.Store.Add(e)
	}

	g.fov = newFOV(g.World)
	g.refreshFOV()

	g.Log.Add("Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings.", domain.ColorRed)

	g.logger.WithFields(logrus.Fields{
		"seed":     seed,
		"rooms":    len(lvl.Rooms),
		"entities": g.Store.Len(),
	}).Info("New game created.")

	return g, nil
}

// FOV отдает текущую службу видимости (рендереру и заклинаниям).
func (g *Game) FOV() domain.FOV {
	return g.fov
}

// Seed - зерно генерации этой сессии.
func (g *Game) Seed() int64 {
	return g.seed
}

// refreshFOV пересчитывает видимость из позиции игрока и навсегда помечает
// увиденные клетки исследованными.
func (g *Game) refreshFOV() {
	player := g.Store.Player()
	g.fov.Recompute(player.Pos, TorchRadius, true)

	for y := 0; y < g.World.Height; y++ {
		for x := 0; x < g.World.Width; x++ {
			if g.fov.IsVisible(x, y) {
				g.World.Tiles[y][x].Explored = true
			}
		}
	}
}

// descend переводит игрока на следующий уровень: короткая передышка
// (лечение на половину максимума), новый мир, прежний инвентарь.
func (g *Game) descend() error {
	player := g.Store.Player()

	g.Log.Add("You take a moment to rest, and recover your strength.", domain.ColorViolet)
	player.Fighter.Heal(player.Fighter.MaxHP / 2)

	g.Log.Add("After a rare moment of peace, you descend deeper into the heart of the dungeon...", domain.ColorRed)
	g.DungeonLevel++

	lvl, err := dungeon.Generate(g.DungeonLevel, g.dungeonCfg, g.rng)
	if err != nil {
		return err
	}

	// Прошлый уровень выбрасывается целиком, выживает только игрок
	g.Store.Truncate(1)
	g.World = lvl.World
	player = g.Store.Player()
	player.Pos = lvl.PlayerStart
	for _, e := range lvl.Entities {
		g.Store.Add(e)
	}

	g.fov = g.newFOV(g.World)
	g.refreshFOV()

	g.logger.WithFields(logrus.Fields{
		"dungeon_level": g.DungeonLevel,
		"entities":      g.Store.Len(),
	}).Info("Player descended to a new level.")
	return nil
}
