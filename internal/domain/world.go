package domain

// Tile - клетка карты. Создается стеной; генератор вырубает в ней комнаты
// и коридоры. Explored взводится навсегда, как только клетка попала в FOV.
type Tile struct {
	Blocked    bool `json:"blocked"`
	BlockSight bool `json:"blockSight"`
	Explored   bool `json:"explored"`
}

// WallTile возвращает непроходимую, непрозрачную клетку.
func WallTile() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// World - тайловая сетка одного уровня подземелья. При спуске заменяется
// целиком, планировка предыдущего уровня не сохраняется.
type World struct {
	Tiles  [][]Tile `json:"tiles"` // [y][x]
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

// NewWorld создает мир, целиком заполненный стенами.
func NewWorld(width, height int) *World {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = WallTile()
		}
		tiles[y] = row
	}
	return &World{Tiles: tiles, Width: width, Height: height}
}

func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// At возвращает изменяемый взгляд на клетку.
func (w *World) At(x, y int) *Tile {
	return &w.Tiles[y][x]
}

// FOV - внешняя геометрическая служба видимости. Ядро ее потребляет,
// но не реализует.
type FOV interface {
	// Recompute пересчитывает видимость из новой точки обзора.
	Recompute(origin Position, radius int, lightWalls bool)
	// IsVisible отвечает, видна ли клетка из текущей точки обзора.
	IsVisible(x, y int) bool
}
