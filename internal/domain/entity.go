package domain

// Entity - единственный тип игрового объекта: игрок, монстр, предмет, лестница.
// Компоненты-указатели опциональны (nil - свойство отсутствует); сущность
// без компонентов - инертная декорация.
type Entity struct {
	Pos    Position        `json:"pos"`
	Render RenderComponent `json:"render"`
	Name   string          `json:"name"`

	// Blocks - занимает ли клетку целиком (сквозь нее нельзя пройти).
	Blocks bool `json:"blocks"`
	// Alive гаснет ровно один раз, при срабатывании OnDeath.
	Alive bool `json:"alive"`
	// AlwaysVisible - рисовать на исследованных клетках даже вне FOV (лестница).
	AlwaysVisible bool `json:"alwaysVisible,omitempty"`

	// CharLevel - уровень персонажа. Используется только игроком.
	CharLevel int `json:"charLevel,omitempty"`

	Fighter *FighterComponent `json:"fighter,omitempty"`
	AI      *AIComponent      `json:"ai,omitempty"`
	Item    *ItemComponent    `json:"item,omitempty"`
}

// NewEntity создает сущность без компонентов.
func NewEntity(x, y int, glyph, name, color string, blocks bool) Entity {
	return Entity{
		Pos:    Position{X: x, Y: y},
		Render: RenderComponent{Glyph: glyph, Color: color},
		Name:   name,
		Blocks: blocks,
	}
}
