package domain

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент). Ядро эти поля не интерпретирует,
// оно лишь прокидывает их рендереру.
type RenderComponent struct {
	Glyph string `json:"glyph"` // Символ отображения (o-орк, !-зелье, @-игрок)
	Color string `json:"color"`
}

// DeathKind выбирает поведение при смерти. Это данные, а не указатель на
// функцию: снапшот с кодом внутри не сериализуется.
type DeathKind uint8

const (
	DeathMonster DeathKind = iota
	DeathPlayer
)

// FighterComponent - Характеристики существа, способного наносить и получать урон.
type FighterComponent struct {
	MaxHP   int `json:"maxHp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`

	// XPReward выдается убийце, XP копится у игрока.
	XPReward int `json:"xpReward"`
	XP       int `json:"xp"`

	OnDeath DeathKind `json:"onDeath"`
}

// Heal лечит существо, не превышая максимум.
func (f *FighterComponent) Heal(amount int) {
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
}

// AIKind - вариант поведения.
type AIKind uint8

const (
	AIBasic AIKind = iota
	AIConfused
)

// AIComponent - Мозги. Вариант Confused владеет копией прежнего поведения,
// чтобы восстановить его, когда эффект кончится.
type AIComponent struct {
	Kind      AIKind       `json:"kind"`
	Prev      *AIComponent `json:"prev,omitempty"`
	TurnsLeft int          `json:"turnsLeft,omitempty"`
}

// Confuse оборачивает текущее поведение в "спутанное" на turns ходов.
func Confuse(prev *AIComponent, turns int) *AIComponent {
	return &AIComponent{
		Kind:      AIConfused,
		Prev:      prev,
		TurnsLeft: turns,
	}
}

// ItemKind - закрытый набор предметов.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemLightning
	ItemFireball
	ItemConfuse
)

// ItemComponent делает сущность подбираемой и применимой из инвентаря.
type ItemComponent struct {
	Kind ItemKind `json:"kind"`
}
