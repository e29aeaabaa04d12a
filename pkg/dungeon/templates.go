package dungeon

import (
	"math/rand"

	"tombs-server/internal/domain"
	"tombs-server/pkg/rng"
)

// MonsterTemplate определяет шаблон для создания монстра.
type MonsterTemplate struct {
	Name     string
	Glyph    string
	Color    string
	HP       int
	Defense  int
	Power    int
	XPReward int
}

// Spawn создает живого монстра из шаблона на заданной позиции.
func (t MonsterTemplate) Spawn(pos domain.Position) domain.Entity {
	return domain.Entity{
		Pos:    pos,
		Render: domain.RenderComponent{Glyph: t.Glyph, Color: t.Color},
		Name:   t.Name,
		Blocks: true,
		Alive:  true,
		Fighter: &domain.FighterComponent{
			MaxHP:    t.HP,
			HP:       t.HP,
			Defense:  t.Defense,
			Power:    t.Power,
			XPReward: t.XPReward,
			OnDeath:  domain.DeathMonster,
		},
		AI: &domain.AIComponent{Kind: domain.AIBasic},
	}
}

// ItemTemplate определяет шаблон для создания предмета.
type ItemTemplate struct {
	Name  string
	Glyph string
	Color string
	Kind  domain.ItemKind
}

// Spawn создает предмет из шаблона на заданной позиции.
func (t ItemTemplate) Spawn(pos domain.Position) domain.Entity {
	return domain.Entity{
		Pos:    pos,
		Render: domain.RenderComponent{Glyph: t.Glyph, Color: t.Color},
		Name:   t.Name,
		Item:   &domain.ItemComponent{Kind: t.Kind},
	}
}

// --- МОНСТРЫ ---

var Orc = MonsterTemplate{
	Name:     "orc",
	Glyph:    "o",
	Color:    "#3F7F3F",
	HP:       20,
	Defense:  0,
	Power:    4,
	XPReward: 35,
}

var Troll = MonsterTemplate{
	Name:     "troll",
	Glyph:    "T",
	Color:    "#007F00",
	HP:       30,
	Defense:  2,
	Power:    8,
	XPReward: 100,
}

// --- ПРЕДМЕТЫ ---

var HealingPotion = ItemTemplate{
	Name:  "healing potion",
	Glyph: "!",
	Color: domain.ColorViolet,
	Kind:  domain.ItemHeal,
}

var LightningScroll = ItemTemplate{
	Name:  "scroll of lightning bolt",
	Glyph: "#",
	Color: domain.ColorYellow,
	Kind:  domain.ItemLightning,
}

var FireballScroll = ItemTemplate{
	Name:  "scroll of fireball",
	Glyph: "#",
	Color: domain.ColorYellow,
	Kind:  domain.ItemFireball,
}

var ConfusionScroll = ItemTemplate{
	Name:  "scroll of confusion",
	Glyph: "#",
	Color: domain.ColorYellow,
	Kind:  domain.ItemConfuse,
}

// --- ТАБЛИЦЫ СПАВНА ---
// Ступенчатые таблицы глубины и веса выбора. Все значения передаются
// явно, глобального изменяемого состояния нет.

// MaxMonstersPerRoom - потолок числа монстров в комнате по глубине.
var MaxMonstersPerRoom = []rng.Transition{
	{Level: 1, Value: 2},
	{Level: 4, Value: 3},
	{Level: 6, Value: 5},
}

// MaxItemsPerRoom - потолок числа предметов в комнате по глубине.
var MaxItemsPerRoom = []rng.Transition{
	{Level: 1, Value: 1},
	{Level: 4, Value: 2},
}

var trollWeight = []rng.Transition{
	{Level: 3, Value: 15},
	{Level: 5, Value: 30},
	{Level: 7, Value: 60},
}

var lightningWeight = []rng.Transition{{Level: 4, Value: 25}}
var fireballWeight = []rng.Transition{{Level: 6, Value: 25}}
var confuseWeight = []rng.Transition{{Level: 2, Value: 10}}

// rollMonster выбирает шаблон монстра для данной глубины.
// ok=false, если выбор пуст (на практике орки доступны всегда).
func rollMonster(r *rand.Rand, depth int) (MonsterTemplate, bool) {
	candidates := []MonsterTemplate{Orc, Troll}
	weights := []int{
		80,
		rng.FromDungeonLevel(trollWeight, depth),
	}
	i := rng.WeightedIndex(r, weights)
	if i < 0 {
		return MonsterTemplate{}, false
	}
	return candidates[i], true
}

// rollItem выбирает шаблон предмета для данной глубины.
func rollItem(r *rand.Rand, depth int) (ItemTemplate, bool) {
	candidates := []ItemTemplate{HealingPotion, LightningScroll, FireballScroll, ConfusionScroll}
	weights := []int{
		35,
		rng.FromDungeonLevel(lightningWeight, depth),
		rng.FromDungeonLevel(fireballWeight, depth),
		rng.FromDungeonLevel(confuseWeight, depth),
	}
	i := rng.WeightedIndex(r, weights)
	if i < 0 {
		return ItemTemplate{}, false
	}
	return candidates[i], true
}
