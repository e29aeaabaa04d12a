package engine

import (
	"fmt"

	"tombs-server/internal/domain"
	"tombs-server/internal/systems"

	"github.com/sirupsen/logrus"
)

// Step продвигает игру на одно намерение игрока. Если намерение потратило
// ход, свой ход получают и все монстры. sel нужен только прицельным
// заклинаниям; для остальных намерений допустим nil.
func (g *Game) Step(intent domain.Intent, sel systems.TileSelector) error {
	switch g.Phase {
	case PhaseGameOver:
		// Мертвые ходов не делают
		return nil
	case PhaseLevelUp:
		if intent.Kind == domain.IntentChooseStat {
			g.applyStatChoice(intent.Stat)
		}
		return nil
	}

	tookTurn, err := g.playerTurn(intent, sel)
	if err != nil {
		return err
	}

	if tookTurn && g.Store.Player().Alive {
		g.monsterTurns()
	}

	g.checkLevelUp()

	if !g.Store.Player().Alive {
		g.Phase = PhaseGameOver
		g.logger.Info("Game over: the player has died.")
	}
	return nil
}

// playerTurn исполняет намерение. Возвращает true, если ход потрачен и
// монстры получают право действовать.
func (g *Game) playerTurn(intent domain.Intent, sel systems.TileSelector) (bool, error) {
	switch intent.Kind {
	case domain.IntentMove:
		g.moveOrAttack(intent.Dx, intent.Dy)
		return true, nil

	case domain.IntentWait:
		// Сознательный пропуск хода - тоже ход
		return true, nil

	case domain.IntentPickup:
		g.pickup()
		return false, nil

	case domain.IntentUseItem:
		return g.useItem(intent.Slot, sel), nil

	case domain.IntentDropItem:
		g.dropItem(intent.Slot)
		return false, nil

	case domain.IntentDescend:
		player := g.Store.Player()
		if _, ok := g.entityAt(player.Pos, isStairs); ok {
			return false, g.descend()
		}
		return false, nil
	}
	return false, nil
}

// moveOrAttack: шаг в сторону (dx, dy) либо атака, если клетка занята
// живым бойцом.
func (g *Game) moveOrAttack(dx, dy int) {
	player := g.Store.Player()
	prev := player.Pos
	dest := prev.Shift(dx, dy)

	if target, ok := g.entityAt(dest, func(e *domain.Entity) bool {
		return e.Fighter != nil && e.Alive
	}); ok {
		systems.Attack(domain.PlayerIndex, target, g.Store, g.Log)
		return
	}

	systems.MoveBy(domain.PlayerIndex, dx, dy, g.World, g.Store)
	if player.Pos != prev {
		// Игрок сдвинулся - видимость устарела
		g.refreshFOV()
	}
}

// entityAt ищет первую сущность на клетке pos, проходящую фильтр.
// Игрок в поиске не участвует.
func (g *Game) entityAt(pos domain.Position, match func(*domain.Entity) bool) (int, bool) {
	for i := 1; i < g.Store.Len(); i++ {
		e := g.Store.At(i)
		if e.Pos == pos && match(e) {
			return i, true
		}
	}
	return 0, false
}

func isStairs(e *domain.Entity) bool {
	return e.AlwaysVisible && e.Item == nil && e.Fighter == nil
}

// pickup перекладывает предмет из-под ног игрока в инвентарь.
// Ход не тратится в любом исходе.
func (g *Game) pickup() {
	player := g.Store.Player()
	idx, ok := g.entityAt(player.Pos, func(e *domain.Entity) bool {
		return e.Item != nil
	})
	if !ok {
		return
	}

	if len(g.Inventory) >= InventoryCapacity {
		g.Log.Add(fmt.Sprintf("Your inventory is full, cannot pick up %s.", g.Store.At(idx).Name), domain.ColorRed)
		return
	}

	item := g.Store.SwapRemove(idx)
	g.Log.Add(fmt.Sprintf("You picked up a %s!", item.Name), domain.ColorGreen)
	g.Inventory = append(g.Inventory, item)
}

// useItem применяет предмет из слота инвентаря. Ход тратится, только если
// эффект действительно сработал; отмененное прицеливание бесплатно.
func (g *Game) useItem(slot int, sel systems.TileSelector) bool {
	if slot < 0 || slot >= len(g.Inventory) {
		return false
	}
	item := &g.Inventory[slot]
	if item.Item == nil {
		g.Log.Add(fmt.Sprintf("The %s cannot be used.", item.Name), domain.ColorWhite)
		return false
	}

	var result systems.UseResult
	switch item.Item.Kind {
	case domain.ItemHeal:
		result = systems.CastHeal(g.Store, g.Log)
	case domain.ItemLightning:
		result = systems.CastLightning(g.Store, g.fov, g.Log)
	case domain.ItemFireball:
		result = systems.CastFireball(g.Store, g.fov, sel, g.Log)
	case domain.ItemConfuse:
		result = systems.CastConfuse(g.Store, g.fov, g.Log)
	}

	switch result {
	case systems.UseConsumed:
		// Порядок остальных слотов сохраняется
		g.Inventory = append(g.Inventory[:slot], g.Inventory[slot+1:]...)
		return true
	default:
		g.Log.Add("Cancelled", domain.ColorWhite)
		return false
	}
}

// dropItem возвращает предмет из инвентаря на клетку игрока.
func (g *Game) dropItem(slot int) {
	if slot < 0 || slot >= len(g.Inventory) {
		return
	}
	item := g.Inventory[slot]
	g.Inventory = append(g.Inventory[:slot], g.Inventory[slot+1:]...)

	item.Pos = g.Store.Player().Pos
	g.Store.Add(item)
	g.Log.Add(fmt.Sprintf("You dropped a %s.", item.Name), domain.ColorYellow)
}

// monsterTurns дает ход каждой думающей сущности в порядке хранилища.
func (g *Game) monsterTurns() {
	for i := 1; i < g.Store.Len(); i++ {
		systems.TakeTurn(i, g.Store, g.World, g.fov, g.Log, g.rng)
	}

	player := g.Store.Player()
	g.logger.WithFields(logrus.Fields{
		"player_hp": playerHP(player),
		"alive":     player.Alive,
	}).Debug("Monster turns resolved.")
}

func playerHP(p *domain.Entity) int {
	if p.Fighter == nil {
		return 0
	}
	return p.Fighter.HP
}
