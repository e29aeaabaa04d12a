package systems

import (
	"fmt"

	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Attack разрешает атаку attacker -> defender по паре индексов.
// Урон = power атакующего минус defense защищающегося, не ниже нуля.
// XP за убийство зачисляется атакующему, только если атакует игрок.
func Attack(attackerID, defenderID int, store *domain.Store, log *domain.MessageLog) {
	attacker, defender := store.MutTwo(attackerID, defenderID)

	combatLog := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"attacker":  attacker.Name,
		"defender":  defender.Name,
	})

	damage := attacker.Fighter.Power - defender.Fighter.Defense
	if damage <= 0 {
		log.Add(fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, defender.Name), domain.ColorWhite)
		combatLog.Debug("Attack had no effect.")
		return
	}

	log.Add(fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, defender.Name, damage), domain.ColorWhite)
	xp := ApplyDamage(defender, damage, log)

	// Смерть монстра снимает Fighter, поэтому hp читаем с оглядкой
	hpAfter := 0
	if defender.Fighter != nil {
		hpAfter = defender.Fighter.HP
	}
	combatLog.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_after":    hpAfter,
		"xp_rewarded": xp,
	}).Info("Attack resolved.")

	if xp > 0 && attackerID == domain.PlayerIndex {
		attacker.Fighter.XP += xp
	}
}

// ApplyDamage - нижележащий примитив урона без учета атакующего (ловушки,
// заклинания по площади). Возвращает XPReward жертвы, если именно этот
// урон ее убил; начисление XP остается на совести вызывающего кода.
//
// Переход Alive=false и сработка OnDeath происходят ровно один раз:
// повторный урон по трупу - no-op.
func ApplyDamage(e *domain.Entity, damage int, log *domain.MessageLog) int {
	if e.Fighter == nil || !e.Alive {
		return 0
	}
	if damage > 0 {
		e.Fighter.HP -= damage
	}
	if e.Fighter.HP > 0 {
		return 0
	}
	return kill(e, log)
}

// kill выполняет смертельный переход согласно варианту OnDeath.
func kill(e *domain.Entity, log *domain.MessageLog) int {
	e.Alive = false

	switch e.Fighter.OnDeath {
	case domain.DeathPlayer:
		// Конец игры фиксирует движок, наблюдая погасший Alive игрока
		log.Add("You died!", domain.ColorRed)
		e.Render.Glyph = "%"
		e.Render.Color = domain.ColorDarkRed
		return 0

	case domain.DeathMonster:
		xp := e.Fighter.XPReward
		log.Add(fmt.Sprintf("%s is dead! You gain %d experience points.", e.Name, xp), domain.ColorOrange)
		// Труп: не блокирует, не дерется, не думает
		e.Render.Glyph = "%"
		e.Render.Color = domain.ColorDarkRed
		e.Blocks = false
		e.Fighter = nil
		e.AI = nil
		e.Name = "remains of " + e.Name
		return xp
	}
	return 0
}
