package systems

import (
	"fmt"

	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"
)

// Параметры заклинаний
const (
	HealAmount = 40

	LightningDamage = 40
	LightningRange  = 5

	ConfuseRange    = 8
	ConfuseNumTurns = 10

	FireballRadius = 3
	FireballDamage = 25
)

// UseResult - исход применения предмета.
type UseResult uint8

const (
	// UseConsumed - эффект сработал, предмет уничтожается.
	UseConsumed UseResult = iota
	// UseCancelled - выбор цели не дал ничего пригодного или игрок
	// отменил прицеливание; предмет остается в инвентаре, состояние
	// мира не изменено.
	UseCancelled
)

// CastHeal восстанавливает HealAmount здоровья кастеру, не выше максимума.
func CastHeal(store *domain.Store, log *domain.MessageLog) UseResult {
	player := store.Player()
	if player.Fighter.HP == player.Fighter.MaxHP {
		log.Add("You are already at full health.", domain.ColorRed)
		return UseCancelled
	}
	log.Add("Your wounds start to feel better!", domain.ColorLightViolet)
	player.Fighter.Heal(HealAmount)
	return UseConsumed
}

// CastLightning бьет ближайшего видимого врага в пределах LightningRange.
// Урон идет через Attack-путь начисления XP: убийство засчитывается кастеру.
func CastLightning(store *domain.Store, fov domain.FOV, log *domain.MessageLog) UseResult {
	id, ok := ClosestMonster(LightningRange, store, fov)
	if !ok {
		log.Add("No enemy is close enough to strike.", domain.ColorRed)
		return UseCancelled
	}

	target := store.At(id)
	log.Add(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		target.Name, LightningDamage), domain.ColorLightBlue)

	xp := ApplyDamage(target, LightningDamage, log)
	if xp > 0 {
		store.Player().Fighter.XP += xp
	}
	return UseConsumed
}

// CastFireball просит игрока выбрать видимую клетку и выжигает все живое в
// радиусе FireballRadius от нее, включая самого кастера. XP накапливается
// по жертвам отдельно и зачисляется кастеру одной суммой после прохода -
// убийство самого себя в зачет не идет.
func CastFireball(store *domain.Store, fov domain.FOV, sel TileSelector, log *domain.MessageLog) UseResult {
	log.Add("Left-click a target tile for the fireball, or right-click to cancel.", domain.ColorLightCyan)

	center, ok := sel.SelectTile(0)
	if !ok {
		return UseCancelled
	}
	if !fov.IsVisible(center.X, center.Y) {
		// Прицел за пределами видимости недействителен
		logger.WithComponent("spell_system").Warn("Fireball target outside the field of view, cancelled.")
		return UseCancelled
	}

	log.Add(fmt.Sprintf("The fireball explodes, burning everything within %d tiles!", FireballRadius), domain.ColorOrange)

	// Сначала собираем задетых, потом наносим урон: список жертв не должен
	// меняться по ходу самого прохода.
	var burned []int
	for i := 0; i < store.Len(); i++ {
		e := store.At(i)
		if e.Fighter != nil && e.Alive && e.Pos.DistanceTo(center) <= FireballRadius {
			burned = append(burned, i)
		}
	}

	xpGained := 0
	for _, id := range burned {
		e := store.At(id)
		log.Add(fmt.Sprintf("The %s gets burned for %d hit points.", e.Name, FireballDamage), domain.ColorOrange)
		xp := ApplyDamage(e, FireballDamage, log)
		if id != domain.PlayerIndex {
			xpGained += xp
		}
	}

	if xpGained > 0 {
		player := store.Player()
		if player.Fighter != nil {
			player.Fighter.XP += xpGained
		}
	}
	return UseConsumed
}

// CastConfuse подменяет мозги ближайшего видимого врага на "спутанные",
// сохранив прежние для восстановления. Урона не наносит.
func CastConfuse(store *domain.Store, fov domain.FOV, log *domain.MessageLog) UseResult {
	id, ok := ClosestMonster(ConfuseRange, store, fov)
	if !ok {
		log.Add("No enemy is close enough to confuse.", domain.ColorRed)
		return UseCancelled
	}

	target := store.At(id)
	target.AI = domain.Confuse(target.AI, ConfuseNumTurns)
	log.Add(fmt.Sprintf("The eyes of the %s look vacant, as he starts to stumble around!", target.Name), domain.ColorGreen)
	return UseConsumed
}
