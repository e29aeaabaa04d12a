package engine

import (
	"fmt"

	"tombs-server/internal/domain"
)

// Кривая опыта: порог следующего уровня растет линейно с уровнем персонажа.
const (
	LevelUpBase   = 200
	LevelUpFactor = 150
)

// XPToNextLevel - сколько всего опыта нужно накопить для следующего уровня.
func XPToNextLevel(charLevel int) int {
	return LevelUpBase + charLevel*LevelUpFactor
}

// checkLevelUp переводит движок в режим выбора характеристики, когда опыт
// игрока пересек порог. Сам рост применяется позже, в applyStatChoice.
func (g *Game) checkLevelUp() {
	player := g.Store.Player()
	if player.Fighter == nil || !player.Alive {
		return
	}
	if g.Phase != PhaseAwaitingInput {
		return
	}
	if player.Fighter.XP < XPToNextLevel(player.CharLevel) {
		return
	}

	g.Log.Add(fmt.Sprintf("Your battle skills grow stronger! You reached level %d!",
		player.CharLevel+1), domain.ColorYellow)
	g.Phase = PhaseLevelUp
}

// applyStatChoice применяет выбранную характеристику и возвращает движок в
// обычный режим. Излишек опыта сверх порога сохраняется к следующему уровню.
func (g *Game) applyStatChoice(stat domain.StatChoice) {
	player := g.Store.Player()
	fighter := player.Fighter

	switch stat {
	case domain.StatConstitution:
		fighter.MaxHP += 20
		fighter.HP += 20
	case domain.StatStrength:
		fighter.Power += 1
	case domain.StatAgility:
		fighter.Defense += 1
	default:
		// Невалидный выбор не засчитывается, движок продолжает ждать
		return
	}

	fighter.XP -= XPToNextLevel(player.CharLevel)
	player.CharLevel++
	g.Phase = PhaseAwaitingInput

	g.logger.WithField("char_level", player.CharLevel).Info("Player leveled up.")

	// Порог мог быть пересечен с большим запасом
	g.checkLevelUp()
}
