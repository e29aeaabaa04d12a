package systems

import (
	"fmt"
	"math/rand"

	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"
	"tombs-server/pkg/rng"

	"github.com/sirupsen/logrus"
)

// TakeTurn выполняет один ход сущности id, если у нее есть мозги.
// Порядок обхода сущностей - забота движка (по порядку хранилища).
func TakeTurn(id int, store *domain.Store, world *domain.World, fov domain.FOV, log *domain.MessageLog, r *rand.Rand) {
	e := store.At(id)
	if e.AI == nil || !e.Alive {
		return
	}

	switch e.AI.Kind {
	case domain.AIBasic:
		basicTurn(id, store, world, fov, log)
	case domain.AIConfused:
		confusedTurn(id, store, world, log, r)
	}
}

// basicTurn - обычный монстр. Если игрок его видит, то и он видит игрока:
// далеко - шаг навстречу, рядом - атака (пока игрок жив).
func basicTurn(id int, store *domain.Store, world *domain.World, fov domain.FOV, log *domain.MessageLog) {
	monster := store.At(id)
	if !fov.IsVisible(monster.Pos.X, monster.Pos.Y) {
		return
	}

	player := store.Player()
	dist := monster.Pos.DistanceTo(player.Pos)

	aiLog := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"monster":   monster.Name,
		"distance":  dist,
	})

	if dist >= 2 {
		aiLog.Debug("Monster moves towards the player.")
		MoveTowards(id, player.Pos, world, store)
		return
	}
	if player.Alive && player.Fighter != nil && player.Fighter.HP > 0 {
		aiLog.Debug("Monster attacks the player.")
		Attack(id, domain.PlayerIndex, store, log)
	}
}

// confusedTurn - спутанный монстр бредет в случайную сторону и не атакует.
// Когда счетчик доходит до нуля, прежние мозги возвращаются на место.
func confusedTurn(id int, store *domain.Store, world *domain.World, log *domain.MessageLog, r *rand.Rand) {
	monster := store.At(id)

	if monster.AI.TurnsLeft > 0 {
		MoveBy(id, rng.Range(r, -1, 1), rng.Range(r, -1, 1), world, store)
		monster.AI.TurnsLeft--
	}

	if monster.AI.TurnsLeft == 0 {
		log.Add(fmt.Sprintf("The %s is no longer confused!", monster.Name), domain.ColorRed)
		monster.AI = monster.AI.Prev
	}
}
