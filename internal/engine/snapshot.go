package engine

import (
	"math/rand"

	"tombs-server/internal/domain"
	"tombs-server/pkg/dungeon"
	"tombs-server/pkg/logger"
)

// Snapshot - сериализуемый срез сессии. Видимость в него не входит:
// она геометрически выводима из мира и позиции игрока и пересчитывается
// при восстановлении.
type Snapshot struct {
	Seed         int64              `json:"seed"`
	DungeonLevel int                `json:"dungeonLevel"`
	Phase        Phase              `json:"phase"`
	World        *domain.World      `json:"world"`
	Entities     []domain.Entity    `json:"entities"`
	Inventory    []domain.Entity    `json:"inventory"`
	Log          *domain.MessageLog `json:"log"`
}

// Snapshot снимает состояние сессии для сохранения.
func (g *Game) Snapshot() *Snapshot {
	return &Snapshot{
		Seed:         g.seed,
		DungeonLevel: g.DungeonLevel,
		Phase:        g.Phase,
		World:        g.World,
		Entities:     g.Store.Entities,
		Inventory:    g.Inventory,
		Log:          g.Log,
	}
}

// RestoreGame поднимает сессию из снапшота. Поток случайных чисел при этом
// начинается заново от зерна: воспроизводимость прерванной партии не
// обещается, только ее состояние.
func RestoreGame(snap *Snapshot, cfg dungeon.Config, newFOV FOVFactory) *Game {
	g := &Game{
		World:        snap.World,
		Store:        &domain.Store{Entities: snap.Entities},
		Log:          snap.Log,
		Inventory:    snap.Inventory,
		DungeonLevel: snap.DungeonLevel,
		Phase:        snap.Phase,
		newFOV:       newFOV,
		rng:          rand.New(rand.NewSource(snap.Seed + int64(snap.DungeonLevel))),
		seed:         snap.Seed,
		dungeonCfg:   cfg,
		logger:       logger.WithComponent("engine"),
	}
	if g.Log == nil {
		g.Log = &domain.MessageLog{}
	}

	g.fov = newFOV(g.World)
	g.refreshFOV()
	return g
}
