package systems

import (
	"os"
	"testing"

	"tombs-server/internal/domain"
	"tombs-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// createTestWorld builds a fully open walkable grid.
func createTestWorld(w, h int) *domain.World {
	world := domain.NewWorld(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			world.Tiles[y][x].Blocked = false
			world.Tiles[y][x].BlockSight = false
		}
	}
	return world
}

// allVisible is a FOV stub where every tile is lit.
type allVisible struct{}

func (allVisible) Recompute(domain.Position, int, bool) {}
func (allVisible) IsVisible(int, int) bool              { return true }

// noneVisible is a FOV stub where nothing is lit.
type noneVisible struct{}

func (noneVisible) Recompute(domain.Position, int, bool) {}
func (noneVisible) IsVisible(int, int) bool              { return false }

func testPlayer(x, y int) domain.Entity {
	p := domain.NewEntity(x, y, "@", "player", domain.ColorWhite, true)
	p.Alive = true
	p.CharLevel = 1
	p.Fighter = &domain.FighterComponent{
		MaxHP: 100, HP: 100, Defense: 1, Power: 4,
		OnDeath: domain.DeathPlayer,
	}
	return p
}

func testOrc(x, y int) domain.Entity {
	o := domain.NewEntity(x, y, "o", "orc", "#3F7F3F", true)
	o.Alive = true
	o.Fighter = &domain.FighterComponent{
		MaxHP: 20, HP: 20, Defense: 0, Power: 4, XPReward: 35,
		OnDeath: domain.DeathMonster,
	}
	o.AI = &domain.AIComponent{Kind: domain.AIBasic}
	return o
}
