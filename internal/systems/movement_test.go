package systems

import (
	"testing"

	"tombs-server/internal/domain"
)

func TestIsBlocked(t *testing.T) {
	world := createTestWorld(10, 10)
	world.Tiles[3][3].Blocked = true

	store := domain.NewStore(testPlayer(5, 5))
	corpse := domain.NewEntity(6, 6, "%", "remains of orc", domain.ColorDarkRed, false)
	store.Add(corpse)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"open tile", 1, 1, false},
		{"wall", 3, 3, true},
		{"blocking entity", 5, 5, true},
		{"non-blocking entity", 6, 6, false},
		{"out of bounds", -1, 0, true},
		{"past the far edge", 10, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlocked(tt.x, tt.y, world, store); got != tt.expected {
				t.Errorf("IsBlocked(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestMoveBy(t *testing.T) {
	world := createTestWorld(10, 10)
	world.Tiles[5][6].Blocked = true

	t.Run("steps onto a free tile", func(t *testing.T) {
		store := domain.NewStore(testPlayer(5, 5))
		MoveBy(domain.PlayerIndex, 0, -1, world, store)

		if pos := store.Player().Pos; pos.X != 5 || pos.Y != 4 {
			t.Errorf("Expected (5,4), got %+v", pos)
		}
	})

	t.Run("blocked destination is a no-op", func(t *testing.T) {
		store := domain.NewStore(testPlayer(5, 5))
		MoveBy(domain.PlayerIndex, 1, 0, world, store) // (6,5) - стена

		if pos := store.Player().Pos; pos.X != 5 || pos.Y != 5 {
			t.Errorf("Expected the player to stay at (5,5), got %+v", pos)
		}
	})
}

func TestMoveTowards(t *testing.T) {
	world := createTestWorld(20, 20)

	t.Run("takes a diagonal step on a diagonal vector", func(t *testing.T) {
		store := domain.NewStore(testPlayer(18, 18))
		id := store.Add(testOrc(5, 5))

		MoveTowards(id, store.Player().Pos, world, store)

		if pos := store.At(id).Pos; pos.X != 6 || pos.Y != 6 {
			t.Errorf("Expected (6,6), got %+v", pos)
		}
	})

	t.Run("zero distance is a no-op", func(t *testing.T) {
		store := domain.NewStore(testPlayer(18, 18))
		id := store.Add(testOrc(5, 5))

		MoveTowards(id, domain.Position{X: 5, Y: 5}, world, store)

		if pos := store.At(id).Pos; pos.X != 5 || pos.Y != 5 {
			t.Errorf("Expected the orc to stay put, got %+v", pos)
		}
	})
}
