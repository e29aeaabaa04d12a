package fov

import (
	"testing"

	"tombs-server/internal/domain"
)

// openWorld builds a world that is entirely walkable and transparent.
func openWorld(w, h int) *domain.World {
	world := domain.NewWorld(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			world.Tiles[y][x].Blocked = false
			world.Tiles[y][x].BlockSight = false
		}
	}
	return world
}

func TestRecompute(t *testing.T) {
	t.Run("origin is always visible", func(t *testing.T) {
		m := New(openWorld(20, 20))
		m.Recompute(domain.Position{X: 10, Y: 10}, 5, true)

		if !m.IsVisible(10, 10) {
			t.Fatal("Origin must be visible")
		}
	})

	t.Run("open space within radius is visible", func(t *testing.T) {
		m := New(openWorld(20, 20))
		m.Recompute(domain.Position{X: 10, Y: 10}, 5, true)

		if !m.IsVisible(13, 10) {
			t.Error("Tile 3 steps away should be visible")
		}
		if !m.IsVisible(10, 7) {
			t.Error("Tile 3 steps up should be visible")
		}
	})

	t.Run("tiles beyond radius stay dark", func(t *testing.T) {
		m := New(openWorld(40, 40))
		m.Recompute(domain.Position{X: 20, Y: 20}, 5, true)

		if m.IsVisible(30, 20) {
			t.Error("Tile 10 steps away must not be visible with radius 5")
		}
	})

	t.Run("wall casts a shadow", func(t *testing.T) {
		world := openWorld(20, 20)
		// Стена прямо справа от наблюдателя
		world.Tiles[10][12].BlockSight = true
		world.Tiles[10][12].Blocked = true

		m := New(world)
		m.Recompute(domain.Position{X: 10, Y: 10}, 8, true)

		if !m.IsVisible(12, 10) {
			t.Error("The wall itself should be lit with lightWalls=true")
		}
		if m.IsVisible(14, 10) {
			t.Error("Tile directly behind the wall must be shadowed")
		}
	})

	t.Run("lightWalls=false hides opaque tiles", func(t *testing.T) {
		world := openWorld(20, 20)
		world.Tiles[10][12].BlockSight = true

		m := New(world)
		m.Recompute(domain.Position{X: 10, Y: 10}, 8, false)

		if m.IsVisible(12, 10) {
			t.Error("Opaque tile must not be lit with lightWalls=false")
		}
	})

	t.Run("recompute from a new origin drops stale visibility", func(t *testing.T) {
		m := New(openWorld(40, 20))
		m.Recompute(domain.Position{X: 5, Y: 10}, 4, true)
		m.Recompute(domain.Position{X: 35, Y: 10}, 4, true)

		if m.IsVisible(5, 10) {
			t.Error("Old origin must not stay visible after recompute")
		}
		if !m.IsVisible(35, 10) {
			t.Error("New origin must be visible")
		}
	})

	t.Run("out of bounds is never visible", func(t *testing.T) {
		m := New(openWorld(10, 10))
		m.Recompute(domain.Position{X: 5, Y: 5}, 8, true)

		if m.IsVisible(-1, 5) || m.IsVisible(5, 100) {
			t.Error("Out of bounds queries must report not visible")
		}
	})
}
