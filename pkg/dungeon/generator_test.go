package dungeon

import (
	"errors"
	"math/rand"
	"testing"

	"tombs-server/internal/domain"
)

func (r Rect) contains(p domain.Position) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

func TestGenerate(t *testing.T) {
	lvl, err := Generate(1, DefaultConfig(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("produces at least one room", func(t *testing.T) {
		if len(lvl.Rooms) == 0 {
			t.Fatal("Expected at least one room")
		}
	})

	t.Run("rooms never overlap", func(t *testing.T) {
		for i := 0; i < len(lvl.Rooms); i++ {
			for j := i + 1; j < len(lvl.Rooms); j++ {
				if lvl.Rooms[i].Intersects(lvl.Rooms[j]) {
					t.Errorf("Rooms %d and %d overlap: %+v vs %+v", i, j, lvl.Rooms[i], lvl.Rooms[j])
				}
			}
		}
	})

	t.Run("player starts inside the first room", func(t *testing.T) {
		if !lvl.Rooms[0].contains(lvl.PlayerStart) {
			t.Errorf("Player start %+v outside the first room %+v", lvl.PlayerStart, lvl.Rooms[0])
		}
		if lvl.World.At(lvl.PlayerStart.X, lvl.PlayerStart.Y).Blocked {
			t.Error("Player start tile must be walkable")
		}
	})

	t.Run("stairs stand in the last room", func(t *testing.T) {
		last := lvl.Rooms[len(lvl.Rooms)-1]
		if !last.contains(lvl.Stairs) {
			t.Errorf("Stairs %+v outside the last room %+v", lvl.Stairs, last)
		}

		found := false
		for _, e := range lvl.Entities {
			if e.AlwaysVisible && e.Pos == lvl.Stairs {
				found = true
			}
		}
		if !found {
			t.Error("Expected an always-visible stairs entity at the stairs position")
		}
	})

	t.Run("entities stand on walkable tiles inside the map", func(t *testing.T) {
		for _, e := range lvl.Entities {
			if !lvl.World.InBounds(e.Pos.X, e.Pos.Y) {
				t.Fatalf("Entity %q out of bounds at %+v", e.Name, e.Pos)
			}
			if lvl.World.At(e.Pos.X, e.Pos.Y).Blocked {
				t.Errorf("Entity %q placed inside a wall at %+v", e.Name, e.Pos)
			}
		}
	})

	t.Run("blocking entities never share a tile", func(t *testing.T) {
		seen := map[domain.Position]string{}
		for _, e := range lvl.Entities {
			if !e.Blocks {
				continue
			}
			if prev, ok := seen[e.Pos]; ok {
				t.Errorf("Entities %q and %q share tile %+v", prev, e.Name, e.Pos)
			}
			seen[e.Pos] = e.Name
		}
	})

	t.Run("room population respects the depth table", func(t *testing.T) {
		// На глубине 1 таблица допускает не больше 2 монстров на комнату
		for ri, room := range lvl.Rooms {
			monsters := 0
			for _, e := range lvl.Entities {
				if e.Fighter != nil && room.contains(e.Pos) {
					monsters++
				}
			}
			if monsters > 2 {
				t.Errorf("Room %d holds %d monsters, want at most 2 at depth 1", ri, monsters)
			}
		}
	})
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(3, DefaultConfig(), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(3, DefaultConfig(), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("Same seed produced %d vs %d rooms", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Errorf("Room %d differs: %+v vs %+v", i, a.Rooms[i], b.Rooms[i])
		}
	}
	if len(a.Entities) != len(b.Entities) {
		t.Errorf("Same seed produced %d vs %d entities", len(a.Entities), len(b.Entities))
	}
}

func TestGenerateNoRooms(t *testing.T) {
	// Комнаты минимум 6x6 физически не влезают в сетку 5x5
	cfg := Config{Width: 5, Height: 5, MaxRooms: 10, RoomMinSize: 6, RoomMaxSize: 10}

	_, err := Generate(1, cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoRooms) {
		t.Fatalf("Expected ErrNoRooms, got %v", err)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 5, H: 5}

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"identical", Rect{X: 10, Y: 10, W: 5, H: 5}, true},
		{"touching edges count as overlap", Rect{X: 15, Y: 10, W: 5, H: 5}, true},
		{"clearly apart", Rect{X: 20, Y: 20, W: 3, H: 3}, false},
		{"one tile gap", Rect{X: 16, Y: 10, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expected {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.expected)
			}
		})
	}
}
