package server

import (
	"errors"
	"os"
	"testing"

	"tombs-server/internal/storage"
	"tombs-server/pkg/dungeon"
	"tombs-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// memStore is an in-memory save backend for session tests.
type memStore struct {
	data   map[string][]byte
	getErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Put(name string, data []byte) error {
	s.data[name] = data
	return nil
}

func (s *memStore) Get(name string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	data, ok := s.data[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func testClient(saves storage.Store) *Client {
	return &Client{
		Server: &Server{Saves: saves, DungeonCfg: dungeon.DefaultConfig(), Seed: 7},
		Token:  "tok",
	}
}

func TestLoadOrCreate(t *testing.T) {
	t.Run("missing save starts a new game", func(t *testing.T) {
		c := testClient(newMemStore())

		if err := c.loadOrCreate(); err != nil {
			t.Fatalf("loadOrCreate failed: %v", err)
		}
		if c.Game == nil {
			t.Fatal("Expected a fresh session")
		}
		if c.Game.DungeonLevel != 1 {
			t.Errorf("Expected a level 1 start, got %d", c.Game.DungeonLevel)
		}
	})

	t.Run("valid save restores the session", func(t *testing.T) {
		saves := newMemStore()
		c := testClient(saves)
		if err := c.loadOrCreate(); err != nil {
			t.Fatalf("loadOrCreate failed: %v", err)
		}
		c.Game.DungeonLevel = 5
		c.save()

		restored := testClient(saves)
		if err := restored.loadOrCreate(); err != nil {
			t.Fatalf("loadOrCreate failed: %v", err)
		}
		if restored.Game.DungeonLevel != 5 {
			t.Errorf("Expected dungeon level 5 restored, got %d", restored.Game.DungeonLevel)
		}
	})

	t.Run("unreadable save falls back to a new game", func(t *testing.T) {
		saves := newMemStore()
		saves.Put("tok", []byte("garbage-not-a-save"))
		c := testClient(saves)

		if err := c.loadOrCreate(); err != nil {
			t.Fatalf("Expected a fallback, got error: %v", err)
		}
		if c.Game == nil {
			t.Fatal("Expected a fresh session despite the corrupt save")
		}
		if c.Game.DungeonLevel != 1 {
			t.Errorf("Expected a level 1 start, got %d", c.Game.DungeonLevel)
		}
	})

	t.Run("backend failure stays a hard error", func(t *testing.T) {
		saves := newMemStore()
		saves.getErr = errors.New("connection refused")
		c := testClient(saves)

		if err := c.loadOrCreate(); err == nil {
			t.Fatal("Expected the backend error to propagate")
		}
		if c.Game != nil {
			t.Error("No session must be created on a backend failure")
		}
	})
}
