package systems

import (
	"strings"
	"testing"

	"tombs-server/internal/domain"
)

func TestAttack(t *testing.T) {
	t.Run("damage is power minus defense", func(t *testing.T) {
		store := domain.NewStore(testPlayer(1, 1))
		orc := testOrc(2, 1)
		orc.Fighter.Defense = 1
		id := store.Add(orc)

		log := &domain.MessageLog{}
		Attack(domain.PlayerIndex, id, store, log)

		// 4 power - 1 defense = 3
		if hp := store.At(id).Fighter.HP; hp != 17 {
			t.Errorf("Expected defender HP 17, got %d", hp)
		}
	})

	t.Run("defense at or above power means no effect", func(t *testing.T) {
		store := domain.NewStore(testPlayer(1, 1))
		orc := testOrc(2, 1)
		orc.Fighter.Defense = 10
		id := store.Add(orc)

		log := &domain.MessageLog{}
		Attack(domain.PlayerIndex, id, store, log)

		if hp := store.At(id).Fighter.HP; hp != 20 {
			t.Errorf("Expected defender HP unchanged at 20, got %d", hp)
		}
		if len(log.Messages) == 0 || !strings.Contains(log.Messages[0].Text, "no effect") {
			t.Errorf("Expected a no-effect message, got %+v", log.Messages)
		}
	})

	t.Run("killing blow turns the monster into a corpse", func(t *testing.T) {
		player := testPlayer(1, 1)
		player.Fighter.Power = 100
		store := domain.NewStore(player)
		id := store.Add(testOrc(2, 1))

		log := &domain.MessageLog{}
		Attack(domain.PlayerIndex, id, store, log)

		corpse := store.At(id)
		if corpse.Alive {
			t.Error("Expected the orc to be dead")
		}
		if corpse.Blocks {
			t.Error("Corpse must not block movement")
		}
		if corpse.Fighter != nil || corpse.AI != nil {
			t.Error("Corpse must lose fighter and AI components")
		}
		if corpse.Name != "remains of orc" {
			t.Errorf("Expected corpse name 'remains of orc', got %q", corpse.Name)
		}
		if corpse.Render.Glyph != "%" {
			t.Errorf("Expected corpse glyph %%, got %q", corpse.Render.Glyph)
		}
	})

	t.Run("player gains experience for the kill", func(t *testing.T) {
		player := testPlayer(1, 1)
		player.Fighter.Power = 100
		store := domain.NewStore(player)
		id := store.Add(testOrc(2, 1))

		Attack(domain.PlayerIndex, id, store, &domain.MessageLog{})

		if xp := store.Player().Fighter.XP; xp != 35 {
			t.Errorf("Expected player XP 35, got %d", xp)
		}
	})

	t.Run("monster kills do not grant the monster experience", func(t *testing.T) {
		player := testPlayer(1, 1)
		player.Fighter.HP = 1
		player.Fighter.Defense = 0
		store := domain.NewStore(player)
		id := store.Add(testOrc(2, 1))

		Attack(id, domain.PlayerIndex, store, &domain.MessageLog{})

		if store.Player().Alive {
			t.Fatal("Expected the player to be dead")
		}
		if xp := store.At(id).Fighter.XP; xp != 0 {
			t.Errorf("Monster must not accumulate XP, got %d", xp)
		}
	})
}

func TestApplyDamage(t *testing.T) {
	t.Run("death fires exactly once", func(t *testing.T) {
		orc := testOrc(2, 1)
		log := &domain.MessageLog{}

		xp := ApplyDamage(&orc, 50, log)
		if xp != 35 {
			t.Fatalf("Expected XP reward 35 on the killing blow, got %d", xp)
		}
		deathMessages := len(log.Messages)

		// Повторный урон по трупу - no-op
		if xp := ApplyDamage(&orc, 50, log); xp != 0 {
			t.Errorf("Corpse damage must yield 0 XP, got %d", xp)
		}
		if len(log.Messages) != deathMessages {
			t.Error("Corpse damage must not produce new messages")
		}
	})

	t.Run("player death keeps the entity in place", func(t *testing.T) {
		player := testPlayer(1, 1)
		log := &domain.MessageLog{}

		ApplyDamage(&player, 200, log)

		if player.Alive {
			t.Error("Expected the player to be dead")
		}
		// Игрок остается сущностью со своим Fighter - для экрана смерти
		if player.Fighter == nil {
			t.Error("Dead player must keep the fighter component")
		}
		if len(log.Messages) == 0 || log.Messages[len(log.Messages)-1].Text != "You died!" {
			t.Errorf("Expected 'You died!' message, got %+v", log.Messages)
		}
	})

	t.Run("non-positive damage never kills", func(t *testing.T) {
		orc := testOrc(2, 1)
		if xp := ApplyDamage(&orc, 0, &domain.MessageLog{}); xp != 0 {
			t.Errorf("Expected no XP, got %d", xp)
		}
		if orc.Fighter.HP != 20 {
			t.Errorf("Expected HP unchanged, got %d", orc.Fighter.HP)
		}
	})
}
