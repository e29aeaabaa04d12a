package systems

import "tombs-server/internal/domain"

// TileSelector - интерактивный выбор клетки для прицельных заклинаний.
// С точки зрения ядра это блокирующий шаг: реализация вправе ждать ввода
// сколько угодно, таймаута нет. ok=false означает отмену игроком, и тогда
// никакое состояние еще не изменено. maxRange <= 0 - дальность не ограничена.
type TileSelector interface {
	SelectTile(maxRange float64) (pos domain.Position, ok bool)
}

// ClosestMonster находит ближайшую к игроку враждебную сущность в пределах
// maxRange и в текущей видимости. ok=false, если таких нет.
func ClosestMonster(maxRange int, store *domain.Store, fov domain.FOV) (int, bool) {
	player := store.Player()

	closest := -1
	closestDist := float64(maxRange) + 1 // чуть дальше максимума

	for i := 0; i < store.Len(); i++ {
		if i == domain.PlayerIndex {
			continue
		}
		e := store.At(i)
		if e.Fighter == nil || !e.Alive || !fov.IsVisible(e.Pos.X, e.Pos.Y) {
			continue
		}
		if dist := player.Pos.DistanceTo(e.Pos); dist < closestDist {
			closest = i
			closestDist = dist
		}
	}

	if closest < 0 {
		return 0, false
	}
	return closest, true
}
