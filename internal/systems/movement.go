package systems

import (
	"math"

	"tombs-server/internal/domain"
)

// IsBlocked проверяет, занята ли клетка: стеной, границей карты или
// блокирующей сущностью.
func IsBlocked(x, y int, world *domain.World, store *domain.Store) bool {
	if !world.InBounds(x, y) {
		return true
	}
	if world.At(x, y).Blocked {
		return true
	}
	for i := 0; i < store.Len(); i++ {
		other := store.At(i)
		if other.Blocks && other.Pos.X == x && other.Pos.Y == y {
			return true
		}
	}
	return false
}

// MoveBy сдвигает сущность id на (dx, dy), если клетка назначения свободна.
// Занятая клетка - no-op, не ошибка.
func MoveBy(id, dx, dy int, world *domain.World, store *domain.Store) {
	e := store.At(id)
	next := e.Pos.Shift(dx, dy)
	if !IsBlocked(next.X, next.Y, world, store) {
		e.Pos = next
	}
}

// MoveTowards делает один шаг сущности id в сторону цели: вектор
// нормализуется и округляется до целочисленного шага сетки, поэтому
// движение может быть диагональным.
func MoveTowards(id int, target domain.Position, world *domain.World, store *domain.Store) {
	e := store.At(id)
	dx := target.X - e.Pos.X
	dy := target.Y - e.Pos.Y
	dist := math.Sqrt(float64(dx*dx + dy*dy))
	if dist == 0 {
		return
	}

	stepX := int(math.Round(float64(dx) / dist))
	stepY := int(math.Round(float64(dy) / dist))
	MoveBy(id, stepX, stepY, world, store)
}
