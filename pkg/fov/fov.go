// Package fov реализует службу видимости поверх тайловой сетки уровня.
// Ядро симуляции знает только интерфейс domain.FOV; эта реализация -
// рекурсивный shadowcasting по восьми октантам.
package fov

import "tombs-server/internal/domain"

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Map хранит результат последнего Recompute для одного мира.
type Map struct {
	world   *domain.World
	visible map[int]bool
}

// New создает службу видимости для данного мира. При смене уровня
// (мир заменяется целиком) создается новая служба.
func New(w *domain.World) *Map {
	return &Map{
		world:   w,
		visible: make(map[int]bool),
	}
}

// IsVisible отвечает, видна ли клетка из точки последнего Recompute.
func (m *Map) IsVisible(x, y int) bool {
	if !m.world.InBounds(x, y) {
		return false
	}
	return m.visible[m.index(x, y)]
}

// Recompute пересчитывает множество видимых клеток из новой точки обзора.
func (m *Map) Recompute(origin domain.Position, radius int, lightWalls bool) {
	m.visible = make(map[int]bool)
	if radius <= 0 {
		return
	}

	// Центр всегда виден
	m.visible[m.index(origin.X, origin.Y)] = true

	for i := 0; i < 8; i++ {
		m.castLight(origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], lightWalls)
	}
}

func (m *Map) index(x, y int) int {
	return y*m.world.Width + x
}

func (m *Map) blocksSight(x, y int) bool {
	// Выход за границы считается блокирующим
	if !m.world.InBounds(x, y) {
		return true
	}
	return m.world.At(x, y).BlockSight
}

func (m *Map) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, lightWalls bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Наклоны (slopes) краев клетки
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат октанта в глобальные
			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if m.world.InBounds(x, y) && float64(dx*dx+dy*dy) < radiusSq {
				if lightWalls || !m.world.At(x, y).BlockSight {
					m.visible[m.index(x, y)] = true
				}
			}

			// Логика теней
			if blocked {
				// Идем вдоль стены...
				if m.blocksSight(x, y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else if m.blocksSight(x, y) && j < radius {
				// Шли по пустоте и наткнулись на стену:
				// рекурсивно сканируем следующий ряд
				blocked = true
				m.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, lightWalls)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
