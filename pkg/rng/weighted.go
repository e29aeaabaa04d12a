// Package rng содержит примитивы случайного выбора, на которых построены
// таблицы спавна: взвешенный выбор и ступенчатые таблицы глубины.
package rng

import "math/rand"

// Range возвращает случайное число в интервале [min, max] (обе границы включены).
func Range(r *rand.Rand, min, max int) int {
	return r.Intn(max-min+1) + min
}

// WeightedIndex выбирает индекс с вероятностью, пропорциональной его
// неотрицательному весу. Суммарный вес может меняться от вызова к вызову.
// Возвращает -1, если сумма весов равна нулю (выбирать не из чего).
func WeightedIndex(r *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w < 0 {
			panic("rng: negative weight")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	roll := r.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	// Недостижимо: roll < total по построению.
	return -1
}
