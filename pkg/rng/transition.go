package rng

// Transition - одна ступень таблицы "уровень подземелья -> значение".
type Transition struct {
	Level int
	Value int
}

// FromDungeonLevel возвращает значение ступени с наибольшим Level <= level,
// или 0, если ни одна ступень еще не достигнута. Таблица должна быть
// отсортирована по возрастанию Level - за инвариант отвечает вызывающий код.
func FromDungeonLevel(table []Transition, level int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if level >= table[i].Level {
			return table[i].Value
		}
	}
	return 0
}
