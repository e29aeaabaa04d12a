package domain

import "fmt"

// PlayerIndex - игрок по соглашению всегда занимает первый слот хранилища.
const PlayerIndex = 0

// Store - упорядоченная коллекция сущностей, адресуемых только индексом.
// Стабильных идентификаторов нет: любой код, переживающий удаление
// (SwapRemove), обязан перепроверить свои индексы.
type Store struct {
	Entities []Entity `json:"entities"`
}

func NewStore(player Entity) *Store {
	return &Store{Entities: []Entity{player}}
}

func (s *Store) Len() int {
	return len(s.Entities)
}

// At возвращает изменяемый взгляд на одну сущность.
func (s *Store) At(i int) *Entity {
	return &s.Entities[i]
}

// Player - сущность игрока (слот 0).
func (s *Store) Player() *Entity {
	return &s.Entities[PlayerIndex]
}

// Add добавляет сущность в конец и возвращает ее индекс.
func (s *Store) Add(e Entity) int {
	s.Entities = append(s.Entities, e)
	return len(s.Entities) - 1
}

// MutTwo возвращает два независимых изменяемых взгляда на РАЗНЫЕ сущности
// (атакующий/защищающийся). Бэкинг-слайс разрезается по большему индексу,
// поэтому области памяти гарантированно не пересекаются.
//
// Совпадающие или выходящие за границы индексы - нарушение контракта
// вызывающего кода: паника, а не ошибка.
func (s *Store) MutTwo(first, second int) (*Entity, *Entity) {
	if first == second {
		panic(fmt.Sprintf("store: MutTwo with equal indexes %d", first))
	}
	if first < 0 || second < 0 || first >= len(s.Entities) || second >= len(s.Entities) {
		panic(fmt.Sprintf("store: MutTwo out of bounds (%d, %d) with len %d", first, second, len(s.Entities)))
	}

	split := second
	if first > second {
		split = first
	}
	head, tail := s.Entities[:split], s.Entities[split:]
	if first < second {
		return &head[first], &tail[0]
	}
	return &tail[0], &head[second]
}

// SwapRemove удаляет сущность за O(1), меняя ее местами с последней.
// ВНИМАНИЕ: индекс бывшей последней сущности после вызова указывает на
// другую сущность - ранее вычисленные индексы недействительны.
func (s *Store) SwapRemove(i int) Entity {
	if i == PlayerIndex {
		panic("store: cannot remove the player slot")
	}
	last := len(s.Entities) - 1
	s.Entities[i], s.Entities[last] = s.Entities[last], s.Entities[i]
	removed := s.Entities[last]
	s.Entities = s.Entities[:last]
	return removed
}

// Truncate оставляет только первые n сущностей (используется при спуске:
// игрок выживает, остальной уровень выбрасывается).
func (s *Store) Truncate(n int) {
	s.Entities = s.Entities[:n]
}
