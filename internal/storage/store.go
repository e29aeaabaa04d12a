package storage

import "errors"

// ErrNotFound - сейва с таким именем нет. Для нового игрока это норма,
// а не авария.
var ErrNotFound = errors.New("storage: save not found")

// Store - бэкенд хранения закодированных сейвов, по одному на игрока.
// Put перезаписывает существующий сейв молча.
type Store interface {
	Put(name string, data []byte) error
	Get(name string) ([]byte, error)
}
