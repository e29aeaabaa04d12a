package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore кладет каждый сейв отдельным файлом в SaveDir.
type FileStore struct {
	SaveDir string
}

func NewFileStore(dir string) *FileStore {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &FileStore{SaveDir: dir}
}

func (s *FileStore) path(name string) string {
	// Имя приходит снаружи (токен игрока) - вычищаем разделители путей
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(name)
	return filepath.Join(s.SaveDir, fmt.Sprintf("save_%s.tmbs", safe))
}

func (s *FileStore) Put(name string, data []byte) error {
	return os.WriteFile(s.path(name), data, 0644)
}

func (s *FileStore) Get(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}
