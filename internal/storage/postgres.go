package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // драйвер postgres
)

// PostgresStore держит сейвы в одной таблице: токен игрока -> бинарный блоб.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore подключается к базе и создает таблицу, если ее нет.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS saves (
			name       TEXT PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create saves table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Put(name string, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO saves (name, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		name, data)
	return err
}

func (s *PostgresStore) Get(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM saves WHERE name = $1`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return data, err
}

// Close освобождает пул соединений.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
