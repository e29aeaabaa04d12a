// Package storage отвечает за сохранение и загрузку игровых сессий:
// бинарный формат файла и взаимозаменяемые бэкенды (файлы, Postgres).
package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"tombs-server/internal/engine"
)

const (
	MagicHeader string = `TMBS` // 4 байта
	Version1    uint32 = 1
)

// SaveFileHeader — это точное представление заголовка сейва в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк,
// только массивы и числа.
type SaveFileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Seed         int64   // 8 байт
	Timestamp    int64   // 8 байт
	DungeonLevel int32   // 4 байта
	SnapshotLen  uint32  // 4 байта
}

// Encode упаковывает снапшот в бинарный формат: фиксированный заголовок
// плюс JSON-тело. Заголовок читается без распаковки тела - этого хватает,
// чтобы показать список сейвов.
func Encode(snap *engine.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(&buf, snap, time.Now().Unix()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode распаковывает снапшот, проверяя магию и версию формата.
func Decode(data []byte) (*engine.Snapshot, error) {
	return read(bytes.NewReader(data))
}

func write(w io.Writer, snap *engine.Snapshot, timestamp int64) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	header := SaveFileHeader{
		Version:      Version1,
		Seed:         snap.Seed,
		Timestamp:    timestamp,
		DungeonLevel: int32(snap.DungeonLevel),
		SnapshotLen:  uint32(len(body)),
	}
	copy(header.Magic[:], MagicHeader)

	// Пишем структуру целиком
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write snapshot body: %w", err)
	}
	return nil
}

func read(r io.Reader) (*engine.Snapshot, error) {
	// 1. Читаем заголовок целиком
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	// 2. Читаем тело
	body := make([]byte, header.SnapshotLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}

	var snap engine.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
