package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/OTO-BookingService/internal/domain"
)

// storeDocument документ хранилища: один фиксированный ключ со списком бронирований
type storeDocument struct {
	Bookings []*domain.Booking `json:"bookings"`
}

// Repository файловое хранилище коллекции бронирований.
//
// Аналог localStorage исходного виджета: весь список лежит под одним ключом
// (domain.StoreKey) в JSON-документе на локальном диске. Читается один раз
// при старте, перезаписывается целиком при каждом изменении коллекции
// (last-writer-wins, единственный актор).
type Repository struct {
	path string
}

// NewRepository создает новый экземпляр файлового репозитория бронирований
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает коллекцию бронирований из хранилища.
// Отсутствие файла не является ошибкой - возвращается пустая коллекция.
func (r *Repository) Load(ctx context.Context) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - context: %v", ErrReadStore, err)
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Booking{}, nil
		}
		return nil, fmt.Errorf("%w: Load - read file: %v", ErrReadStore, err)
	}

	var doc storeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal: %v", ErrDecodeStore, err)
	}

	if doc.Bookings == nil {
		doc.Bookings = []*domain.Booking{}
	}

	return doc.Bookings, nil
}

// Replace перезаписывает коллекцию бронирований целиком.
// Запись атомарная (временный файл + rename), чтобы при сбое в хранилище
// не осталось полузаписанного документа.
func (r *Repository) Replace(ctx context.Context, list []*domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: Replace - context: %v", ErrWriteStore, err)
	}

	if list == nil {
		list = []*domain.Booking{}
	}

	raw, err := json.MarshalIndent(storeDocument{Bookings: list}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Replace - marshal: %v", ErrEncodeStore, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: Replace - create directory: %v", ErrWriteStore, err)
	}

	tmp, err := os.CreateTemp(dir, domain.StoreKey+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Replace - create temp file: %v", ErrWriteStore, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: Replace - write temp file: %v", ErrWriteStore, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Replace - close temp file: %v", ErrWriteStore, err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Replace - rename: %v", ErrWriteStore, err)
	}

	return nil
}
