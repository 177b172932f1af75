package bookings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OTO-BookingService/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "bookings.json"))
}

func sampleBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1756543210456, Name: "Ravi Kumar", Mobile: "9000000001", Date: "2026-03-02", Amount: 149.5, DurationMinutes: 30, Paid: true},
		{ID: 1756543210123, Name: "Asha Rao", Mobile: "9876543210", Date: "2026-03-01", Amount: 99, DurationMinutes: 30, Paid: false},
	}
}

func TestRepository_MissingFileGivesEmptyCollection(t *testing.T) {
	repo := newTestRepository(t)

	list, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_ReplaceLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	original := sampleBookings()

	require.NoError(t, repo.Replace(context.Background(), original))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)

	// Порядок и все поля записей сохраняются
	require.Len(t, loaded, len(original))
	for i := range original {
		assert.Equal(t, *original[i], *loaded[i])
	}
}

func TestRepository_ReplaceOverwritesWholeCollection(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Replace(context.Background(), sampleBookings()))
	require.NoError(t, repo.Replace(context.Background(), sampleBookings()[:1]))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Ravi Kumar", loaded[0].Name)
}

func TestRepository_ReplaceNilWritesEmptyDocument(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Replace(context.Background(), nil))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestRepository_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "nested", "data", "bookings.json"))

	require.NoError(t, repo.Replace(context.Background(), sampleBookings()))

	_, err := os.Stat(filepath.Join(dir, "nested", "data", "bookings.json"))
	require.NoError(t, err)
}

func TestRepository_CorruptedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewRepository(path).Load(context.Background())
	require.ErrorIs(t, err, ErrDecodeStore)
}

func TestRepository_CanceledContext(t *testing.T) {
	repo := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, ErrReadStore)

	err = repo.Replace(ctx, sampleBookings())
	require.ErrorIs(t, err, ErrWriteStore)
}
