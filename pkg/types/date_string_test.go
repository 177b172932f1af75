package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.String())

	d, err = NewDateStringFromString("  2026-03-01  ")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.String())
}

func TestNewDateStringFromString_Invalid(t *testing.T) {
	for _, raw := range []string{"", "01-03-2026", "2026/03/01", "2026-13-01", "not-a-date"} {
		_, err := NewDateStringFromString(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2026, time.March, 1, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, DateString("2026-03-01"), d)
}

func TestDateString_ToTime(t *testing.T) {
	d := DateString("2026-03-01")
	ts, err := d.ToTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), ts)
}

func TestDateString_Display(t *testing.T) {
	assert.Equal(t, "01 Mar 2026", DateString("2026-03-01").Display())

	// Некорректная дата отдаётся как есть
	assert.Equal(t, "oops", DateString("oops").Display())
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.True(t, DateString("   ").IsZero())
	assert.False(t, DateString("2026-03-01").IsZero())
}
