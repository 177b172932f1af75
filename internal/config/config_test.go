package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
[server]
http_port = 9090

[payment]
payee_vpa = "coach@ybl"
payee_name = "PersonalCoach"
transaction_note = "SessionBooking"

[whatsapp]
phone = "917856079641"

[confirmation]
coach_name = "English with Priya"
capture_delay_ms = 800
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "coach@ybl", cfg.Payment.PayeeVPA)
	assert.Equal(t, "917856079641", cfg.WhatsApp.Phone)
	assert.Equal(t, "English with Priya", cfg.Confirmation.CoachName)
	assert.Equal(t, 800, cfg.Confirmation.CaptureDelayMS)

	// Дефолты для непереопределённых секций
	assert.Equal(t, "data/bookings.json", cfg.Storage.File)
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", cfg.QRService.BaseURL)
	assert.Equal(t, "320x320", cfg.QRService.Size)
	assert.Equal(t, "https://wa.me", cfg.WhatsApp.BaseURL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
[payment]
payee_vpa = "from-file@ybl"

[whatsapp]
phone = "910000000000"
`)

	t.Setenv("UPI_PAYEE_VPA", "from-env@ybl")
	t.Setenv("WHATSAPP_PHONE", "919999999999")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env@ybl", cfg.Payment.PayeeVPA)
	assert.Equal(t, "919999999999", cfg.WhatsApp.Phone)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfigFile(t, `
[whatsapp]
phone = "917856079641"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payee_vpa")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
