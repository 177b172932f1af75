package qrserver

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURL(t *testing.T) {
	client := NewClient("https://api.qrserver.com/v1/create-qr-code/", "320x320")

	uri := "upi://pay?pa=6203984648%40ybl&pn=PersonalCoach&am=99&tn=SessionBooking&tr=1000"
	link := client.ImageURL(uri)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "api.qrserver.com", parsed.Host)
	assert.Equal(t, "/v1/create-qr-code/", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "320x320", q.Get("size"))

	// Платёжный URI восстанавливается из параметра data без искажений
	assert.Equal(t, uri, q.Get("data"))
}

func TestNewClient_TrimsQuerySuffix(t *testing.T) {
	client := NewClient("https://api.qrserver.com/v1/create-qr-code/?", "320x320")
	link := client.ImageURL("hello")
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/?size=320x320&data=hello", link)
}
