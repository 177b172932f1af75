package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestMessageURL(t *testing.T) {
	client := NewClient("https://wa.me", "917856079641", time.Second, nopLogger{})

	link := client.MessageURL("Payment Confirmation ✓\n\nName: Asha Rao")

	assert.Equal(t,
		"https://wa.me/917856079641?text=Payment+Confirmation+%E2%9C%93%0A%0AName%3A+Asha+Rao",
		link,
	)
}

func TestSend(t *testing.T) {
	var gotPath string
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotText = r.URL.Query().Get("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "917856079641", time.Second, nopLogger{})

	err := client.Send(context.Background(), "Your session is confirmed!")
	require.NoError(t, err)

	assert.Equal(t, "/917856079641", gotPath)
	assert.Equal(t, "Your session is confirmed!", gotText)
}

func TestSend_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "917856079641", time.Second, nopLogger{})

	err := client.Send(context.Background(), "hello")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestSend_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "917856079641", time.Second, nopLogger{})

	err := client.Send(context.Background(), "hello")
	require.ErrorIs(t, err, ErrInternal)
}
