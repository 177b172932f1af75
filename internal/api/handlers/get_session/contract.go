package get_session

import (
	"context"

	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

// SessionService интерфейс сессии бронирования
type SessionService interface {
	View(ctx context.Context) *session.View
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
