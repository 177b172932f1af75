package open_payment

import (
	"context"

	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

// SessionService интерфейс сессии бронирования
type SessionService interface {
	OpenPayment(ctx context.Context, bookingID int64) (*session.PaymentPanelView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
