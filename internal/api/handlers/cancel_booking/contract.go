package cancel_booking

import "context"

// SessionService интерфейс сессии бронирования
type SessionService interface {
	CancelBooking(ctx context.Context, bookingID int64, confirm bool) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
