package session

import (
	"context"
	"time"

	"github.com/m04kA/OTO-BookingService/internal/capture"
	"github.com/m04kA/OTO-BookingService/internal/domain"
)

// BookingStore интерфейс локального хранилища коллекции бронирований
type BookingStore interface {
	Load(ctx context.Context) ([]*domain.Booking, error)
	Replace(ctx context.Context, list []*domain.Booking) error
}

// QRLinkProvider интерфейс внешнего рендерера QR-кодов
type QRLinkProvider interface {
	ImageURL(data string) string
}

// ChatHandoff интерфейс deep-link чата подтверждений
type ChatHandoff interface {
	Send(ctx context.Context, text string) error
}

// SnapshotRenderer интерфейс растеризатора карточки подтверждения
type SnapshotRenderer interface {
	Render(card capture.Card) ([]byte, error)
}

// ScheduledTask запланированная отложенная задача
type ScheduledTask interface {
	Cancel() bool
}

// TaskScheduler интерфейс планировщика отложенных задач
type TaskScheduler interface {
	Schedule(delay time.Duration, fn func()) ScheduledTask
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс бизнес-метрик сессии (опционален, допускает nil)
type MetricsRecorder interface {
	BookingCreated()
	PaymentCompleted()
	BookingCanceled()
	ConfirmationCapture(result string)
}
