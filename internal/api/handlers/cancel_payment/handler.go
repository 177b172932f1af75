package cancel_payment

import (
	"context"
	"net/http"

	"github.com/m04kA/OTO-BookingService/internal/api/handlers"
)

// SessionService интерфейс сессии бронирования
type SessionService interface {
	CancelPayment(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payment/cancel
//
// Закрывает платёжную панель; бронирование не меняется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.CancelPayment(r.Context())

	h.logger.Info("POST /payment/cancel - Payment panel closed")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
