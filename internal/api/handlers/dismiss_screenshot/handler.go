package dismiss_screenshot

import (
	"context"
	"net/http"

	"github.com/m04kA/OTO-BookingService/internal/api/handlers"
)

// SessionService интерфейс сессии бронирования
type SessionService interface {
	DismissScreenshot(ctx context.Context)
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

// Handle DELETE /api/v1/session/screenshot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.DismissScreenshot(r.Context())

	h.logger.Info("DELETE /session/screenshot - Screenshot dismissed")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
