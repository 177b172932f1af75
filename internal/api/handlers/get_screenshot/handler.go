package get_screenshot

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/OTO-BookingService/internal/api/handlers"
	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

const msgNoScreenshot = "no screenshot available"

// SessionService интерфейс сессии бронирования
type SessionService interface {
	Screenshot(ctx context.Context) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
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

// Handle GET /api/v1/session/screenshot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	img, err := h.service.Screenshot(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoScreenshot):
			handlers.RespondNotFound(w, msgNoScreenshot)

		default:
			h.logger.Error("GET /session/screenshot - Failed to fetch screenshot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondPNG(w, img)
}
