package get_session

import (
	"net/http"

	"github.com/m04kA/OTO-BookingService/internal/api/handlers"
)

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

// Handle GET /api/v1/session
//
// Отдаёт только состояние сессии с последним бронированием - полный список
// бронирований пользователю не выставляется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view := h.service.View(r.Context())
	handlers.RespondJSON(w, http.StatusOK, FromServiceView(view))
}
