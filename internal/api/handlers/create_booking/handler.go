package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/OTO-BookingService/internal/api/handlers"
	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

// Сообщения пользователю, дословно из исходного виджета
const (
	msgInvalidRequestBody = "invalid request body"
	msgFieldsRequired     = "Please fill name, mobile and choose a date."
	msgInvalidMobile      = "Please enter a valid 10-digit mobile number."
	msgBelowMinimum       = "Minimum payment is ₹99 for a 30-minute session."
	msgInvalidDate        = "Please choose a valid date (YYYY-MM-DD)."
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrFieldsRequired):
			h.logger.Warn("POST /bookings - Required fields missing")
			handlers.RespondBadRequest(w, msgFieldsRequired)

		case errors.Is(err, session.ErrInvalidMobile):
			h.logger.Warn("POST /bookings - Invalid mobile number")
			handlers.RespondBadRequest(w, msgInvalidMobile)

		case errors.Is(err, session.ErrAmountBelowMinimum):
			h.logger.Warn("POST /bookings - Amount below minimum: %v", req.Amount)
			handlers.RespondBadRequest(w, msgBelowMinimum)

		case errors.Is(err, session.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result, session.MsgBookingCreated))
}
