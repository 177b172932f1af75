package complete_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/OTO-BookingService/internal/api/handlers"
	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	DurationMinutes int     `json:"durationMinutes"`
	Paid            bool    `json:"paid"`
	Message         string  `json:"message"`
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

// Handle POST /api/v1/bookings/{bookingId}/confirm-payment
//
// Фиксирует само-подтверждение оплаты ("I have paid"). Платёж внешне
// не верифицируется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm-payment - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.CompletePayment(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm-payment - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/{id}/confirm-payment - Failed to complete payment: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm-payment - Payment completed: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{
		ID:              result.ID,
		Name:            result.Name,
		Date:            result.Date.String(),
		Amount:          result.Amount,
		DurationMinutes: result.DurationMinutes,
		Paid:            result.Paid,
		Message:         session.MsgPaymentSuccess,
	})
}
