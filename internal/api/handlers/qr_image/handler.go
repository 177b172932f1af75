package qr_image

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/m04kA/OTO-BookingService/internal/api/handlers"
	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"

	// qrSizePixels размер локально отрендеренного QR-кода,
	// совпадает с размером у внешнего рендерера
	qrSizePixels = 320
)

// SessionService интерфейс сессии бронирования
type SessionService interface {
	PaymentURI(ctx context.Context, bookingID int64) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
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

// Handle GET /api/v1/bookings/{bookingId}/qr.png
//
// Локальный рендер QR-кода того же платёжного URI - запасной вариант
// на случай недоступности внешнего рендерера у клиента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/qr.png - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	uri, err := h.service.PaymentURI(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/qr.png - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id}/qr.png - Failed to build payment URI: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	png, err := qrcode.Encode(uri, qrcode.Medium, qrSizePixels)
	if err != nil {
		h.logger.Error("GET /bookings/{id}/qr.png - Failed to encode QR: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{id}/qr.png - QR rendered: booking_id=%d (%d bytes)", bookingID, len(png))
	handlers.RespondPNG(w, png)
}
