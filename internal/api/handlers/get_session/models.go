package get_session

import (
	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

// BookingResponse представление бронирования в ответе
type BookingResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Mobile          string  `json:"mobile"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	DurationMinutes int     `json:"durationMinutes"`
	Paid            bool    `json:"paid"`
}

// PaymentPanelResponse представление открытой платёжной панели в ответе
type PaymentPanelResponse struct {
	BookingID       int64   `json:"bookingId"`
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	DurationMinutes int     `json:"durationMinutes"`
	PaymentURI      string  `json:"paymentUri"`
	QRImageURL      string  `json:"qrImageUrl"`
}

// SessionResponse HTTP response model состояния сессии
type SessionResponse struct {
	Message       string                `json:"message"`
	PaymentState  string                `json:"paymentState"`
	LastBooking   *BookingResponse      `json:"lastBooking,omitempty"`
	ActivePayment *PaymentPanelResponse `json:"activePayment,omitempty"`
	HasScreenshot bool                  `json:"hasScreenshot"`
}

// FromServiceView конвертирует снимок сессии в HTTP response
func FromServiceView(view *session.View) *SessionResponse {
	resp := &SessionResponse{
		Message:       view.Message,
		PaymentState:  string(view.PaymentState),
		HasScreenshot: view.HasScreenshot,
	}

	if view.LastBooking != nil {
		resp.LastBooking = &BookingResponse{
			ID:              view.LastBooking.ID,
			Name:            view.LastBooking.Name,
			Mobile:          view.LastBooking.Mobile,
			Date:            view.LastBooking.Date.String(),
			Amount:          view.LastBooking.Amount,
			DurationMinutes: view.LastBooking.DurationMinutes,
			Paid:            view.LastBooking.Paid,
		}
	}

	if view.ActivePayment != nil {
		resp.ActivePayment = &PaymentPanelResponse{
			BookingID:       view.ActivePayment.BookingID,
			Name:            view.ActivePayment.Name,
			Amount:          view.ActivePayment.Amount,
			DurationMinutes: view.ActivePayment.DurationMinutes,
			PaymentURI:      view.ActivePayment.PaymentURI,
			QRImageURL:      view.ActivePayment.QRImageURL,
		}
	}

	return resp
}
