package open_payment

import (
	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

// PaymentPanelResponse HTTP response model платёжной панели
type PaymentPanelResponse struct {
	BookingID       int64   `json:"bookingId"`
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	DurationMinutes int     `json:"durationMinutes"`
	PaymentURI      string  `json:"paymentUri"`
	QRImageURL      string  `json:"qrImageUrl"`
	Message         string  `json:"message"`
}

// FromServiceResponse конвертирует представление панели в HTTP response
func FromServiceResponse(panel *session.PaymentPanelView, message string) *PaymentPanelResponse {
	return &PaymentPanelResponse{
		BookingID:       panel.BookingID,
		Name:            panel.Name,
		Amount:          panel.Amount,
		DurationMinutes: panel.DurationMinutes,
		PaymentURI:      panel.PaymentURI,
		QRImageURL:      panel.QRImageURL,
		Message:         message,
	}
}
