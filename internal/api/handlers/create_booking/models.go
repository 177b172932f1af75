package create_booking

import (
	"github.com/m04kA/OTO-BookingService/internal/service/session"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name   string  `json:"name"`
	Mobile string  `json:"mobile"`
	Date   string  `json:"date"` // "2026-03-01"
	Amount float64 `json:"amount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Mobile          string  `json:"mobile"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	DurationMinutes int     `json:"durationMinutes"`
	Paid            bool    `json:"paid"`
	Message         string  `json:"message"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сессии
func (r *CreateBookingRequest) ToServiceRequest() *session.CreateRequest {
	return &session.CreateRequest{
		Name:   r.Name,
		Mobile: r.Mobile,
		Date:   r.Date,
		Amount: r.Amount,
	}
}

// FromServiceResponse конвертирует представление сессии в HTTP response
func FromServiceResponse(view *session.BookingView, message string) *BookingResponse {
	return &BookingResponse{
		ID:              view.ID,
		Name:            view.Name,
		Mobile:          view.Mobile,
		Date:            view.Date.String(),
		Amount:          view.Amount,
		DurationMinutes: view.DurationMinutes,
		Paid:            view.Paid,
		Message:         message,
	}
}
