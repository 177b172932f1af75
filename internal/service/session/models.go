package session

import (
	"github.com/m04kA/OTO-BookingService/internal/domain"
	"github.com/m04kA/OTO-BookingService/pkg/types"
)

// CreateRequest модель запроса на создание бронирования (сырые данные формы)
type CreateRequest struct {
	Name   string  // имя клиента
	Mobile string  // мобильный номер, ровно 10 цифр
	Date   string  // дата сессии, "YYYY-MM-DD"
	Amount float64 // сумма платежа, минимум 99
}

// BookingView представление бронирования для API
type BookingView struct {
	ID              int64
	Name            string
	Mobile          string
	Date            types.DateString
	Amount          float64
	DurationMinutes int
	Paid            bool
}

// PaymentPanelView представление открытой платёжной панели
type PaymentPanelView struct {
	BookingID       int64
	Name            string
	Amount          float64
	DurationMinutes int
	PaymentURI      string // платёжный URI схемы UPI
	QRImageURL      string // URL картинки QR-кода у внешнего рендерера
}

// View снимок состояния сессии целиком
type View struct {
	Message       string
	PaymentState  domain.PaymentState
	LastBooking   *BookingView     // последнее бронирование (weak reference по id)
	ActivePayment *PaymentPanelView // открытая платёжная панель, если есть
	HasScreenshot bool
}

// newBookingView конвертирует доменное бронирование в представление
func newBookingView(b *domain.Booking) *BookingView {
	if b == nil {
		return nil
	}
	return &BookingView{
		ID:              b.ID,
		Name:            b.Name,
		Mobile:          b.Mobile,
		Date:            b.Date,
		Amount:          b.Amount,
		DurationMinutes: b.DurationMinutes,
		Paid:            b.Paid,
	}
}
