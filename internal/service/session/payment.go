package session

import (
	"context"
	"fmt"

	"github.com/m04kA/OTO-BookingService/internal/domain"
	"github.com/m04kA/OTO-BookingService/pkg/upi"
)

// OpenPayment открывает платёжную панель для бронирования.
// Переход NoActivePayment -> AwaitingPayment(id): собирает платёжный URI
// и URL QR-кода. Неизвестный id состояние не меняет.
// Статус оплаты не проверяется - панель можно открыть повторно
// и для уже оплаченного бронирования.
func (s *Service) OpenPayment(ctx context.Context, bookingID int64) (*PaymentPanelView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	panel, err := s.paymentPanelLocked(bookingID)
	if err != nil {
		s.logger.Warn("OpenPayment: booking id=%d: %v", bookingID, err)
		return nil, err
	}

	s.activePaymentID = bookingID
	s.message = MsgScanQR

	s.logger.Info("OpenPayment: payment panel opened for booking id=%d, amount=%s",
		bookingID, upi.FormatAmount(panel.Amount))
	return panel, nil
}

// CompletePayment фиксирует оплату по само-подтверждению пользователя
// ("I have paid"). Переход AwaitingPayment(id) -> Paid(id): ставит paid=true,
// персистит, закрывает панель и планирует отложенный capture подтверждения.
// Внешней верификации платежа нет - модель сознательно доверяет пользователю.
// Повторное подтверждение уже оплаченного бронирования полей не меняет.
func (s *Service) CompletePayment(ctx context.Context, bookingID int64) (*BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := domain.FindByID(s.bookings, bookingID)
	if booking == nil {
		s.logger.Warn("CompletePayment: booking id=%d not found", bookingID)
		return nil, ErrBookingNotFound
	}

	wasPaid := booking.Paid
	booking.MarkPaid()

	if err := s.store.Replace(ctx, s.bookings); err != nil {
		if !wasPaid {
			booking.Paid = false
		}
		s.logger.Error("CompletePayment: failed to persist booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CompletePayment - store error: %v", ErrInternal, err)
	}

	s.activePaymentID = 0
	s.message = MsgPaymentSuccess

	if s.metrics != nil && !wasPaid {
		s.metrics.PaymentCompleted()
	}

	// Отложенный capture: пауза даёт UI время отрисовать подтверждение.
	// Задача fire-and-forget, дальнейшие действия пользователя не блокирует.
	s.lastCaptureTask = s.scheduler.Schedule(s.cfg.CaptureDelay, func() {
		s.captureAndShare(bookingID)
	})

	s.logger.Info("CompletePayment: booking id=%d marked as paid, capture scheduled in %s",
		bookingID, s.cfg.CaptureDelay)
	return newBookingView(booking), nil
}

// CancelPayment закрывает платёжную панель без изменения бронирования.
// Переход AwaitingPayment -> NoActivePayment.
func (s *Service) CancelPayment(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activePaymentID != 0 {
		s.logger.Info("CancelPayment: payment panel closed for booking id=%d", s.activePaymentID)
	}
	s.activePaymentID = 0
}

// PaymentURI возвращает платёжный URI для бронирования (для локального
// рендеринга QR-кода)
func (s *Service) PaymentURI(ctx context.Context, bookingID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := domain.FindByID(s.bookings, bookingID)
	if booking == nil {
		return "", ErrBookingNotFound
	}

	return s.buildPaymentURI(booking)
}

// paymentPanelLocked собирает представление платёжной панели для бронирования.
// Вызывается только под мьютексом.
func (s *Service) paymentPanelLocked(bookingID int64) (*PaymentPanelView, error) {
	booking := domain.FindByID(s.bookings, bookingID)
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	uri, err := s.buildPaymentURI(booking)
	if err != nil {
		return nil, err
	}

	return &PaymentPanelView{
		BookingID:       booking.ID,
		Name:            booking.Name,
		Amount:          booking.Amount,
		DurationMinutes: booking.DurationMinutes,
		PaymentURI:      uri,
		QRImageURL:      s.qr.ImageURL(uri),
	}, nil
}

// buildPaymentURI собирает UPI-URI с суммой и reference бронирования.
// Сумма и id попадают в URI ровно в том виде, в котором хранятся.
func (s *Service) buildPaymentURI(booking *domain.Booking) (string, error) {
	uri, err := upi.BuildPayURI(upi.PayParams{
		PayeeVPA:  s.cfg.PayeeVPA,
		PayeeName: s.cfg.PayeeName,
		Amount:    booking.Amount,
		Note:      s.cfg.TransactionNote,
		Reference: booking.ID,
	})
	if err != nil {
		return "", fmt.Errorf("%w: build payment URI: %v", ErrInternal, err)
	}
	return uri, nil
}
