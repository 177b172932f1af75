package session

import (
	"context"
	"fmt"

	"github.com/m04kA/OTO-BookingService/internal/capture"
	"github.com/m04kA/OTO-BookingService/internal/domain"
	"github.com/m04kA/OTO-BookingService/pkg/upi"
)

// Результаты попытки capture (значения label метрики)
const (
	captureResultOK      = "ok"
	captureResultSkipped = "skipped"
	captureResultFailed  = "failed"
)

// captureAndShare выполняет отложенный capture подтверждения и handoff в чат.
// Вызывается планировщиком после задержки, вне мьютекса сессии.
//
// Это best-effort побочный эффект: любой сбой логируется и проглатывается,
// статус оплаты бронирования уже зафиксирован и не затрагивается.
func (s *Service) captureAndShare(bookingID int64) {
	s.mu.Lock()
	booking := domain.FindByID(s.bookings, bookingID)
	visible := booking != nil && s.lastBookingID == bookingID
	var snapshot *domain.Booking
	if visible {
		snapshot = booking.Clone()
	}
	s.mu.Unlock()

	// Карточка подтверждения видима, только пока последнее бронирование -
	// это бронирование. Иначе capture нечего снимать, выходим молча.
	if !visible {
		s.logger.Info("CaptureConfirmation: booking id=%d is not visible anymore, skipping", bookingID)
		s.recordCapture(captureResultSkipped)
		return
	}

	img, err := s.renderer.Render(buildConfirmationCard(snapshot, s.cfg.CoachName))
	if err != nil {
		s.logger.Error("CaptureConfirmation: failed to render card for booking id=%d: %v", bookingID, err)
		s.recordCapture(captureResultFailed)
	} else {
		s.mu.Lock()
		s.screenshot = img
		s.mu.Unlock()
		s.recordCapture(captureResultOK)
		s.logger.Info("CaptureConfirmation: screenshot captured for booking id=%d (%d bytes)",
			bookingID, len(img))
	}

	// Handoff в чат: GET по deep-link, результат не ожидается
	text := buildConfirmationMessage(snapshot, s.cfg.CoachName)
	if err := s.chat.Send(context.Background(), text); err != nil {
		s.logger.Error("CaptureConfirmation: chat handoff failed for booking id=%d: %v", bookingID, err)
	}
}

// buildConfirmationCard собирает карточку подтверждения для растеризации
func buildConfirmationCard(b *domain.Booking, coachName string) capture.Card {
	paid := "No"
	if b.Paid {
		paid = "Yes"
	}

	return capture.Card{
		Title: "Booking Confirmation",
		Lines: []string{
			fmt.Sprintf("Name: %s", b.Name),
			fmt.Sprintf("Date: %s", b.Date.Display()),
			fmt.Sprintf("Amount: Rs %s", upi.FormatAmount(b.Amount)),
			fmt.Sprintf("Duration: %d minutes", b.DurationMinutes),
			fmt.Sprintf("Paid: %s", paid),
			fmt.Sprintf("Session with %s", coachName),
		},
	}
}

// buildConfirmationMessage собирает текст подтверждения для чата.
// Формат сообщения дословно из исходного виджета.
func buildConfirmationMessage(b *domain.Booking, coachName string) string {
	return fmt.Sprintf(`Payment Confirmation ✓

Name: %s
Date: %s
Amount: ₹%s
Duration: %d minutes

Your session with %s is confirmed!`,
		b.Name,
		b.Date.Display(),
		upi.FormatAmount(b.Amount),
		b.DurationMinutes,
		coachName,
	)
}
