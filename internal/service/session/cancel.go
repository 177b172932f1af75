package session

import (
	"context"
	"fmt"

	"github.com/m04kA/OTO-BookingService/internal/domain"
)

// CancelBooking удаляет бронирование из коллекции.
// Требует явного подтверждения пользователя: confirm=false - no-op,
// коллекция не меняется. Ограничений на отмену оплаченного бронирования
// нет - так работает исходный виджет.
// Возвращает true, если бронирование было удалено.
func (s *Service) CancelBooking(ctx context.Context, bookingID int64, confirm bool) (bool, error) {
	if !confirm {
		s.logger.Info("CancelBooking: cancellation of booking id=%d declined by user", bookingID)
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.FindByID(s.bookings, bookingID) == nil {
		s.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
		return false, ErrBookingNotFound
	}

	newList := make([]*domain.Booking, 0, len(s.bookings)-1)
	for _, b := range s.bookings {
		if b.ID != bookingID {
			newList = append(newList, b)
		}
	}

	if err := s.store.Replace(ctx, newList); err != nil {
		s.logger.Error("CancelBooking: failed to persist after removing id=%d: %v", bookingID, err)
		return false, fmt.Errorf("%w: CancelBooking - store error: %v", ErrInternal, err)
	}

	s.bookings = newList

	// Открытая панель на удалённое бронирование больше не разрешается по id
	if s.activePaymentID == bookingID {
		s.activePaymentID = 0
	}

	s.message = MsgBookingCanceled

	if s.metrics != nil {
		s.metrics.BookingCanceled()
	}

	s.logger.Info("CancelBooking: booking id=%d removed, %d bookings left", bookingID, len(newList))
	return true, nil
}
