package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/OTO-BookingService/internal/domain"
	"github.com/m04kA/OTO-BookingService/pkg/types"
)

// Create валидирует данные формы и создает новое бронирование.
// При успехе бронирование вставляется в голову коллекции, коллекция
// персистится, указатель последнего бронирования обновляется и
// выставляется сообщение с приглашением к оплате.
// При любом отказе коллекция остаётся нетронутой.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*BookingView, error) {
	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.Mobile)

	s.logger.Info("CreateBooking: name=%q, mobile=%q, date=%q, amount=%v",
		name, mobile, req.Date, req.Amount)

	// 1. Валидация в фиксированном порядке (пустые поля, мобильный, сумма)
	if err := validateCreateRequest(name, mobile, req.Date, req.Amount); err != nil {
		s.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Формат даты. Форма с date-picker некорректную дату не пришлёт,
	// но API может - отклоняем отдельной ошибкой.
	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		s.logger.Warn("CreateBooking: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 3. ID из времени создания (unix millis), монотонно растущий.
	// При создании в ту же миллисекунду берём следующий свободный.
	id := s.timeProvider.Now().UnixMilli()
	if id <= s.lastIssuedID {
		id = s.lastIssuedID + 1
	}

	booking := &domain.Booking{
		ID:              id,
		Name:            name,
		Mobile:          mobile,
		Date:            date,
		Amount:          req.Amount,
		DurationMinutes: domain.SessionDurationMinutes,
		Paid:            false,
	}

	// 4. Вставка в голову + полная перезапись хранилища.
	// Коммитим in-memory состояние только после успешной записи.
	newList := make([]*domain.Booking, 0, len(s.bookings)+1)
	newList = append(newList, booking)
	newList = append(newList, s.bookings...)

	if err := s.store.Replace(ctx, newList); err != nil {
		s.logger.Error("CreateBooking: failed to persist booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CreateBooking - store error: %v", ErrInternal, err)
	}

	s.bookings = newList
	s.lastIssuedID = id
	s.lastBookingID = id
	s.message = MsgBookingCreated

	if s.metrics != nil {
		s.metrics.BookingCreated()
	}

	s.logger.Info("CreateBooking: successfully created booking id=%d", id)
	return newBookingView(booking), nil
}
