package session

import "errors"

var (
	// ErrFieldsRequired возвращается, когда имя, мобильный или дата не заполнены
	ErrFieldsRequired = errors.New("session: name, mobile and date are required")

	// ErrInvalidMobile возвращается, когда мобильный не состоит ровно из 10 цифр
	ErrInvalidMobile = errors.New("session: mobile must be exactly 10 digits")

	// ErrAmountBelowMinimum возвращается, когда сумма меньше минимальной
	ErrAmountBelowMinimum = errors.New("session: amount is below the minimum")

	// ErrInvalidDate возвращается при некорректном формате даты бронирования
	ErrInvalidDate = errors.New("session: invalid booking date")

	// ErrBookingNotFound возвращается, когда бронирование не найдено в коллекции
	ErrBookingNotFound = errors.New("session: booking not found")

	// ErrNoScreenshot возвращается, когда артефакт скриншота отсутствует
	ErrNoScreenshot = errors.New("session: no screenshot available")

	// ErrInternal возвращается при внутренних ошибках сессии
	ErrInternal = errors.New("session: internal error")
)
