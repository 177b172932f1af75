package session

import (
	"regexp"
	"strings"

	"github.com/m04kA/OTO-BookingService/internal/domain"
)

// mobilePattern ровно 10 десятичных цифр
var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// validateCreateRequest валидирует сырые данные формы.
// Порядок проверок фиксированный, он определяет, какое из сообщений
// увидит пользователь при нескольких нарушениях сразу:
//  1. пустые имя/мобильный/дата
//  2. мобильный не из 10 цифр
//  3. сумма меньше минимальной
//
// Поля name и mobile проверяются уже после trim.
func validateCreateRequest(name, mobile, date string, amount float64) error {
	if name == "" || mobile == "" || strings.TrimSpace(date) == "" {
		return ErrFieldsRequired
	}

	if !mobilePattern.MatchString(mobile) {
		return ErrInvalidMobile
	}

	if amount < domain.MinBookingAmount {
		return ErrAmountBelowMinimum
	}

	return nil
}
