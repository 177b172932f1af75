package types

import (
	"fmt"
	"strings"
	"time"
)

// Layout календарной даты в хранилище и API (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// displayLayout формат даты для текстов подтверждений
const displayLayout = "02 Jan 2006"

// DateString календарная дата в виде строки "YYYY-MM-DD".
// Хранится и сериализуется как обычная строка, чтобы записи в хранилище
// сохраняли исходный вид даты без часового пояса и времени.
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateLayout))
}

// NewDateStringFromString парсит строку даты и валидирует формат
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(strings.TrimSpace(s))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что дата соответствует формату YYYY-MM-DD
func (d DateString) Validate() error {
	if _, err := time.Parse(DateLayout, string(d)); err != nil {
		return fmt.Errorf("invalid date string format: %v", err)
	}
	return nil
}

// IsZero возвращает true для пустой даты
func (d DateString) IsZero() bool {
	return strings.TrimSpace(string(d)) == ""
}

// ToTime конвертирует дату в time.Time (полночь, UTC)
func (d DateString) ToTime() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// Display возвращает дату в человекочитаемом виде ("01 Mar 2026").
// При некорректном формате возвращает исходную строку как есть.
func (d DateString) Display() string {
	t, err := d.ToTime()
	if err != nil {
		return string(d)
	}
	return t.Format(displayLayout)
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}
