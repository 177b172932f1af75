// Package upi собирает платёжные URI схемы UPI (Unified Payments Interface).
//
// Формат: upi://pay?pa=<payee VPA>&pn=<payee name>&am=<amount>&tn=<note>&tr=<reference>
// Сумма и reference должны проходить round-trip без искажений - они попадают
// в платёжное приложение плательщика как есть.
package upi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Scheme префикс платёжного URI
const Scheme = "upi://pay"

var (
	// ErrEmptyPayeeVPA возвращается, когда не указан VPA получателя
	ErrEmptyPayeeVPA = errors.New("upi: payee VPA is required")

	// ErrInvalidReference возвращается при некорректном reference платежа
	ErrInvalidReference = errors.New("upi: transaction reference must be positive")
)

// PayParams параметры платёжного URI
type PayParams struct {
	PayeeVPA  string  // pa - виртуальный платёжный адрес получателя
	PayeeName string  // pn - имя получателя
	Amount    float64 // am - сумма платежа
	Note      string  // tn - назначение платежа
	Reference int64   // tr - reference транзакции (ID бронирования)
}

// Validate проверяет обязательные параметры
func (p PayParams) Validate() error {
	if p.PayeeVPA == "" {
		return ErrEmptyPayeeVPA
	}
	if p.Reference <= 0 {
		return ErrInvalidReference
	}
	return nil
}

// BuildPayURI собирает платёжный URI.
// Порядок параметров фиксированный (pa, pn, am, tn, tr) - некоторые UPI-приложения
// чувствительны к нему при разборе QR-кодов.
func BuildPayURI(p PayParams) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s?pa=%s&pn=%s&am=%s&tn=%s&tr=%d",
		Scheme,
		url.QueryEscape(p.PayeeVPA),
		url.QueryEscape(p.PayeeName),
		FormatAmount(p.Amount),
		url.QueryEscape(p.Note),
		p.Reference,
	), nil
}

// FormatAmount форматирует сумму без лишних нулей ("99", "149.5", "99.99")
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
