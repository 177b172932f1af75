package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrUnexpectedStatus возвращается при неожиданном статус-коде ответа
	ErrUnexpectedStatus = errors.New("whatsapp client: unexpected status code")
)
