package bookings

import "errors"

var (
	// ErrReadStore возвращается при ошибке чтения файла хранилища
	ErrReadStore = errors.New("bookings.repository: failed to read store")

	// ErrWriteStore возвращается при ошибке записи файла хранилища
	ErrWriteStore = errors.New("bookings.repository: failed to write store")

	// ErrDecodeStore возвращается, когда содержимое хранилища не парсится
	ErrDecodeStore = errors.New("bookings.repository: failed to decode store document")

	// ErrEncodeStore возвращается при ошибке сериализации коллекции
	ErrEncodeStore = errors.New("bookings.repository: failed to encode store document")
)
