package domain

// Business constants
const (
	// MinBookingAmount minimum payment per session, in rupees
	MinBookingAmount = 99.0

	// SessionDurationMinutes fixed session length, set on every booking at creation
	SessionDurationMinutes = 30

	// MobileDigits required number of decimal digits in a mobile number
	MobileDigits = 10
)

// StoreKey ключ, под которым коллекция бронирований лежит в локальном хранилище.
// Совпадает с именем документа в файле хранилища.
const StoreKey = "bookings"
