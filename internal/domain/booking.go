package domain

import (
	"github.com/m04kA/OTO-BookingService/pkg/types"
)

// Booking represents a single coaching session reservation with payment status
type Booking struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Mobile          string           `json:"mobile"`
	Date            types.DateString `json:"date"`
	Amount          float64          `json:"amount"`
	DurationMinutes int              `json:"durationMinutes"`
	Paid            bool             `json:"paid"`
}

// IsPaid returns true if the booking has been paid for
func (b *Booking) IsPaid() bool {
	return b.Paid
}

// MarkPaid flips the paid flag. The flag is monotonic: once set it never reverts.
func (b *Booking) MarkPaid() {
	b.Paid = true
}

// Clone returns a copy of the booking, safe to hand out of the session lock
func (b *Booking) Clone() *Booking {
	copied := *b
	return &copied
}

// FindByID returns the booking with the given id from the list, or nil
func FindByID(bookings []*Booking, id int64) *Booking {
	for _, b := range bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}
