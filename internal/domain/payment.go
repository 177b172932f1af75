package domain

// PaymentState represents the state of the payment flow within a session
type PaymentState string

const (
	// PaymentStateNone no payment panel is open
	PaymentStateNone PaymentState = "no_active_payment"

	// PaymentStateAwaiting a payment panel is open for a booking, waiting for attestation
	PaymentStateAwaiting PaymentState = "awaiting_payment"

	// PaymentStatePaid the most recent booking has been paid
	PaymentStatePaid PaymentState = "paid"
)
