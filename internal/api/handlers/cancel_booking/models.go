package cancel_booking

// CancelBookingRequest HTTP request model.
// Confirm - явное подтверждение пользователя из диалога "Cancel this booking?";
// false оставляет коллекцию без изменений.
type CancelBookingRequest struct {
	Confirm bool `json:"confirm"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Canceled bool   `json:"canceled"`
	Message  string `json:"message,omitempty"`
}
