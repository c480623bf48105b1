package delete_booking

// DeleteBookingRequest HTTP request model
type DeleteBookingRequest struct {
	ReservationID string `json:"reservationId"`
}

// DeleteBookingResponse HTTP response model
type DeleteBookingResponse struct {
	ReturnCode int    `json:"returnCode"`
	Message    string `json:"message"`
}
