package domain

// BookingRequest is the inquiry a visitor submits for a tour.
// TourID, Name, Email and Phone are required; Tourists and Comment are
// free-form.
type BookingRequest struct {
	TourID   string `json:"tourId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Tourists string `json:"tourists,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// MissingFields lists the required fields that are empty, in a stable
// order matching the upstream endpoint's error payload.
func (r BookingRequest) MissingFields() []string {
	var missing []string
	if r.TourID == "" {
		missing = append(missing, "tourId")
	}
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// BookingResult is the upstream endpoint's answer. BookingNumber is in
// the upstream's BK%06d format when Success is true.
type BookingResult struct {
	Success       bool   `json:"success"`
	BookingNumber string `json:"bookingNumber,omitempty"`
	Message       string `json:"message,omitempty"`
}
