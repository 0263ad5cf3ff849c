package booking

import "time"

// Inquiry is a single reservation request. It lives for one submission and is
// never persisted. A zero CheckIn/CheckOut means the date was not provided;
// zero Guests means unspecified and defaults to two.
type Inquiry struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	RoomID          string    `json:"room_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"special_requests"`
}

type Confirmation struct {
	Reference string    `json:"reference"`
	RoomName  string    `json:"room_name"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Nights    int       `json:"nights"`
	Total     int64     `json:"total"`
}
