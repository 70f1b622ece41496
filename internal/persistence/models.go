package persistence

import "time"

// Booking represents a hotel reservation row. Dates are stored as
// ISO-8601 text (YYYY-MM-DD) so SQL range predicates can compare them
// lexically; the application layer parses them into calendar dates.
type Booking struct {
	ID              string
	CustomerName    string
	CustomerSurname string
	GuestCount      int
	RoomNumber      int
	CheckinDate     string
	CheckoutDate    string
	CheckinTime     string
	CheckoutTime    string
	CreatedAt       time.Time
}

// User represents a staff account.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
