package application

import (
	"time"

	"github.com/example/hotel-booking/internal/calendar"
)

// Booking is the application view of a hotel reservation.
type Booking struct {
	ID              string
	CustomerName    string
	CustomerSurname string
	GuestCount      int
	RoomNumber      int
	CheckinDate     calendar.Date
	CheckoutDate    calendar.Date
	CheckinTime     string
	CheckoutTime    string
	CreatedAt       time.Time
}

// Stay projects the booking onto the calendar package's stay view.
func (b Booking) Stay() calendar.Stay {
	return calendar.Stay{
		ID:          b.ID,
		Room:        b.RoomNumber,
		Checkin:     b.CheckinDate,
		Checkout:    b.CheckoutDate,
		CheckinTime: b.CheckinTime,
	}
}

// BookingInput carries caller-supplied booking fields prior to validation.
type BookingInput struct {
	CustomerName    string
	CustomerSurname string
	GuestCount      int
	RoomNumber      int
	CheckinDate     calendar.Date
	CheckoutDate    calendar.Date
	CheckinTime     string
	CheckoutTime    string
}

// CollisionWarning reports an existing booking that shares a room and
// overlapping dates with a newly created one. Warnings never block
// creation.
type CollisionWarning struct {
	BookingID    string
	RoomNumber   int
	CheckinDate  calendar.Date
	CheckoutDate calendar.Date
}

// User is the application view of a staff account. The password hash
// never leaves the service layer.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
