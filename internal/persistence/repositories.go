package persistence

import "context"

// BookingFilter narrows booking queries to an inclusive date interval.
// Both bounds are ISO-8601 date strings; nil means unbounded on that
// side. A booking matches when its stay intersects the interval.
type BookingFilter struct {
	StartDate *string
	EndDate   *string
}

// BookingRepository stores hotel reservations.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// UserRepository stores staff accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
}
