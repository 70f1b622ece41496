package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/hotel-booking/internal/application"
	"github.com/example/hotel-booking/internal/calendar"
	"github.com/example/hotel-booking/internal/persistence"
)

var bookingCounter uint64

var referenceTime = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// BookingFixture represents a deterministic booking record that can be
// materialised for application or persistence tests.
type BookingFixture struct {
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

// BookingOption configures the generated booking fixture.
type BookingOption func(*BookingFixture)

// NewBookingFixture returns a deterministic booking fixture with optional overrides.
func NewBookingFixture(opts ...BookingOption) BookingFixture {
	idx := atomic.AddUint64(&bookingCounter, 1)
	checkin := calendar.DateOf(referenceTime).AddDays(int(idx))
	fixture := BookingFixture{
		ID:              fmt.Sprintf("booking-%03d", idx),
		CustomerName:    fmt.Sprintf("Guest %03d", idx),
		CustomerSurname: "Fixture",
		GuestCount:      2,
		RoomNumber:      1,
		CheckinDate:     checkin,
		CheckoutDate:    checkin.AddDays(2),
		CheckinTime:     "14:00",
		CheckoutTime:    "11:00",
		CreatedAt:       referenceTime.Add(time.Duration(idx) * time.Minute),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithBookingID overrides the generated booking ID.
func WithBookingID(id string) BookingOption {
	return func(f *BookingFixture) {
		f.ID = id
	}
}

// WithBookingRoom sets the room number.
func WithBookingRoom(room int) BookingOption {
	return func(f *BookingFixture) {
		f.RoomNumber = room
	}
}

// WithBookingDates sets the check-in and check-out dates.
func WithBookingDates(checkin, checkout calendar.Date) BookingOption {
	return func(f *BookingFixture) {
		f.CheckinDate = checkin
		f.CheckoutDate = checkout
	}
}

// WithBookingTimes sets the check-in and check-out times.
func WithBookingTimes(checkinTime, checkoutTime string) BookingOption {
	return func(f *BookingFixture) {
		f.CheckinTime = checkinTime
		f.CheckoutTime = checkoutTime
	}
}

// WithBookingCreatedAt sets the created timestamp on the fixture.
func WithBookingCreatedAt(t time.Time) BookingOption {
	return func(f *BookingFixture) {
		f.CreatedAt = t
	}
}

// Application returns the fixture as an application.Booking value.
func (f BookingFixture) Application() application.Booking {
	return application.Booking{
		ID:              f.ID,
		CustomerName:    f.CustomerName,
		CustomerSurname: f.CustomerSurname,
		GuestCount:      f.GuestCount,
		RoomNumber:      f.RoomNumber,
		CheckinDate:     f.CheckinDate,
		CheckoutDate:    f.CheckoutDate,
		CheckinTime:     f.CheckinTime,
		CheckoutTime:    f.CheckoutTime,
		CreatedAt:       f.CreatedAt,
	}
}

// Persistence returns the fixture as a persistence.Booking value.
func (f BookingFixture) Persistence() persistence.Booking {
	return persistence.Booking{
		ID:              f.ID,
		CustomerName:    f.CustomerName,
		CustomerSurname: f.CustomerSurname,
		GuestCount:      f.GuestCount,
		RoomNumber:      f.RoomNumber,
		CheckinDate:     f.CheckinDate.String(),
		CheckoutDate:    f.CheckoutDate.String(),
		CheckinTime:     f.CheckinTime,
		CheckoutTime:    f.CheckoutTime,
		CreatedAt:       f.CreatedAt,
	}
}

// Input returns the fixture as an application.BookingInput.
func (f BookingFixture) Input() application.BookingInput {
	return application.BookingInput{
		CustomerName:    f.CustomerName,
		CustomerSurname: f.CustomerSurname,
		GuestCount:      f.GuestCount,
		RoomNumber:      f.RoomNumber,
		CheckinDate:     f.CheckinDate,
		CheckoutDate:    f.CheckoutDate,
		CheckinTime:     f.CheckinTime,
		CheckoutTime:    f.CheckoutTime,
	}
}

// Stay returns the fixture as a calendar.Stay value.
func (f BookingFixture) Stay() calendar.Stay {
	return calendar.Stay{
		ID:          f.ID,
		Room:        f.RoomNumber,
		Checkin:     f.CheckinDate,
		Checkout:    f.CheckoutDate,
		CheckinTime: f.CheckinTime,
	}
}
