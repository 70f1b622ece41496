package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/hotel-booking/internal/calendar"
	"github.com/example/hotel-booking/internal/persistence"
)

// Default check-in and check-out times applied when the caller leaves
// them empty.
const (
	DefaultCheckinTime  = "14:00"
	DefaultCheckoutTime = "11:00"
)

const clockLayout = "15:04"

// BookingRepository captures the persistence operations needed by the service.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, start, end *calendar.Date) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// BookingServiceConfig carries the tunable rules of the service.
type BookingServiceConfig struct {
	// Rooms is the configured room set. Empty falls back to the
	// two-room default.
	Rooms []int
	// RejectPastCheckin enables the server-side rule refusing
	// check-in dates before the current day. Off by default.
	RejectPastCheckin bool
}

// BookingService orchestrates validation, overlap queries, collision
// warnings, and persistence for bookings.
type BookingService struct {
	bookings          BookingRepository
	rooms             []int
	rejectPastCheckin bool
	idGenerator       func() string
	now               func() time.Time
	logger            *slog.Logger
}

// NewBookingService constructs a booking service with the provided dependencies.
func NewBookingService(bookings BookingRepository, cfg BookingServiceConfig, idGenerator func() string, now func() time.Time) *BookingService {
	return NewBookingServiceWithLogger(bookings, cfg, idGenerator, now, nil)
}

// NewBookingServiceWithLogger constructs a booking service with a specified logger.
func NewBookingServiceWithLogger(bookings BookingRepository, cfg BookingServiceConfig, idGenerator func() string, now func() time.Time, logger *slog.Logger) *BookingService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	rooms := cfg.Rooms
	if len(rooms) == 0 {
		rooms = calendar.DefaultRooms
	}
	return &BookingService{
		bookings:          bookings,
		rooms:             rooms,
		rejectPastCheckin: cfg.RejectPastCheckin,
		idGenerator:       idGenerator,
		now:               now,
		logger:            defaultLogger(logger),
	}
}

// Rooms returns the configured room set.
func (s *BookingService) Rooms() []int {
	return s.rooms
}

func (s *BookingService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "BookingService", operation, attrs...)
}

// CreateBooking validates input, persists a new booking, and reports
// collision warnings for overlapping same-room bookings. Warnings do
// not block creation.
func (s *BookingService) CreateBooking(ctx context.Context, input BookingInput) (booking Booking, warnings []CollisionWarning, err error) {
	if s == nil {
		err = fmt.Errorf("BookingService is nil")
		return
	}

	logger := s.loggerWith(ctx, "CreateBooking",
		"room_number", input.RoomNumber,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create booking", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("booking_id", booking.ID, "collision_warnings", len(warnings)).InfoContext(ctx, "booking created")
	}()

	input = normalizeBookingInput(input)
	vErr := s.validateBookingInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	booking = Booking{
		ID:              s.idGenerator(),
		CustomerName:    input.CustomerName,
		CustomerSurname: input.CustomerSurname,
		GuestCount:      input.GuestCount,
		RoomNumber:      input.RoomNumber,
		CheckinDate:     input.CheckinDate,
		CheckoutDate:    input.CheckoutDate,
		CheckinTime:     input.CheckinTime,
		CheckoutTime:    input.CheckoutTime,
		CreatedAt:       s.now().UTC(),
	}

	if s.bookings == nil {
		err = fmt.Errorf("booking repository not configured")
		return
	}

	warnings, err = s.collisionWarnings(ctx, booking)
	if err != nil {
		err = mapBookingRepoError(err)
		return
	}

	if err = s.bookings.CreateBooking(ctx, booking); err != nil {
		err = mapBookingRepoError(err)
		return
	}

	return
}

// DeleteBooking permanently removes a booking. Deleting an unknown ID
// returns ErrNotFound.
func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("BookingService is nil")
	}
	if s.bookings == nil {
		return fmt.Errorf("booking repository not configured")
	}

	logger := s.loggerWith(ctx, "DeleteBooking", "booking_id", id)

	if err := s.bookings.DeleteBooking(ctx, id); err != nil {
		err = mapBookingRepoError(err)
		logger.ErrorContext(ctx, "failed to delete booking", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	logger.InfoContext(ctx, "booking deleted")
	return nil
}

// ListBookings returns every stored booking.
func (s *BookingService) ListBookings(ctx context.Context) (bookings []Booking, err error) {
	if s == nil {
		err = fmt.Errorf("BookingService is nil")
		return
	}
	if s.bookings == nil {
		return nil, nil
	}

	logger := s.loggerWith(ctx, "ListBookings")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list bookings", "error", err, "error_kind", ErrorKind(err))
		}
	}()

	bookings, err = s.bookings.ListBookings(ctx, nil, nil)
	if err != nil {
		err = mapBookingRepoError(err)
		return
	}

	return
}

// BookingsOverlappingRange returns every booking whose stay intersects
// the inclusive interval [start, end]. A reversed range is rejected
// with ErrInvalidRange.
func (s *BookingService) BookingsOverlappingRange(ctx context.Context, start, end calendar.Date) (bookings []Booking, err error) {
	if s == nil {
		err = fmt.Errorf("BookingService is nil")
		return
	}

	logger := s.loggerWith(ctx, "BookingsOverlappingRange",
		"start_date", start.String(),
		"end_date", end.String(),
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to query booking range", "error", err, "error_kind", ErrorKind(err))
		}
	}()

	if start.IsZero() || end.IsZero() || start.After(end) {
		err = ErrInvalidRange
		return
	}
	if s.bookings == nil {
		return nil, nil
	}

	bookings, err = s.bookings.ListBookings(ctx, &start, &end)
	if err != nil {
		err = mapBookingRepoError(err)
		return
	}

	return
}

// BookingsOverlappingDate returns every booking occupying the given day.
func (s *BookingService) BookingsOverlappingDate(ctx context.Context, day calendar.Date) ([]Booking, error) {
	return s.BookingsOverlappingRange(ctx, day, day)
}

// DayOccupancy projects the occupancy state of a single day over the
// configured room set.
func (s *BookingService) DayOccupancy(ctx context.Context, day calendar.Date) (calendar.DayOccupancy, error) {
	bookings, err := s.BookingsOverlappingDate(ctx, day)
	if err != nil {
		return calendar.DayOccupancy{}, err
	}

	stays := make([]calendar.Stay, 0, len(bookings))
	for _, booking := range bookings {
		stays = append(stays, booking.Stay())
	}

	return calendar.ProjectDay(stays, day, s.rooms)
}

// collisionWarnings finds existing bookings sharing the room and
// overlapping the candidate's dates.
func (s *BookingService) collisionWarnings(ctx context.Context, candidate Booking) ([]CollisionWarning, error) {
	existing, err := s.bookings.ListBookings(ctx, &candidate.CheckinDate, &candidate.CheckoutDate)
	if err != nil {
		return nil, err
	}

	var warnings []CollisionWarning
	for _, other := range existing {
		if other.RoomNumber != candidate.RoomNumber {
			continue
		}
		warnings = append(warnings, CollisionWarning{
			BookingID:    other.ID,
			RoomNumber:   other.RoomNumber,
			CheckinDate:  other.CheckinDate,
			CheckoutDate: other.CheckoutDate,
		})
	}

	return warnings, nil
}

func normalizeBookingInput(input BookingInput) BookingInput {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerSurname = strings.TrimSpace(input.CustomerSurname)
	input.CheckinTime = strings.TrimSpace(input.CheckinTime)
	input.CheckoutTime = strings.TrimSpace(input.CheckoutTime)
	if input.CheckinTime == "" {
		input.CheckinTime = DefaultCheckinTime
	}
	if input.CheckoutTime == "" {
		input.CheckoutTime = DefaultCheckoutTime
	}
	return input
}

func (s *BookingService) validateBookingInput(input BookingInput) *ValidationError {
	vErr := &ValidationError{}

	if input.CustomerName == "" {
		vErr.add("customerName", "customer name is required")
	}
	if input.CustomerSurname == "" {
		vErr.add("customerSurname", "customer surname is required")
	}
	if input.GuestCount < 1 {
		vErr.add("guestCount", "guest count must be at least 1")
	}
	if !s.roomAllowed(input.RoomNumber) {
		vErr.add("roomNumber", "room number is not part of the hotel")
	}
	if input.CheckinDate.IsZero() {
		vErr.add("checkinDate", "checkin date is required")
	}
	if input.CheckoutDate.IsZero() {
		vErr.add("checkoutDate", "checkout date is required")
	}
	if !input.CheckinDate.IsZero() && !input.CheckoutDate.IsZero() && !input.CheckoutDate.After(input.CheckinDate) {
		vErr.add("checkoutDate", "checkout date must be after checkin date")
	}
	if _, err := time.Parse(clockLayout, input.CheckinTime); err != nil {
		vErr.add("checkinTime", "checkin time must be HH:MM")
	}
	if _, err := time.Parse(clockLayout, input.CheckoutTime); err != nil {
		vErr.add("checkoutTime", "checkout time must be HH:MM")
	}
	if s.rejectPastCheckin && !input.CheckinDate.IsZero() {
		today := calendar.DateOf(s.now())
		if input.CheckinDate.Before(today) {
			vErr.add("checkinDate", "checkin date must not be in the past")
		}
	}

	return vErr
}

func (s *BookingService) roomAllowed(room int) bool {
	for _, allowed := range s.rooms {
		if allowed == room {
			return true
		}
	}
	return false
}

func mapBookingRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistence.ErrDuplicate):
		return ErrAlreadyExists
	default:
		return err
	}
}
