// Package memory provides an in-memory implementation of the
// persistence repositories, selected by configuration for development
// and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/example/hotel-booking/internal/persistence"
)

// Storage implements persistence.BookingRepository and
// persistence.UserRepository over process-local maps.
type Storage struct {
	mu       sync.RWMutex
	bookings map[string]persistence.Booking
	users    map[string]persistence.User
}

// Open returns a new empty Storage.
func Open() *Storage {
	return &Storage{
		bookings: make(map[string]persistence.Booking),
		users:    make(map[string]persistence.User),
	}
}

// Close releases resources held by the storage. No-op for the
// in-memory implementation.
func (s *Storage) Close() error {
	return nil
}

// Migrate initialises the storage. No-op for the in-memory
// implementation.
func (s *Storage) Migrate(context.Context) error {
	return nil
}

// --- BookingRepository implementation ---

// CreateBooking stores a new booking.
func (s *Storage) CreateBooking(ctx context.Context, booking persistence.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[booking.ID]; ok {
		return persistence.ErrDuplicate
	}

	s.bookings[booking.ID] = cloneBooking(booking)
	return nil
}

// GetBooking retrieves a booking by ID.
func (s *Storage) GetBooking(ctx context.Context, id string) (persistence.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return persistence.Booking{}, persistence.ErrNotFound
	}

	return cloneBooking(booking), nil
}

// ListBookings returns bookings matching the filter ordered by
// CreatedAt ascending, ID as tiebreak.
func (s *Storage) ListBookings(ctx context.Context, filter persistence.BookingFilter) ([]persistence.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]persistence.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if !matchesBookingFilter(booking, filter) {
			continue
		}
		bookings = append(bookings, cloneBooking(booking))
	}

	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
	})

	return bookings, nil
}

// DeleteBooking removes a booking by ID.
func (s *Storage) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return persistence.ErrNotFound
	}

	delete(s.bookings, id)
	return nil
}

// --- UserRepository implementation ---

// CreateUser stores a new user.
func (s *Storage) CreateUser(ctx context.Context, user persistence.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return persistence.ErrDuplicate
	}

	lower := strings.ToLower(user.Username)
	for _, existing := range s.users {
		if strings.ToLower(existing.Username) == lower {
			return persistence.ErrDuplicate
		}
	}

	s.users[user.ID] = user
	return nil
}

// GetUser retrieves a user by ID.
func (s *Storage) GetUser(ctx context.Context, id string) (persistence.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return persistence.User{}, persistence.ErrNotFound
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (persistence.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(username)
	for _, user := range s.users {
		if strings.ToLower(user.Username) == lower {
			return user, nil
		}
	}

	return persistence.User{}, persistence.ErrNotFound
}

// --- Helpers ---

func cloneBooking(booking persistence.Booking) persistence.Booking {
	return booking
}

// matchesBookingFilter applies the inclusive stay-intersection
// predicate on ISO-8601 date strings, which compare lexically in date
// order.
func matchesBookingFilter(booking persistence.Booking, filter persistence.BookingFilter) bool {
	if filter.EndDate != nil && booking.CheckinDate > *filter.EndDate {
		return false
	}
	if filter.StartDate != nil && booking.CheckoutDate < *filter.StartDate {
		return false
	}
	return true
}
