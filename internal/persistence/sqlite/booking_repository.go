package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/example/hotel-booking/internal/persistence"
)

// BookingRepository implements persistence.BookingRepository using SQLite.
type BookingRepository struct {
	pool *ConnectionPool
}

// NewBookingRepository creates a new SQLite booking repository.
func NewBookingRepository(pool *ConnectionPool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// CreateBooking inserts a new booking.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking persistence.Booking) error {
	query := `
		INSERT INTO bookings (
			id, customer_name, customer_surname, guest_count, room_number,
			checkin_date, checkout_date, checkin_time, checkout_time, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.pool.DB().ExecContext(ctx, query,
		booking.ID,
		booking.CustomerName,
		booking.CustomerSurname,
		booking.GuestCount,
		booking.RoomNumber,
		booking.CheckinDate,
		booking.CheckoutDate,
		booking.CheckinTime,
		booking.CheckoutTime,
		booking.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return mapError(err)
	}

	return nil
}

// GetBooking retrieves a booking by ID.
func (r *BookingRepository) GetBooking(ctx context.Context, id string) (persistence.Booking, error) {
	if id == "" {
		return persistence.Booking{}, persistence.ErrNotFound
	}

	query := `
		SELECT id, customer_name, customer_surname, guest_count, room_number,
			checkin_date, checkout_date, checkin_time, checkout_time, created_at
		FROM bookings
		WHERE id = ?
	`

	booking, err := scanBooking(r.pool.DB().QueryRowContext(ctx, query, id))
	if err != nil {
		return persistence.Booking{}, mapError(err)
	}

	return booking, nil
}

// ListBookings returns bookings matching the filter ordered by creation
// timestamp then ID. The overlap predicate compares ISO-8601 date text
// lexically, which matches date order.
func (r *BookingRepository) ListBookings(ctx context.Context, filter persistence.BookingFilter) ([]persistence.Booking, error) {
	query := `
		SELECT id, customer_name, customer_surname, guest_count, room_number,
			checkin_date, checkout_date, checkin_time, checkout_time, created_at
		FROM bookings
	`
	var (
		conditions []string
		args       []any
	)
	if filter.EndDate != nil {
		conditions = append(conditions, "checkin_date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "checkout_date >= ?")
		args = append(args, *filter.StartDate)
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY created_at ASC, id ASC"

	rows, err := r.pool.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var bookings []persistence.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, mapError(err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return bookings, nil
}

// DeleteBooking removes a booking by ID.
func (r *BookingRepository) DeleteBooking(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}

	result, err := r.pool.DB().ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}

	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (persistence.Booking, error) {
	var (
		booking      persistence.Booking
		createdAtStr string
	)

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerSurname,
		&booking.GuestCount,
		&booking.RoomNumber,
		&booking.CheckinDate,
		&booking.CheckoutDate,
		&booking.CheckinTime,
		&booking.CheckoutTime,
		&createdAtStr,
	)
	if err != nil {
		return persistence.Booking{}, err
	}

	if booking.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Booking{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return booking, nil
}
