package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/hotel-booking/internal/persistence"
)

func setupPool(t *testing.T) *ConnectionPool {
	t.Helper()

	pool, err := NewConnectionPool(filepath.Join(t.TempDir(), "hotel.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	if err := Migrate(context.Background(), pool); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return pool
}

func testBooking(id string, room int, checkin, checkout string, createdAt time.Time) persistence.Booking {
	return persistence.Booking{
		ID:              id,
		CustomerName:    "Ayşe",
		CustomerSurname: "Yılmaz",
		GuestCount:      2,
		RoomNumber:      room,
		CheckinDate:     checkin,
		CheckoutDate:    checkout,
		CheckinTime:     "14:00",
		CheckoutTime:    "11:00",
		CreatedAt:       createdAt,
	}
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	repo := NewBookingRepository(setupPool(t))
	ctx := context.Background()
	createdAt := time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)

	booking := testBooking("b1", 1, "2024-06-10", "2024-06-12", createdAt)
	if err := repo.CreateBooking(ctx, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	retrieved, err := repo.GetBooking(ctx, "b1")
	if err != nil {
		t.Fatalf("GetBooking failed: %v", err)
	}
	if retrieved.CustomerName != "Ayşe" || retrieved.CheckinDate != "2024-06-10" {
		t.Fatalf("unexpected booking %+v", retrieved)
	}
	if !retrieved.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected CreatedAt round trip, got %v", retrieved.CreatedAt)
	}

	t.Run("duplicate id", func(t *testing.T) {
		if err := repo.CreateBooking(ctx, booking); !errors.Is(err, persistence.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := repo.GetBooking(ctx, "missing"); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBookingRepository_ListBookings(t *testing.T) {
	repo := NewBookingRepository(setupPool(t))
	ctx := context.Background()
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	seed := []persistence.Booking{
		testBooking("b1", 2, "2024-06-01", "2024-06-03", base),
		testBooking("b2", 1, "2024-06-10", "2024-06-12", base.Add(time.Minute)),
		testBooking("b3", 1, "2024-06-20", "2024-06-22", base.Add(2*time.Minute)),
	}
	for _, booking := range seed {
		if err := repo.CreateBooking(ctx, booking); err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}

	t.Run("unfiltered list follows creation order", func(t *testing.T) {
		got, err := repo.ListBookings(ctx, persistence.BookingFilter{})
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		if len(got) != 3 || got[0].ID != "b1" || got[2].ID != "b3" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("range filter keeps intersecting stays", func(t *testing.T) {
		start, end := "2024-06-03", "2024-06-10"
		got, err := repo.ListBookings(ctx, persistence.BookingFilter{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b2" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("boundary days are inclusive", func(t *testing.T) {
		day := "2024-06-12"
		got, err := repo.ListBookings(ctx, persistence.BookingFilter{StartDate: &day, EndDate: &day})
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b2" {
			t.Fatalf("expected checkout day to count, got %+v", got)
		}
	})

	t.Run("disjoint interval yields nothing", func(t *testing.T) {
		start, end := "2024-07-01", "2024-07-31"
		got, err := repo.ListBookings(ctx, persistence.BookingFilter{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %+v", got)
		}
	})
}

func TestBookingRepository_DeleteBooking(t *testing.T) {
	repo := NewBookingRepository(setupPool(t))
	ctx := context.Background()

	booking := testBooking("b1", 1, "2024-06-10", "2024-06-12", time.Now().UTC())
	if err := repo.CreateBooking(ctx, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	if err := repo.DeleteBooking(ctx, "b1"); err != nil {
		t.Fatalf("DeleteBooking failed: %v", err)
	}
	if err := repo.DeleteBooking(ctx, "b1"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	got, err := repo.ListBookings(ctx, persistence.BookingFilter{})
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected deleted booking to disappear, got %+v", got)
	}
}
