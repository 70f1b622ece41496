package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/hotel-booking/internal/persistence"
)

func newBooking(id string, room int, checkin, checkout string, createdAt time.Time) persistence.Booking {
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

func TestStorageBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	store := Open()
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	booking := newBooking("b1", 1, "2024-06-10", "2024-06-12", base)
	if err := store.CreateBooking(ctx, booking); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	t.Run("duplicate id is rejected", func(t *testing.T) {
		if err := store.CreateBooking(ctx, booking); !errors.Is(err, persistence.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("get returns the stored booking", func(t *testing.T) {
		got, err := store.GetBooking(ctx, "b1")
		if err != nil {
			t.Fatalf("GetBooking failed: %v", err)
		}
		if got.CustomerName != "Ayşe" || got.RoomNumber != 1 {
			t.Fatalf("unexpected booking %+v", got)
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		if _, err := store.GetBooking(ctx, "missing"); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete is permanent and not idempotent", func(t *testing.T) {
		if err := store.DeleteBooking(ctx, "b1"); err != nil {
			t.Fatalf("DeleteBooking failed: %v", err)
		}
		if err := store.DeleteBooking(ctx, "b1"); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestStorageListBookings(t *testing.T) {
	ctx := context.Background()
	store := Open()
	base := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	seed := []persistence.Booking{
		newBooking("b2", 1, "2024-06-10", "2024-06-12", base.Add(time.Minute)),
		newBooking("b1", 2, "2024-06-01", "2024-06-03", base),
		newBooking("b3", 1, "2024-06-20", "2024-06-22", base.Add(2*time.Minute)),
	}
	for _, booking := range seed {
		if err := store.CreateBooking(ctx, booking); err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}

	t.Run("unfiltered list follows creation order", func(t *testing.T) {
		got, err := store.ListBookings(ctx, persistence.BookingFilter{})
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		if len(got) != 3 || got[0].ID != "b1" || got[1].ID != "b2" || got[2].ID != "b3" {
			t.Fatalf("unexpected order %+v", got)
		}
	})

	t.Run("range filter keeps intersecting stays", func(t *testing.T) {
		start, end := "2024-06-03", "2024-06-10"
		got, err := store.ListBookings(ctx, persistence.BookingFilter{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != "b1" || got[1].ID != "b2" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("single-day filter", func(t *testing.T) {
		day := "2024-06-21"
		got, err := store.ListBookings(ctx, persistence.BookingFilter{StartDate: &day, EndDate: &day})
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b3" {
			t.Fatalf("unexpected result %+v", got)
		}
	})
}

func TestStorageUsers(t *testing.T) {
	ctx := context.Background()
	store := Open()

	user := persistence.User{ID: "u1", Username: "reception", PasswordHash: "$argon2id$stub"}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("username uniqueness ignores case", func(t *testing.T) {
		clash := persistence.User{ID: "u2", Username: "Reception", PasswordHash: "$argon2id$stub"}
		if err := store.CreateUser(ctx, clash); !errors.Is(err, persistence.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("lookup by username", func(t *testing.T) {
		got, err := store.GetUserByUsername(ctx, "RECEPTION")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if got.ID != "u1" {
			t.Fatalf("unexpected user %+v", got)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		if _, err := store.GetUserByUsername(ctx, "nobody"); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
