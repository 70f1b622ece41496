package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/hotel-booking/internal/application"
	"github.com/example/hotel-booking/internal/calendar"
	"github.com/example/hotel-booking/internal/persistence"
	"github.com/example/hotel-booking/internal/persistence/memory"
	"github.com/example/hotel-booking/internal/testfixtures"
)

func TestBookingModelConversions(t *testing.T) {
	fixture := testfixtures.NewBookingFixture()

	stored := toPersistenceBooking(fixture.Application())
	if stored.CheckinDate != fixture.CheckinDate.String() {
		t.Fatalf("expected ISO date string, got %q", stored.CheckinDate)
	}

	restored, err := toApplicationBooking(stored)
	if err != nil {
		t.Fatalf("toApplicationBooking failed: %v", err)
	}
	if restored != fixture.Application() {
		t.Fatalf("round trip mismatch: %+v vs %+v", restored, fixture.Application())
	}

	t.Run("corrupt stored dates are surfaced", func(t *testing.T) {
		broken := stored
		broken.CheckinDate = "garbage"
		if _, err := toApplicationBooking(broken); err == nil {
			t.Fatalf("expected error for corrupt date")
		}
	})
}

func newMemoryService(t *testing.T) *application.BookingService {
	t.Helper()

	storage := memory.Open()
	t.Cleanup(func() { _ = storage.Close() })

	clock := testfixtures.NewClock(time.Time{})
	ids := testfixtures.NewIDGenerator("booking")
	return application.NewBookingService(
		newBookingRepositoryAdapter(storage),
		application.BookingServiceConfig{},
		ids.NextFunc(),
		func() time.Time { return clock.Advance(time.Minute) },
	)
}

func TestBookingFlow(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(t)

	june := func(d int) calendar.Date { return calendar.NewDate(2024, time.June, d) }

	first, _, err := service.CreateBooking(ctx, application.BookingInput{
		CustomerName:    "Ayşe",
		CustomerSurname: "Yılmaz",
		GuestCount:      2,
		RoomNumber:      1,
		CheckinDate:     june(10),
		CheckoutDate:    june(12),
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	t.Run("range query finds the stay inclusively", func(t *testing.T) {
		got, err := service.BookingsOverlappingRange(ctx, june(12), june(20))
		if err != nil {
			t.Fatalf("BookingsOverlappingRange failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != first.ID {
			t.Fatalf("expected checkout day to count, got %+v", got)
		}

		got, err = service.BookingsOverlappingRange(ctx, june(13), june(20))
		if err != nil {
			t.Fatalf("BookingsOverlappingRange failed: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected disjoint range to miss, got %+v", got)
		}
	})

	t.Run("double booking is accepted with a warning", func(t *testing.T) {
		overlapping := testfixtures.NewBookingFixture(
			testfixtures.WithBookingRoom(1),
			testfixtures.WithBookingDates(june(11), june(13)),
		)
		_, warnings, err := service.CreateBooking(ctx, overlapping.Input())
		if err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
		if len(warnings) != 1 || warnings[0].BookingID != first.ID {
			t.Fatalf("expected warning about first booking, got %+v", warnings)
		}

		occupancy, err := service.DayOccupancy(ctx, june(11))
		if err != nil {
			t.Fatalf("DayOccupancy failed: %v", err)
		}
		if !occupancy.Rooms[0].Collision() {
			t.Fatalf("expected room 1 collision, got %+v", occupancy.Rooms[0])
		}
	})

	t.Run("delete removes the booking from listings", func(t *testing.T) {
		if err := service.DeleteBooking(ctx, first.ID); err != nil {
			t.Fatalf("DeleteBooking failed: %v", err)
		}
		if err := service.DeleteBooking(ctx, first.ID); !errors.Is(err, application.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}

		all, err := service.ListBookings(ctx)
		if err != nil {
			t.Fatalf("ListBookings failed: %v", err)
		}
		for _, booking := range all {
			if booking.ID == first.ID {
				t.Fatalf("deleted booking still listed")
			}
		}
	})
}

func TestUserDirectoryAdapter(t *testing.T) {
	ctx := context.Background()
	storage := memory.Open()
	t.Cleanup(func() { _ = storage.Close() })

	adapter := newUserDirectoryAdapter(storage)
	user := application.User{ID: "u1", Username: "reception", CreatedAt: testfixtures.ReferenceTime()}

	if err := adapter.CreateUser(ctx, user, "$argon2id$stub"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, hash, err := adapter.GetUserByUsername(ctx, "reception")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if got.ID != "u1" || hash != "$argon2id$stub" {
		t.Fatalf("unexpected result %+v / %q", got, hash)
	}

	if _, _, err := adapter.GetUserByUsername(ctx, "nobody"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
