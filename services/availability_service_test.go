package services

import (
	"errors"
	"testing"

	"github.com/vjay-git/shivashray/models"
)

func TestIsAvailableOverlapRules(t *testing.T) {
	db := newTestDB(t)
	rt := seedRoomType(t, db, "Standard", 2, 2000, nil, nil)
	room := seedRoom(t, db, "101", rt.ID, true)

	// Room 101 holds a confirmed stay 2025-06-01 -> 2025-06-05.
	seedBooking(t, db, room.ID, nil, models.BookingStatusConfirmed,
		date(2025, 6, 1), date(2025, 6, 5))

	svc := NewAvailabilityService(db)

	// Shared boundary: checkout day equals the next check-in day.
	free, err := svc.IsAvailable(room.ID, date(2025, 6, 5), date(2025, 6, 7), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("back-to-back interval should be available")
	}

	// Overlapping interval.
	free, err = svc.IsAvailable(room.ID, date(2025, 6, 4), date(2025, 6, 6), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free {
		t.Fatal("overlapping interval should not be available")
	}

	// Fully enclosing interval.
	free, err = svc.IsAvailable(room.ID, date(2025, 5, 30), date(2025, 6, 10), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free {
		t.Fatal("enclosing interval should not be available")
	}

	// Interval before the stay.
	free, err = svc.IsAvailable(room.ID, date(2025, 5, 28), date(2025, 6, 1), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("interval ending on check-in day should be available")
	}
}

func TestIsAvailableIgnoresNonBlockingStatuses(t *testing.T) {
	db := newTestDB(t)
	rt := seedRoomType(t, db, "Standard", 2, 2000, nil, nil)
	room := seedRoom(t, db, "102", rt.ID, true)

	for _, status := range []string{
		models.BookingStatusPending,
		models.BookingStatusCheckedOut,
		models.BookingStatusCancelled,
	} {
		seedBooking(t, db, room.ID, nil, status, date(2025, 6, 1), date(2025, 6, 5))
	}

	svc := NewAvailabilityService(db)
	free, err := svc.IsAvailable(room.ID, date(2025, 6, 2), date(2025, 6, 4), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("pending/checked_out/cancelled bookings must not block the room")
	}
}

func TestIsAvailableBlocksOnCheckedIn(t *testing.T) {
	db := newTestDB(t)
	rt := seedRoomType(t, db, "Standard", 2, 2000, nil, nil)
	room := seedRoom(t, db, "103", rt.ID, true)

	seedBooking(t, db, room.ID, nil, models.BookingStatusCheckedIn,
		date(2025, 6, 1), date(2025, 6, 5))

	svc := NewAvailabilityService(db)
	free, err := svc.IsAvailable(room.ID, date(2025, 6, 2), date(2025, 6, 4), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free {
		t.Fatal("checked_in booking must block the room")
	}
}

func TestIsAvailableExcludesGivenBooking(t *testing.T) {
	db := newTestDB(t)
	rt := seedRoomType(t, db, "Standard", 2, 2000, nil, nil)
	room := seedRoom(t, db, "104", rt.ID, true)

	existing := seedBooking(t, db, room.ID, nil, models.BookingStatusConfirmed,
		date(2025, 6, 1), date(2025, 6, 5))

	svc := NewAvailabilityService(db)
	free, err := svc.IsAvailable(room.ID, date(2025, 6, 1), date(2025, 6, 5), &existing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("excluded booking must not count as a conflict")
	}
}

func TestIsAvailableRejectsBadInterval(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvailabilityService(db)

	if _, err := svc.IsAvailable(1, date(2025, 6, 5), date(2025, 6, 5), nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty interval, got %v", err)
	}
	if _, err := svc.IsAvailable(1, date(2025, 6, 5), date(2025, 6, 4), nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for inverted interval, got %v", err)
	}
}

func TestIsAvailableScopedToRoom(t *testing.T) {
	db := newTestDB(t)
	rt := seedRoomType(t, db, "Standard", 2, 2000, nil, nil)
	roomA := seedRoom(t, db, "105", rt.ID, true)
	roomB := seedRoom(t, db, "106", rt.ID, true)

	seedBooking(t, db, roomA.ID, nil, models.BookingStatusConfirmed,
		date(2025, 6, 1), date(2025, 6, 5))

	svc := NewAvailabilityService(db)
	free, err := svc.IsAvailable(roomB.ID, date(2025, 6, 2), date(2025, 6, 4), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Fatal("a booking on another room must not block this one")
	}
}
