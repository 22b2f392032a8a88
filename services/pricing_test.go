package services

import (
	"errors"
	"testing"
	"time"

	"github.com/vjay-git/shivashray/models"
)

func TestStayNights(t *testing.T) {
	cases := []struct {
		in, out time.Time
		want    int
	}{
		{date(2025, 6, 1), date(2025, 6, 3), 2},
		{date(2025, 6, 1), date(2025, 6, 2), 1},
		{date(2025, 6, 1), date(2025, 6, 1), 0},
		{date(2025, 6, 3), date(2025, 6, 1), -2},
	}
	for _, tc := range cases {
		if got := StayNights(tc.in, tc.out); got != tc.want {
			t.Errorf("StayNights(%s, %s) = %d, want %d", tc.in, tc.out, got, tc.want)
		}
	}
}

func TestComputeTotalBaseOnly(t *testing.T) {
	rt := &models.RoomType{Name: "Deluxe", MaxOccupancy: 2, BasePrice: 4000}

	total, err := ComputeTotal(rt, 2, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 8000 {
		t.Fatalf("total = %v, want 8000", total)
	}
}

func TestComputeTotalExtraAdults(t *testing.T) {
	rt := &models.RoomType{
		Name:            "Deluxe",
		MaxOccupancy:    3,
		BasePrice:       3500,
		ExtraAdultPrice: floatPtrTest(800),
	}

	// one adult over the allotment for two nights
	total, err := ComputeTotal(rt, 2, 4, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 3500*2 + 800*2; total != float64(want) {
		t.Fatalf("total = %v, want %d", total, want)
	}
}

func TestComputeTotalChildren(t *testing.T) {
	rt := &models.RoomType{
		Name:         "Suite",
		MaxOccupancy: 4,
		BasePrice:    5500,
		ChildPrice:   floatPtrTest(600),
	}

	total, err := ComputeTotal(rt, 3, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 5500*3 + 600*2*3; total != float64(want) {
		t.Fatalf("total = %v, want %d", total, want)
	}
}

func TestComputeTotalChildrenUnpricedWhenRateUnset(t *testing.T) {
	rt := &models.RoomType{Name: "Standard", MaxOccupancy: 2, BasePrice: 2000}

	total, err := ComputeTotal(rt, 1, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2000 {
		t.Fatalf("total = %v, want 2000 (children free when rate unset)", total)
	}
}

func TestComputeTotalUnpriceableOccupancy(t *testing.T) {
	rt := &models.RoomType{Name: "Standard", MaxOccupancy: 2, BasePrice: 2000}

	if _, err := ComputeTotal(rt, 2, 3, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for adults over capacity without extra rate, got %v", err)
	}
}

func TestComputeTotalRejectsNonPositiveNights(t *testing.T) {
	rt := &models.RoomType{Name: "Standard", MaxOccupancy: 2, BasePrice: 2000}

	for _, nights := range []int{0, -1} {
		if _, err := ComputeTotal(rt, nights, 1, 0); !errors.Is(err, ErrValidation) {
			t.Fatalf("nights=%d: expected ErrValidation, got %v", nights, err)
		}
	}
}

func TestComputeTotalRejectsNegativeGuestCounts(t *testing.T) {
	rt := &models.RoomType{Name: "Standard", MaxOccupancy: 2, BasePrice: 2000}

	if _, err := ComputeTotal(rt, 1, -1, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative adults, got %v", err)
	}
	if _, err := ComputeTotal(rt, 1, 1, -1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative children, got %v", err)
	}
}

func TestComputeTotalIsPure(t *testing.T) {
	rt := &models.RoomType{
		Name:            "Deluxe",
		MaxOccupancy:    3,
		BasePrice:       3500,
		ExtraAdultPrice: floatPtrTest(800),
		ChildPrice:      floatPtrTest(500),
	}

	first, err := ComputeTotal(rt, 4, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeTotal(rt, 4, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced %v then %v", first, second)
	}
}
