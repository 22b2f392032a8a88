package services

import (
	"math"
	"time"

	"github.com/vjay-git/shivashray/models"
)

// StayNights returns the stay length in whole calendar days. A stay that does
// not span at least one full day yields 0 and must be rejected by the caller.
func StayNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// ComputeTotal derives the fixed charge for a stay from the RoomType pricing
// in effect right now. Pure function: same inputs, same output.
//
//   - base_price covers occupancy up to max_occupancy
//   - each adult beyond max_occupancy adds extra_adult_price per night;
//     if that rate is unset the occupancy is unpriceable and the booking
//     is rejected rather than silently undercharged
//   - each child adds child_price per night when that rate is set
func ComputeTotal(roomType *models.RoomType, nights, adults, children int) (float64, error) {
	if nights <= 0 {
		return 0, validationf("stay must span at least one night")
	}
	if adults < 0 || children < 0 {
		return 0, validationf("guest counts cannot be negative")
	}

	total := roomType.BasePrice * float64(nights)

	if extra := adults - roomType.MaxOccupancy; extra > 0 {
		if roomType.ExtraAdultPrice == nil {
			return 0, validationf("room type %q cannot accommodate %d adults", roomType.Name, adults)
		}
		total += *roomType.ExtraAdultPrice * float64(extra) * float64(nights)
	}

	if children > 0 && roomType.ChildPrice != nil {
		total += *roomType.ChildPrice * float64(children) * float64(nights)
	}

	if total < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, validationf("computed amount is not a valid charge")
	}
	return total, nil
}
