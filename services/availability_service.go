package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/vjay-git/shivashray/models"
)

// AvailabilityService answers one question: does any blocking booking overlap
// a requested interval on a room? Read-only; safe to call concurrently. It
// does not by itself guarantee atomicity against a concurrent conflicting
// write; BookingService serializes check+write per room for that.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// IsAvailable reports whether no confirmed/checked-in booking on roomID
// overlaps [checkIn, checkOut). Overlap is open-interval: a stay ending on T
// and another starting on T do not collide. excludeBookingID, when non-nil,
// skips that booking so an existing booking can be re-validated during an
// update.
func (s *AvailabilityService) IsAvailable(roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, validationf("check_out_date must be after check_in_date")
	}

	var count int64
	q := s.DB.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", models.BlockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeBookingID != nil {
		q = q.Where("id <> ?", *excludeBookingID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// isAvailableTx runs the same query on a transaction handle so callers
// holding the per-room critical section see a consistent snapshot.
func isAvailableTx(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID *uint) (bool, error) {
	return (&AvailabilityService{DB: tx}).IsAvailable(roomID, checkIn, checkOut, excludeBookingID)
}
