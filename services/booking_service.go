package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vjay-git/shivashray/models"
)

// BookingService owns the booking lifecycle: creation, status transitions and
// cancellation. All mutations run inside a store transaction, and any
// sequence that could turn overlapping intervals into more than one blocking
// booking runs inside the per-room critical section.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	log          *logrus.Logger

	locks *roomLocks
}

func NewBookingService(db *gorm.DB, logger *logrus.Logger) *BookingService {
	return &BookingService{
		DB:           db,
		Availability: NewAvailabilityService(db),
		log:          logger,
		locks:        newRoomLocks(),
	}
}

type CreateBookingInput struct {
	RoomID          uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Adults          int
	Children        int
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
}

// BookingPatch carries partial updates. A nil field is "leave unchanged";
// a pointer to the empty string on SpecialRequests clears the field.
type BookingPatch struct {
	Status          *string
	PaymentStatus   *string
	SpecialRequests *string
}

func newReferenceCode() string {
	return "SHV-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create validates the request, vets the room, fixes the price and persists
// the booking as pending/pending. The whole check+insert runs under the
// room's lock so a concurrent confirm cannot slip a blocking booking in
// between the availability check and the write.
func (s *BookingService) Create(user *models.User, in CreateBookingInput) (*models.Booking, error) {
	if !in.CheckOutDate.After(in.CheckInDate) {
		return nil, validationf("check_out_date must be after check_in_date")
	}
	if in.CheckInDate.Before(time.Now()) {
		return nil, validationf("check_in_date cannot be in the past")
	}
	if in.Adults <= 0 {
		in.Adults = 1
	}
	if in.Children < 0 {
		return nil, validationf("number_of_children cannot be negative")
	}
	if strings.TrimSpace(in.GuestName) == "" || strings.TrimSpace(in.GuestEmail) == "" {
		return nil, validationf("guest_name and guest_email are required")
	}

	nights := StayNights(in.CheckInDate, in.CheckOutDate)
	if nights <= 0 {
		return nil, validationf("stay must span at least one night")
	}

	mu := s.locks.lock(in.RoomID)
	defer mu.Unlock()

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Preload("RoomType").
			Where("id = ? AND is_active = ?", in.RoomID, true).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("room %d not found", in.RoomID)
			}
			return err
		}

		available, err := isAvailableTx(tx, in.RoomID, in.CheckInDate, in.CheckOutDate, nil)
		if err != nil {
			return err
		}
		if !available {
			return conflictf("room is not available for the selected dates")
		}

		total, err := ComputeTotal(&room.RoomType, nights, in.Adults, in.Children)
		if err != nil {
			return err
		}

		booking = models.Booking{
			ReferenceCode:    newReferenceCode(),
			RoomID:           in.RoomID,
			CheckInDate:      in.CheckInDate,
			CheckOutDate:     in.CheckOutDate,
			NumberOfGuests:   in.Adults + in.Children,
			NumberOfAdults:   in.Adults,
			NumberOfChildren: in.Children,
			TotalAmount:      total,
			Status:           models.BookingStatusPending,
			PaymentStatus:    models.PaymentStatusPending,
			GuestName:        strings.TrimSpace(in.GuestName),
			GuestEmail:       strings.TrimSpace(in.GuestEmail),
			GuestPhone:       strings.TrimSpace(in.GuestPhone),
			SpecialRequests:  in.SpecialRequests,
		}
		if user != nil {
			id := user.ID
			booking.UserID = &id
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"reference":  booking.ReferenceCode,
		"room_id":    booking.RoomID,
		"total":      booking.TotalAmount,
	}).Info("booking created")

	return &booking, nil
}

// Get loads a booking. Only the owning user and administrators may see it.
func (s *BookingService) Get(bookingID uint, user *models.User) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room.RoomType").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("booking %d not found", bookingID)
		}
		return nil, err
	}
	if !s.canView(&booking, user) {
		return nil, forbiddenf("not authorized to view this booking")
	}
	return &booking, nil
}

// ListForUser returns the caller's own bookings, newest first.
func (s *BookingService) ListForUser(user *models.User) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Preload("Room.RoomType").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListAll returns every booking, newest first. The admin route group gates
// access before this is reached.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Preload("Room.RoomType").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Update applies a partial patch. Non-administrators may only transition a
// booking to cancelled; administrators may set status, payment_status and
// special_requests. Transitioning into a blocking status re-validates
// availability (excluding the booking itself) under the room's lock, which is
// the moment the no-double-booking invariant is enforced.
func (s *BookingService) Update(bookingID uint, user *models.User, patch BookingPatch) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("booking %d not found", bookingID)
		}
		return nil, err
	}

	if user == nil || !user.IsAdmin() {
		// Guests can do exactly one thing here: cancel.
		if patch.Status == nil || *patch.Status != models.BookingStatusCancelled ||
			patch.PaymentStatus != nil || patch.SpecialRequests != nil {
			return nil, forbiddenf("not authorized to update this booking")
		}
		return s.transition(&booking, models.BookingStatusCancelled)
	}

	if patch.Status != nil {
		if !models.IsValidBookingStatus(*patch.Status) {
			return nil, validationf("unknown booking status %q", *patch.Status)
		}
	}
	if patch.PaymentStatus != nil && !models.IsValidPaymentStatus(*patch.PaymentStatus) {
		return nil, validationf("unknown payment status %q", *patch.PaymentStatus)
	}

	if patch.Status != nil && *patch.Status != booking.Status {
		updated, err := s.transition(&booking, *patch.Status)
		if err != nil {
			return nil, err
		}
		booking = *updated
	}

	updates := map[string]interface{}{}
	if patch.PaymentStatus != nil {
		updates["payment_status"] = *patch.PaymentStatus
	}
	if patch.SpecialRequests != nil {
		// Explicit empty string clears the field; omitted leaves it alone.
		updates["special_requests"] = *patch.SpecialRequests
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.Preload("Room.RoomType").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel is the DELETE surface: owner-or-admin only, always targets
// cancelled.
func (s *BookingService) Cancel(bookingID uint, user *models.User) error {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("booking %d not found", bookingID)
		}
		return err
	}
	if !s.canView(&booking, user) {
		return forbiddenf("not authorized to cancel this booking")
	}
	_, err := s.transition(&booking, models.BookingStatusCancelled)
	return err
}

func (s *BookingService) canView(b *models.Booking, user *models.User) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return b.UserID != nil && *b.UserID == user.ID
}

// legal status transitions; checked_out and cancelled are terminal
var transitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCheckedIn, models.BookingStatusCancelled},
	models.BookingStatusCheckedIn: {models.BookingStatusCheckedOut, models.BookingStatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// transition moves a booking to a new status. Entering a blocking status from
// a non-blocking one is the point where overlapping bookings would collide,
// so that path re-checks availability inside the room's critical section.
func (s *BookingService) transition(booking *models.Booking, to string) (*models.Booking, error) {
	if booking.Status == to {
		return booking, nil
	}
	if !canTransition(booking.Status, to) {
		return nil, validationf("cannot transition booking from %s to %s", booking.Status, to)
	}

	becomesBlocking := models.IsBlockingStatus(to) && !models.IsBlockingStatus(booking.Status)
	if becomesBlocking {
		mu := s.locks.lock(booking.RoomID)
		defer mu.Unlock()
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read inside the transaction: the booking may have moved while
		// we waited on the lock.
		var fresh models.Booking
		if err := tx.First(&fresh, booking.ID).Error; err != nil {
			return err
		}
		if fresh.Status == to {
			*booking = fresh
			return nil
		}
		if !canTransition(fresh.Status, to) {
			return validationf("cannot transition booking from %s to %s", fresh.Status, to)
		}

		if becomesBlocking {
			id := fresh.ID
			available, err := isAvailableTx(tx, fresh.RoomID, fresh.CheckInDate, fresh.CheckOutDate, &id)
			if err != nil {
				return err
			}
			if !available {
				return conflictf("room is not available for the selected dates")
			}
		}

		if err := tx.Model(&fresh).Update("status", to).Error; err != nil {
			return err
		}
		fresh.Status = to
		*booking = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"reference":  booking.ReferenceCode,
		"status":     to,
	}).Info("booking status changed")

	return booking, nil
}
