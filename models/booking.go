package models

import "time"

// Booking statuses. Confirmed and checked_in are "blocking": a room with a
// blocking booking is unavailable for that interval. Pending, checked_out and
// cancelled bookings never block.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// BlockingStatuses is the set used by every availability query.
var BlockingStatuses = []string{BookingStatusConfirmed, BookingStatusCheckedIn}

func IsBlockingStatus(status string) bool {
	return status == BookingStatusConfirmed || status == BookingStatusCheckedIn
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:20" json:"reference_code"`
	UserID        *uint  `gorm:"index;column:user_id" json:"user_id,omitempty"`
	RoomID        uint   `gorm:"index;column:room_id" json:"room_id"`

	CheckInDate  time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;index" json:"check_out_date"`

	NumberOfGuests   int `gorm:"default:1" json:"number_of_guests"`
	NumberOfAdults   int `json:"number_of_adults"`
	NumberOfChildren int `json:"number_of_children"`

	// Fixed at creation from the RoomType pricing in effect at that moment;
	// later price changes never alter existing bookings.
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`

	Status        string `gorm:"size:20;index;default:pending" json:"status"`
	PaymentStatus string `gorm:"size:20;default:pending" json:"payment_status"`

	GuestName       string `gorm:"size:255" json:"guest_name"`
	GuestEmail      string `gorm:"size:150" json:"guest_email"`
	GuestPhone      string `gorm:"size:50" json:"guest_phone,omitempty"`
	SpecialRequests string `gorm:"type:text" json:"special_requests,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// Overlaps reports whether two half-open stay intervals collide. Back-to-back
// stays (checkout day == next check-in day) do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}
