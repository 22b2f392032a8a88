package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vjay-git/shivashray/services"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

type createBookingPayload struct {
	RoomID           uint   `json:"room_id" binding:"required"`
	CheckInDate      string `json:"check_in_date" binding:"required"`
	CheckOutDate     string `json:"check_out_date" binding:"required"`
	NumberOfAdults   int    `json:"number_of_adults"`
	NumberOfChildren int    `json:"number_of_children"`
	GuestName        string `json:"guest_name" binding:"required"`
	GuestEmail       string `json:"guest_email" binding:"required,email"`
	GuestPhone       string `json:"guest_phone"`
	SpecialRequests  string `json:"special_requests"`
}

type updateBookingPayload struct {
	Status          *string `json:"status"`
	PaymentStatus   *string `json:"payment_status"`
	SpecialRequests *string `json:"special_requests"`
}

// CreateBooking handles POST /bookings.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload", "details": err.Error()})
		return
	}

	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid check_in_date format"})
		return
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid check_out_date format"})
		return
	}

	booking, err := ctrl.Bookings.Create(currentUser(c), services.CreateBookingInput{
		RoomID:          payload.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          payload.NumberOfAdults,
		Children:        payload.NumberOfChildren,
		GuestName:       payload.GuestName,
		GuestEmail:      payload.GuestEmail,
		GuestPhone:      payload.GuestPhone,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings handles GET /bookings.
func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	list, err := ctrl.Bookings.ListForUser(currentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBooking handles GET /bookings/:id.
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Get(id, currentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles PATCH /bookings/:id. Non-admin callers can only
// cancel; everything else is rejected in the service.
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload updateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload"})
		return
	}

	booking, err := ctrl.Bookings.Update(id, currentUser(c), services.BookingPatch{
		Status:          payload.Status,
		PaymentStatus:   payload.PaymentStatus,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking handles DELETE /bookings/:id, 204 on success.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Bookings.Cancel(id, currentUser(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
