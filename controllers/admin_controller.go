package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/vjay-git/shivashray/services"
)

// AdminController groups the administrative surface. The /admin route group
// already enforces the administrator role before any of these run.
type AdminController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
	Catalog  *services.ServiceCatalog
}

func NewAdminController(rooms *services.RoomService, bookings *services.BookingService, catalog *services.ServiceCatalog) *AdminController {
	return &AdminController{Rooms: rooms, Bookings: bookings, Catalog: catalog}
}

type createRoomPayload struct {
	RoomNumber  string         `json:"room_number" binding:"required"`
	RoomTypeID  uint           `json:"room_type_id" binding:"required"`
	Floor       *int           `json:"floor"`
	Description string         `json:"description"`
	ImageURLs   datatypes.JSON `json:"image_urls"`
	AmenityIDs  []uint         `json:"amenity_ids"`
}

type createRoomTypePayload struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	MaxOccupancy    int      `json:"max_occupancy"`
	BasePrice       float64  `json:"base_price" binding:"required"`
	ExtraAdultPrice *float64 `json:"extra_adult_price"`
	ChildPrice      *float64 `json:"child_price"`
}

type createServicePayload struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ImageURL    string `json:"image_url"`
}

// CreateRoom handles POST /admin/rooms.
func (ctrl *AdminController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload", "details": err.Error()})
		return
	}

	room, err := ctrl.Rooms.CreateRoom(services.CreateRoomInput{
		RoomNumber:  payload.RoomNumber,
		RoomTypeID:  payload.RoomTypeID,
		Floor:       payload.Floor,
		Description: payload.Description,
		ImageURLs:   payload.ImageURLs,
		AmenityIDs:  payload.AmenityIDs,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PATCH /admin/rooms/:id with a free-form field patch.
func (ctrl *AdminController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload"})
		return
	}

	room, err := ctrl.Rooms.UpdateRoom(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeactivateRoom handles DELETE /admin/rooms/:id. The room keeps its booking
// history; it just leaves the catalog.
func (ctrl *AdminController) DeactivateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Rooms.DeactivateRoom(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deactivated"})
}

// CreateRoomType handles POST /admin/room-types.
func (ctrl *AdminController) CreateRoomType(c *gin.Context) {
	var payload createRoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload", "details": err.Error()})
		return
	}

	roomType, err := ctrl.Rooms.CreateRoomType(services.CreateRoomTypeInput{
		Name:            payload.Name,
		Description:     payload.Description,
		MaxOccupancy:    payload.MaxOccupancy,
		BasePrice:       payload.BasePrice,
		ExtraAdultPrice: payload.ExtraAdultPrice,
		ChildPrice:      payload.ChildPrice,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, roomType)
}

// CreateService handles POST /admin/services.
func (ctrl *AdminController) CreateService(c *gin.Context) {
	var payload createServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid payload"})
		return
	}

	svc, err := ctrl.Catalog.Create(services.CreateServiceInput{
		Name:        payload.Name,
		Description: payload.Description,
		Icon:        payload.Icon,
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// GetAllBookings handles GET /admin/bookings.
func (ctrl *AdminController) GetAllBookings(c *gin.Context) {
	list, err := ctrl.Bookings.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateBooking handles PATCH /admin/bookings/:id. Same service path as the
// guest PATCH; the principal's admin role unlocks the full field set.
func (ctrl *AdminController) UpdateBooking(c *gin.Context) {
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
