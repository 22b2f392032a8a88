package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vjay-git/shivashray/services"
)

type RoomController struct {
	Rooms        *services.RoomService
	Availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{Rooms: rooms, Availability: availability}
}

// GetRooms handles GET /rooms with optional ?room_type_id=, and
// ?available=true|false&check_in=...&check_out=... for the availability
// filter.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var filter services.RoomFilter

	if raw := c.Query("room_type_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid room_type_id"})
			return
		}
		typeID := uint(id)
		filter.RoomTypeID = &typeID
	}

	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "invalid available flag"})
			return
		}
		checkIn, errIn := parseDate(c.Query("check_in"))
		checkOut, errOut := parseDate(c.Query("check_out"))
		if errIn != nil || errOut != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "available filter requires check_in and check_out dates"})
			return
		}
		filter.Available = &available
		filter.CheckIn = &checkIn
		filter.CheckOut = &checkOut
	}

	rooms, err := ctrl.Rooms.ListRooms(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomTypes handles GET /rooms/types.
func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.Rooms.ListRoomTypes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// GetRoom handles GET /rooms/:id.
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.Rooms.GetRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CheckAvailability handles GET /rooms/:id/availability?check_in=&check_out=.
func (ctrl *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	checkIn, errIn := parseDate(c.Query("check_in"))
	checkOut, errOut := parseDate(c.Query("check_out"))
	if errIn != nil || errOut != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "validation", "error": "check_in and check_out are required dates"})
		return
	}

	// 404 for unknown/inactive rooms before answering.
	if _, err := ctrl.Rooms.GetRoom(id); err != nil {
		respondServiceError(c, err)
		return
	}

	available, err := ctrl.Availability.IsAvailable(id, checkIn, checkOut, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room_id":   id,
		"check_in":  checkIn,
		"check_out": checkOut,
		"available": available,
	})
}
