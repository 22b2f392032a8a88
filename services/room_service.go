package services

import (
	"errors"
	"strings"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vjay-git/shivashray/models"
)

// RoomService exposes the guest-facing room catalog and the administrative
// room/room-type operations.
type RoomService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db, Availability: NewAvailabilityService(db)}
}

// RoomFilter narrows ListRooms. Available is a tri-state: nil means no
// availability filtering, true keeps free rooms, false keeps occupied ones.
// The date range is required whenever Available is set.
type RoomFilter struct {
	RoomTypeID *uint
	Available  *bool
	CheckIn    *time.Time
	CheckOut   *time.Time
}

// ListRooms returns active rooms, optionally filtered by room type and by
// computed availability. The availability pass is a per-room scan through the
// checker; swapping in a range-query join only means replacing this loop.
func (s *RoomService) ListRooms(filter RoomFilter) ([]models.Room, error) {
	q := s.DB.Preload("RoomType").Preload("Amenities").
		Where("is_active = ?", true)
	if filter.RoomTypeID != nil {
		q = q.Where("room_type_id = ?", *filter.RoomTypeID)
	}

	var rooms []models.Room
	if err := q.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}

	if filter.Available == nil || filter.CheckIn == nil || filter.CheckOut == nil {
		return rooms, nil
	}

	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		free, err := s.Availability.IsAvailable(room.ID, *filter.CheckIn, *filter.CheckOut, nil)
		if err != nil {
			return nil, err
		}
		if free == *filter.Available {
			filtered = append(filtered, room)
		}
	}
	return filtered, nil
}

// GetRoom returns an active room with its type and amenities.
func (s *RoomService) GetRoom(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").Preload("Amenities").
		Where("id = ? AND is_active = ?", roomID, true).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("room %d not found", roomID)
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) ListRoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Order("base_price").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

type CreateRoomInput struct {
	RoomNumber  string
	RoomTypeID  uint
	Floor       *int
	Description string
	ImageURLs   datatypes.JSON
	AmenityIDs  []uint
}

// CreateRoom registers a new physical room. The room number is unique; a
// duplicate surfaces as a conflict whether caught up front or by the index.
func (s *RoomService) CreateRoom(in CreateRoomInput) (*models.Room, error) {
	number := strings.TrimSpace(in.RoomNumber)
	if number == "" {
		return nil, validationf("room_number is required")
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, in.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("room type %d not found", in.RoomTypeID)
		}
		return nil, err
	}

	room := models.Room{
		RoomNumber:  number,
		RoomTypeID:  in.RoomTypeID,
		Floor:       in.Floor,
		IsActive:    true,
		Description: in.Description,
		ImageURLs:   in.ImageURLs,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return conflictf("room number %q already exists", number)
			}
			return err
		}
		if len(in.AmenityIDs) > 0 {
			var amenities []models.Amenity
			if err := tx.Where("id IN ?", in.AmenityIDs).Find(&amenities).Error; err != nil {
				return err
			}
			if err := tx.Model(&room).Association("Amenities").Replace(amenities); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reloadRoom(room.ID)
}

// UpdateRoom applies a field patch. Identity and bookkeeping columns are
// never client-writable.
func (s *RoomService) UpdateRoom(roomID uint, patch map[string]interface{}) (*models.Room, error) {
	delete(patch, "id")
	delete(patch, "created_at")
	delete(patch, "updated_at")
	if len(patch) == 0 {
		return nil, validationf("empty update")
	}

	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Updates(patch)
	if res.Error != nil {
		if isDuplicateKeyErr(res.Error) {
			return nil, conflictf("room number already exists")
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, notFoundf("room %d not found", roomID)
	}
	return s.reloadRoom(roomID)
}

// DeactivateRoom takes a room out of the catalog without deleting history.
func (s *RoomService) DeactivateRoom(roomID uint) error {
	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundf("room %d not found", roomID)
	}
	return nil
}

type CreateRoomTypeInput struct {
	Name            string
	Description     string
	MaxOccupancy    int
	BasePrice       float64
	ExtraAdultPrice *float64
	ChildPrice      *float64
}

func (s *RoomService) CreateRoomType(in CreateRoomTypeInput) (*models.RoomType, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("name is required")
	}
	if in.BasePrice <= 0 {
		return nil, validationf("base_price must be positive")
	}
	if in.MaxOccupancy <= 0 {
		in.MaxOccupancy = 2
	}

	roomType := models.RoomType{
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		MaxOccupancy:    in.MaxOccupancy,
		BasePrice:       in.BasePrice,
		ExtraAdultPrice: in.ExtraAdultPrice,
		ChildPrice:      in.ChildPrice,
	}
	if err := s.DB.Create(&roomType).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, conflictf("room type %q already exists", roomType.Name)
		}
		return nil, err
	}
	return &roomType, nil
}

func (s *RoomService) reloadRoom(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").Preload("Amenities").First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// isDuplicateKeyErr recognizes unique-index violations from MySQL (error
// 1062), from gorm's translated error, and from the sqlite driver used in
// tests.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *driver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
