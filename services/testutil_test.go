package services

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vjay-git/shivashray/config"
	"github.com/vjay-git/shivashray/models"
)

// newTestDB opens a private in-memory database per test. A single pooled
// connection keeps the shared-cache database alive and serializes sqlite
// writes under concurrent tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func floatPtrTest(v float64) *float64 { return &v }
func strPtr(s string) *string         { return &s }

func seedRoomType(t *testing.T, db *gorm.DB, name string, maxOccupancy int, basePrice float64, extraAdult, child *float64) *models.RoomType {
	t.Helper()
	rt := models.RoomType{
		Name:            name,
		MaxOccupancy:    maxOccupancy,
		BasePrice:       basePrice,
		ExtraAdultPrice: extraAdult,
		ChildPrice:      child,
	}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed room type: %v", err)
	}
	return &rt
}

func seedRoom(t *testing.T, db *gorm.DB, number string, roomTypeID uint, active bool) *models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber: number,
		RoomTypeID: roomTypeID,
		IsActive:   active,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room %s: %v", number, err)
	}
	return &room
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := models.User{
		Email:          email,
		HashedPassword: "x",
		FullName:       "Test User",
		IsActive:       true,
		Role:           role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return &user
}

func seedBooking(t *testing.T, db *gorm.DB, roomID uint, userID *uint, status string, checkIn, checkOut time.Time) *models.Booking {
	t.Helper()
	booking := models.Booking{
		ReferenceCode:  newReferenceCode(),
		RoomID:         roomID,
		UserID:         userID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: 2,
		NumberOfAdults: 2,
		TotalAmount:    4000,
		Status:         status,
		PaymentStatus:  models.PaymentStatusPending,
		GuestName:      "Guest",
		GuestEmail:     "guest@example.com",
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return &booking
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
