package config

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vjay-git/shivashray/models"
)

// Connect opens the MySQL connection, migrates the schema and seeds the
// baseline catalog.
func Connect(cfg *Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RoomType{},
		&models.Amenity{},
		&models.Room{},
		&models.Booking{},
		&models.Service{},
	)
}

func floatPtr(v float64) *float64 { return &v }

// SeedDatabase populates the baseline catalog. Every block is idempotent:
// rerunning against a populated database is a no-op.
func SeedDatabase(db *gorm.DB) {
	// ---------------- Admin user ----------------
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Email:          "admin@shivashrayhotel.com",
				HashedPassword: string(hash),
				FullName:       "Admin User",
				Phone:          "+91-9876543210",
				IsActive:       true,
				Role:           models.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Amenities ----------------
	amenities := []models.Amenity{
		{Name: "WiFi", Icon: "wifi"},
		{Name: "Air Conditioning", Icon: "ac"},
		{Name: "TV", Icon: "tv"},
		{Name: "Mini Bar", Icon: "minibar"},
		{Name: "Room Service", Icon: "room-service"},
		{Name: "Balcony", Icon: "balcony"},
		{Name: "River View", Icon: "view"},
	}
	for _, amenity := range amenities {
		var existing models.Amenity
		if err := db.Where("name = ?", amenity.Name).First(&existing).Error; err != nil {
			if err := db.Create(&amenity).Error; err != nil {
				log.Printf("warning: failed to seed amenity %s: %v", amenity.Name, err)
			}
		}
	}

	// ---------------- Room types ----------------
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{
				Name:            "Standard",
				Description:     "Comfortable standard room with essential amenities",
				MaxOccupancy:    2,
				BasePrice:       2000,
				ExtraAdultPrice: floatPtr(600),
				ChildPrice:      floatPtr(400),
			},
			{
				Name:            "Deluxe",
				Description:     "Spacious deluxe room with premium amenities",
				MaxOccupancy:    3,
				BasePrice:       3500,
				ExtraAdultPrice: floatPtr(800),
				ChildPrice:      floatPtr(500),
			},
			{
				Name:            "Suite",
				Description:     "Luxurious suite with separate living area",
				MaxOccupancy:    4,
				BasePrice:       5500,
				ExtraAdultPrice: floatPtr(1000),
				ChildPrice:      floatPtr(600),
			},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("Room types seeded")
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		typeByName := map[string]uint{}
		var roomTypes []models.RoomType
		db.Find(&roomTypes)
		for _, rt := range roomTypes {
			typeByName[rt.Name] = rt.ID
		}

		seedRooms := []struct {
			Number string
			Type   string
			Floor  int
		}{
			{"101", "Standard", 1},
			{"102", "Standard", 1},
			{"103", "Standard", 1},
			{"201", "Deluxe", 2},
			{"202", "Deluxe", 2},
			{"301", "Suite", 3},
			{"302", "Suite", 3},
		}
		for _, sr := range seedRooms {
			typeID, ok := typeByName[sr.Type]
			if !ok {
				continue
			}
			floor := sr.Floor
			room := models.Room{
				RoomNumber:  sr.Number,
				RoomTypeID:  typeID,
				Floor:       &floor,
				IsActive:    true,
				Description: "Room " + sr.Number + " - " + sr.Type,
			}
			if err := db.Create(&room).Error; err != nil {
				log.Printf("warning: failed to seed room %s: %v", sr.Number, err)
			}
		}
		log.Println("Rooms seeded")
	}

	// ---------------- Hotel services ----------------
	var svcCount int64
	db.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		hotelServices := []models.Service{
			{Name: "Restaurant", Description: "Multi-cuisine restaurant serving delicious meals", Icon: "restaurant", IsActive: true},
			{Name: "Spa & Wellness", Description: "Relaxing spa treatments and wellness services", Icon: "spa", IsActive: true},
			{Name: "Concierge", Description: "24/7 concierge service for your convenience", Icon: "concierge", IsActive: true},
			{Name: "Laundry", Description: "Professional laundry and dry cleaning services", Icon: "laundry", IsActive: true},
			{Name: "Airport Transfer", Description: "Complimentary airport pickup and drop", Icon: "transfer", IsActive: true},
			{Name: "Tour Booking", Description: "Assistance with local tour and travel bookings", Icon: "tour", IsActive: true},
		}
		if err := db.Create(&hotelServices).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("Services seeded")
		}
	}
}
