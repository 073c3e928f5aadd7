package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func amenitiesJSON(labels ...string) datatypes.JSON {
	b, err := json.Marshal(labels)
	if err != nil {
		log.Printf("warning: failed to marshal amenities: %v", err)
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

// SeedDatabase ensures a default admin account and a starter room catalog
// exist so a fresh install is usable immediately.
func SeedDatabase() {
	// ---------------- Users ----------------
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Name:     "Admin User",
				Email:    envOrDefault("ADMIN_EMAIL", "admin@hotel.com"),
				Password: string(hash),
				Role:     models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{
				Name:        "Deluxe Room",
				Description: "Spacious room with king-size bed and city view.",
				Price:       150,
				MaxGuests:   2,
				Image:       "https://images.unsplash.com/photo-1568495248636-6432b97bd949?w=500",
				Amenities:   amenitiesJSON("Free WiFi", "TV", "Air Conditioning", "Mini Bar"),
				IsAvailable: true,
			},
			{
				Name:        "Standard Room",
				Description: "Comfortable room with queen-size bed.",
				Price:       90,
				MaxGuests:   2,
				Image:       "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=500",
				Amenities:   amenitiesJSON("Free WiFi", "TV", "Air Conditioning"),
				IsAvailable: true,
			},
			{
				Name:        "Family Suite",
				Description: "Large suite perfect for families.",
				Price:       220,
				MaxGuests:   4,
				Image:       "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=500",
				Amenities:   amenitiesJSON("Free WiFi", "Kitchenette", "2 Bathrooms"),
				IsAvailable: true,
			},
			{
				Name:        "Executive Suite",
				Description: "Luxury suite for business travelers.",
				Price:       280,
				MaxGuests:   2,
				Image:       "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=500",
				Amenities:   amenitiesJSON("Free WiFi", "Smart TV", "Work Desk", "Mini Bar"),
				IsAvailable: true,
			},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_booking_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
