package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/models"
)

// openTestDB opens an in-memory SQLite database named after the test so
// parallel tests stay isolated, and applies the app migrations.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, price float64, maxGuests int) models.Room {
	t.Helper()
	room := models.Room{
		Name:        "Deluxe Room",
		Description: "Spacious room with king-size bed and city view.",
		Price:       price,
		MaxGuests:   maxGuests,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "$2a$10$not.a.real.hash.but.fine.for.tests",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
