package services

import (
	"fmt"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// Stats is the admin dashboard aggregate. Revenue and average cover only
// confirmed bookings; both are zero when none exist.
type Stats struct {
	TotalUsers     int64   `json:"totalUsers"`
	TotalRooms     int64   `json:"totalRooms"`
	TotalBookings  int64   `json:"totalBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AverageBooking float64 `json:"averageBooking"`
}

func (s *AdminService) Stats() (*Stats, error) {
	stats := &Stats{}

	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	row := s.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0), COALESCE(AVG(total_price), 0)").
		Where("status = ?", models.BookingConfirmed).
		Row()
	if err := row.Scan(&stats.TotalRevenue, &stats.AverageBooking); err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return stats, nil
}

// ListUsers returns every account for the admin user list. The password
// hash never serializes (json:"-" on the model).
func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
