package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

const dateLayout = "2006-01-02"

// BookingService เป็น wrapper รอบ *gorm.DB เพื่อแยก logic ของ booking
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// nightsBetween returns the whole-day ceiling of the stay duration,
// never less than one night.
func nightsBetween(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Create validates the request, computes the total price from the room's
// nightly rate and persists a new pending booking. Dates use the
// "2006-01-02" layout. There is no overlap check against existing bookings
// for the same room and date range.
func (s *BookingService) Create(userID, roomID uint, checkIn, checkOut string, guests int) (*models.Booking, error) {
	ci, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in format: %w", ErrInvalidInput)
	}
	co, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out format: %w", ErrInvalidInput)
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room_not_found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	if !co.After(ci) {
		return nil, fmt.Errorf("check_out_must_be_after_check_in: %w", ErrInvalidInput)
	}
	if guests < 1 {
		return nil, fmt.Errorf("guests_must_be_positive: %w", ErrInvalidInput)
	}
	if guests > room.MaxGuests {
		return nil, fmt.Errorf("guests_exceed_room_capacity: %w", ErrInvalidInput)
	}

	nights := nightsBetween(ci, co)

	bk := &models.Booking{
		UserID:     userID,
		RoomID:     roomID,
		CheckIn:    ci,
		CheckOut:   co,
		Guests:     guests,
		Nights:     nights,
		TotalPrice: float64(nights) * room.Price,
		Status:     models.BookingPending,
	}

	if err := s.DB.Create(bk).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	bk.Room = room
	return bk, nil
}

// ListForUser returns the user's bookings with rooms resolved, newest first.
func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %d: %w", userID, err)
	}
	return bookings, nil
}

// Cancel sets the booking status to cancelled. Only the owning user may
// cancel here; admins go through UpdateStatus. Cancelling an already
// cancelled or completed booking is an idempotent overwrite, not an error.
func (s *BookingService) Cancel(userID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking_not_found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("db error fetching booking %d: %w", bookingID, err)
	}

	if booking.UserID != userID {
		return nil, fmt.Errorf("not_booking_owner: %w", ErrForbidden)
	}

	if err := s.DB.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
		return nil, fmt.Errorf("failed to cancel booking %d: %w", bookingID, err)
	}
	booking.Status = models.BookingCancelled
	return &booking, nil
}

// ListAll returns every booking with user and room resolved, newest first.
// Admin-only; the role gate lives in the routing layer.
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("User").
		Preload("Room").
		Order("created_at DESC, id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking to any of the enumerated states. No
// transition table is enforced.
func (s *BookingService) UpdateStatus(bookingID uint, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown_booking_status: %w", ErrInvalidInput)
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking_not_found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("db error fetching booking %d: %w", bookingID, err)
	}

	if err := s.DB.Model(&booking).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d status: %w", bookingID, err)
	}
	booking.Status = status
	return &booking, nil
}
