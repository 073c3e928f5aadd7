package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

// RoomService เป็น wrapper รอบ *gorm.DB สำหรับ room catalog CRUD
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room_not_found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("db error fetching room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Create(room *models.Room) error {
	room.Name = strings.TrimSpace(room.Name)
	if room.Name == "" {
		return fmt.Errorf("room_name_required: %w", ErrInvalidInput)
	}
	if room.Price < 0 {
		return fmt.Errorf("room_price_negative: %w", ErrInvalidInput)
	}
	if room.MaxGuests < 1 {
		return fmt.Errorf("room_max_guests_invalid: %w", ErrInvalidInput)
	}

	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update applies a partial field map to an existing room. Identity and
// timestamp columns are stripped before the update so a client cannot
// rewrite them.
func (s *RoomService) Update(id uint, fields map[string]interface{}) (*models.Room, error) {
	delete(fields, "id")
	delete(fields, "ID")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	room, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.DB.Model(room).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("failed to update room %d: %w", id, err)
		}
	}

	return s.Get(id)
}

func (s *RoomService) Delete(id uint) error {
	room, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(room).Error; err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}
	return nil
}
