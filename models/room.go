package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	Name        string `json:"name" gorm:"size:255"`
	Description string `json:"description" gorm:"type:text"`

	Price     float64 `json:"price"`
	MaxGuests int     `json:"maxGuests" gorm:"column:max_guests;default:2"`

	Image string `json:"image" gorm:"size:512"`

	// Ordered list of amenity labels, stored as a JSON array column.
	Amenities datatypes.JSON `json:"amenities"`

	IsAvailable bool `json:"isAvailable" gorm:"column:is_available;default:true"`
}
