package models

import (
	"time"
)

// BookingStatus is the booking state machine. The enum is closed but the
// transition table is open: an admin may move a booking between any two
// states.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking records a reservation of a Room by a User over a date range.
// Bookings are never deleted, only status-transitioned, so the record is
// kept for reporting even after cancellation.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"index;column:user_id" json:"user_id"`
	RoomID uint `gorm:"index;column:room_id" json:"room_id"`

	CheckIn  time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out" json:"check_out"`

	Guests     int           `gorm:"column:guests" json:"guests"`
	Nights     int           `gorm:"column:nights" json:"nights"`
	TotalPrice float64       `gorm:"column:total_price" json:"total_price"`
	Status     BookingStatus `gorm:"column:status;size:32;default:pending" json:"status"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
