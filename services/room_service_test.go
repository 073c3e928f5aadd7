package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking-backend/models"
)

func TestCreateRoomValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomService(db)

	err := svc.Create(&models.Room{Name: "  ", Price: 100, MaxGuests: 2})
	require.ErrorIs(t, err, ErrInvalidInput, "blank name")

	err = svc.Create(&models.Room{Name: "Deluxe", Price: -1, MaxGuests: 2})
	require.ErrorIs(t, err, ErrInvalidInput, "negative price")

	err = svc.Create(&models.Room{Name: "Deluxe", Price: 100, MaxGuests: 0})
	require.ErrorIs(t, err, ErrInvalidInput, "non-positive max guests")

	err = svc.Create(&models.Room{Name: "Deluxe", Price: 100, MaxGuests: 2, IsAvailable: true})
	require.NoError(t, err)
}

func TestGetRoomNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Get(4242)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRoomStripsProtectedFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomService(db)
	room := seedRoom(t, db, 100, 2)

	updated, err := svc.Update(room.ID, map[string]interface{}{
		"id":    9999,
		"price": 120.0,
	})
	require.NoError(t, err)
	assert.Equal(t, room.ID, updated.ID, "id cannot be rewritten")
	assert.Equal(t, float64(120), updated.Price)
}

func TestUpdateRoomNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Update(4242, map[string]interface{}{"price": 120.0})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRoom(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomService(db)
	room := seedRoom(t, db, 100, 2)

	require.NoError(t, svc.Delete(room.ID))

	_, err := svc.Get(room.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(room.ID), ErrNotFound, "delete of a deleted room")
}

func TestListRooms(t *testing.T) {
	db := openTestDB(t)
	svc := NewRoomService(db)
	seedRoom(t, db, 100, 2)
	seedRoom(t, db, 220, 4)

	rooms, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}
