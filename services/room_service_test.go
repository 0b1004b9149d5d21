package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/constants"
	"hotelbooking/dto"
	"hotelbooking/errors"
	"hotelbooking/models"
)

func TestRoomService_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)

	room, err := svc.Create(dto.RoomRequest{
		Type:        "Double",
		Price:       120,
		Description: "sea view",
	})
	require.NoError(t, err)
	assert.NotZero(t, room.ID)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status, "status defaults to available")

	got, err := svc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Double", got.Type)
	assert.Equal(t, 120.0, got.Price)
}

func TestRoomService_Create_Invalid(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)

	_, err := svc.Create(dto.RoomRequest{Type: "double", Price: -1})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)

	_, err = svc.Create(dto.RoomRequest{Type: "double", Price: 10, Status: "occupied"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidStatus, errors.GetAppError(err).Code)
}

func TestRoomService_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)

	_, err := svc.GetByID(99)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRoomNotFound, errors.GetAppError(err).Code)
}

func TestRoomService_Update(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)

	room, err := svc.Create(dto.RoomRequest{Type: "double", Price: 120})
	require.NoError(t, err)

	updated, err := svc.Update(room.ID, dto.RoomRequest{
		Type:   "double deluxe",
		Price:  150,
		Status: "Reserved",
	})
	require.NoError(t, err)
	assert.Equal(t, "double deluxe", updated.Type)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, constants.RoomStatusReserved, updated.Status, "status is lowercased")
}

func TestRoomService_DeleteCascadesReservations(t *testing.T) {
	db := setupTestDB(t)
	rooms := NewRoomService(db, nil)
	reservations := NewReservationService(db)

	room := seedRoom(t, db, "double", 120)
	user := seedUser(t, db, "Ana", "ana@example.com")

	created, err := reservations.Create(dto.ReservationRequest{
		UserID: user.ID, RoomID: room.ID, Start: "2024-01-10", End: "2024-01-12",
	})
	require.NoError(t, err)

	require.NoError(t, rooms.Delete(room.ID))

	_, err = rooms.GetByID(room.ID)
	assert.Error(t, err)

	_, err = reservations.GetByID(created.ID)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDBNotFound, errors.GetAppError(err).Code,
		"dependent reservations are removed with the room")
}

func TestRoomService_GetAll_NormalizesFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)

	require.NoError(t, db.Create(&models.Room{Type: " Double ", Status: "AVAILABLE", Description: " sea view "}).Error)

	rooms, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Double", rooms[0].Type)
	assert.Equal(t, constants.RoomStatusAvailable, rooms[0].Status)
	assert.Equal(t, "sea view", rooms[0].Description)
}

func TestRoomService_Search(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)

	_, err := svc.Create(dto.RoomRequest{Type: "suite", Price: 250, Description: "top floor suite"})
	require.NoError(t, err)
	_, err = svc.Create(dto.RoomRequest{Type: "single", Price: 80})
	require.NoError(t, err)

	results, err := svc.Search("suite")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "suite", results[0].Type)

	// Accented queries match their plain form.
	results, err = svc.Search("Suíte")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "suite", results[0].Type)

	_, err = svc.Search("   ")
	assert.Error(t, err)
}
