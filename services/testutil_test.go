package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotelbooking/constants"
	"hotelbooking/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.User{}, &models.Reservation{}))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, roomType string, price float64) models.Room {
	t.Helper()

	room := models.Room{
		Type:   roomType,
		Price:  price,
		Status: constants.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	user := models.User{
		Name:  name,
		Email: email,
		Role:  constants.RoleClient,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
