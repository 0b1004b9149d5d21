package services

import (
	"time"

	"github.com/olahol/melody"
	"gorm.io/gorm"

	"hotelbooking/constants"
	"hotelbooking/models"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
	"hotelbooking/utils"
)

// RoomStatusSyncAdapter keeps the admin-visible room status field in step
// with the reservation calendar. The availability engine never trusts the
// status field for date queries; this sync only serves the catalog views.
type RoomStatusSyncAdapter struct {
	rooms *RoomService
	log   logger.Logger
}

func NewRoomStatusSyncAdapter(rooms *RoomService, log logger.Logger) *RoomStatusSyncAdapter {
	return &RoomStatusSyncAdapter{rooms: rooms, log: log}
}

// SyncRoomStatuses marks rooms with a confirmed reservation covering today
// as reserved and the rest as available, then broadcasts a summary.
func (a *RoomStatusSyncAdapter) SyncRoomStatuses(m *melody.Melody) error {
	now := time.Now()

	occupied := a.rooms.db.Model(&models.Reservation{}).
		Select("room_id").
		Where("status = ?", constants.ReservationStatusConfirmed).
		Where("start_date <= ? AND end_date > ?", now, now)

	var reserved, released int64
	err := a.rooms.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Room{}).
			Where("id IN (?)", occupied).
			Where("status <> ?", constants.RoomStatusReserved).
			Update("status", constants.RoomStatusReserved)
		if res.Error != nil {
			return res.Error
		}
		reserved = res.RowsAffected

		res = tx.Model(&models.Room{}).
			Where("id NOT IN (?)", occupied).
			Where("status <> ?", constants.RoomStatusAvailable).
			Update("status", constants.RoomStatusAvailable)
		if res.Error != nil {
			return res.Error
		}
		released = res.RowsAffected
		return nil
	})
	if err != nil {
		utils.LogError("room status sync failed: %v", err)
		a.log.Error("room status sync failed: %v", err)
		return err
	}

	a.rooms.invalidateCache()
	utils.LogInfo("room status sync: %d reserved, %d released", reserved, released)

	notification.NewService(m, a.log).Broadcast(notification.Event{
		Type:     notification.EventRoomStatusSynced,
		Reserved: reserved,
		Released: released,
		Message:  "room statuses synced",
	})
	return nil
}
