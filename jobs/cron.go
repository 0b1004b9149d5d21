package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// RoomStatusSyncer reconciles room status flags with the reservation calendar.
type RoomStatusSyncer interface {
	SyncRoomStatuses(m *melody.Melody) error
}

var roomStatusSyncer RoomStatusSyncer

// SetRoomStatusSyncer installs the implementation used by the nightly job.
func SetRoomStatusSyncer(syncer RoomStatusSyncer) {
	roomStatusSyncer = syncer
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Runs at midnight every day.
	_, err := c.AddFunc("0 0 * * *", func() {
		if roomStatusSyncer == nil {
			log.Printf("room status syncer not configured, skipping sync")
			return
		}
		if err := roomStatusSyncer.SyncRoomStatuses(m); err != nil {
			log.Printf("room status sync error: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
