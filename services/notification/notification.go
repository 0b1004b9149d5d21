package notification

import (
	"encoding/json"

	"github.com/olahol/melody"

	"hotelbooking/services/logger"
)

// Event is a message pushed to connected websocket clients when a
// reservation changes.
type Event struct {
	Type          string `json:"type"`
	ReservationID uint   `json:"reservation_id,omitempty"`
	RoomID        uint   `json:"room_id,omitempty"`
	Reserved      int64  `json:"reserved,omitempty"`
	Released      int64  `json:"released,omitempty"`
	Message       string `json:"message"`
}

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
	EventRoomStatusSynced     = "rooms.status_synced"
)

// Service broadcasts reservation events over the melody hub.
type Service struct {
	m   *melody.Melody
	log logger.Logger
}

func NewService(m *melody.Melody, log logger.Logger) *Service {
	return &Service{m: m, log: log}
}

// Broadcast sends the event to every connected session. Delivery failure
// never fails the operation that triggered it.
func (s *Service) Broadcast(event Event) {
	if s == nil || s.m == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("failed to encode event %s: %v", event.Type, err)
		return
	}
	if err := s.m.Broadcast(payload); err != nil {
		s.log.Error("failed to broadcast event %s: %v", event.Type, err)
	}
}
