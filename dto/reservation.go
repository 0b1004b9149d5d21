package dto

import (
	"time"
)

type ReservationRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	RoomID uint   `json:"room_id" binding:"required"`
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
}

type ReservationResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	RoomID    uint      `json:"room_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListItem is the joined row returned by GET /reservations,
// carrying the display fields the frontend shows alongside the id refs.
type ReservationListItem struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"user_id"`
	RoomID   uint      `json:"room_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
	UserName string    `json:"user_name"`
	RoomType string    `json:"room_type"`
}
