package dto

import (
	"time"
)

type RoomRequest struct {
	Type        string   `json:"type" binding:"required"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

type RoomResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AvailabilityQuery carries the optional half-open date range of
// GET /rooms/available. Both bounds must be present together.
type AvailabilityQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
