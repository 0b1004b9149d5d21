package models

import (
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Type         string         `json:"type"`
	Price        float64        `json:"price"`
	Status       string         `json:"status" gorm:"default:'available'"`
	Description  string         `json:"description"`
	Amenities    pq.StringArray `json:"amenities" gorm:"type:text[]"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Reservations []Reservation  `json:"-" gorm:"foreignKey:RoomID"`
}
