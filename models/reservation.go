package models

import (
	"time"
)

type Reservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"room_id" gorm:"index"`
	Room      *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	UserID    uint      `json:"user_id" gorm:"index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StartDate time.Time `json:"start" gorm:"index"`
	EndDate   time.Time `json:"end" gorm:"index"`
	Status    string    `json:"status" gorm:"default:'confirmed';index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
