package models

import (
	"time"
)

type User struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name         string        `gorm:"default:'New User'" json:"name"`
	Email        string        `gorm:"unique" json:"email"`
	Password     string        `json:"-"`
	Role         string        `gorm:"default:'client'" json:"role"`
	Reservations []Reservation `json:"-" gorm:"foreignKey:UserID"`
}
