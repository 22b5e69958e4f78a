package domain

import "time"

type Game struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title     string    `json:"title" gorm:"not null"`
	Genre     string    `json:"genre" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
