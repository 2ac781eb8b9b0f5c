package model

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}
