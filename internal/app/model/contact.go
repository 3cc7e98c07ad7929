package model

import "time"

type ContactMessage struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	IsRead      bool      `gorm:"default:false" json:"is_read"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
