package model

import "time"

// Collection is a named grouping of products used for browsing, e.g. "Hoodies".
type Collection struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`

	Products []Product `gorm:"foreignKey:CollectionID" json:"products,omitempty"`
}

func (Collection) TableName() string {
	return "collections"
}
