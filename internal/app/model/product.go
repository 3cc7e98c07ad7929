package model

import "time"

type Product struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Details      string    `gorm:"type:text" json:"details"`
	Price        float64   `gorm:"not null" json:"price"`
	ImageURL     string    `json:"image_url"`
	CollectionID *uint     `gorm:"index" json:"collection_id,omitempty"`
	Category     string    `json:"category"`
	Stock        int       `gorm:"default:10" json:"stock"`
	IsFeatured   bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`

	Collection *Collection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
