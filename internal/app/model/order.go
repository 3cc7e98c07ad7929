package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	OrderNumber     string      `gorm:"uniqueIndex;not null" json:"order_number"`
	OrderDate       time.Time   `json:"order_date"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ShippingAddress string      `gorm:"type:text" json:"shipping_address"`

	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the product name, price and image at order time.
// Later product edits must not alter past orders.
type OrderItem struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	ProductID   uint    `gorm:"not null;index" json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"image_url"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
