package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the four order states.
// Transitions between valid states are deliberately unrestricted; the
// back office may move an order in any direction.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is one checkout line: checkout fans a cart of N lines out into
// N orders. Product name and unit price are snapshotted at checkout so
// later catalog edits do not rewrite order history. Amounts are in
// minor units.
type Order struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	OrderNumber  string         `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	CustomerName string         `gorm:"not null" json:"customer"`
	Email        string         `gorm:"not null" json:"email"`
	ProductID    uint           `gorm:"not null;index" json:"product_id"`
	ProductName  string         `gorm:"not null" json:"product"`
	UnitPrice    int64          `gorm:"not null" json:"unit_price"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	Amount       int64          `gorm:"not null" json:"amount"`
	Status       OrderStatus    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
