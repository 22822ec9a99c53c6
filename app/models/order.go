package models

import "time"

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
)

type Order struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	Reference         string      `gorm:"uniqueIndex;size:64;not null" json:"reference"`
	UserID            uint        `gorm:"index;not null" json:"user_id"`
	Status            string      `gorm:"size:32;not null;default:pending" json:"status"`
	TotalCents        int64       `gorm:"not null" json:"total_cents"`
	CheckoutSessionID string      `gorm:"index;size:191" json:"-"`
	Items             []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OrderItem snapshots name and unit price at checkout time so later catalog
// edits do not rewrite order history.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderID   uint   `gorm:"index;not null" json:"order_id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	UnitCents int64  `gorm:"not null" json:"unit_cents"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}
