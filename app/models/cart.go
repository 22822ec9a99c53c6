package models

import "time"

// CartItem is one product entry in a user's cart. A user has at most one
// row per product; adding the same product again merges quantities.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_cart_user_product,unique;not null" json:"user_id"`
	ProductID uint      `gorm:"index:idx_cart_user_product,unique;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
