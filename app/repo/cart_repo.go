package repo

import (
	"gorm.io/gorm"

	"shoply/app/models"
)

type CartRepository struct{ db *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{db: db} }

// WithTx returns a copy of the repository bound to the given transaction.
func (r *CartRepository) WithTx(tx *gorm.DB) *CartRepository { return &CartRepository{db: tx} }

func (r *CartRepository) ItemsByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	return items, r.db.Where("user_id = ?", userID).Order("id").Find(&items).Error
}

func (r *CartRepository) FindItem(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) FindItemByID(userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(item *models.CartItem) error { return r.db.Create(item).Error }

func (r *CartRepository) Save(item *models.CartItem) error { return r.db.Save(item).Error }

func (r *CartRepository) DeleteItem(userID, itemID uint) error {
	return r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{}).Error
}

func (r *CartRepository) Clear(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
