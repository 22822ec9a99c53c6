package repo

import (
	"gorm.io/gorm"

	"shoply/app/models"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

// WithTx returns a copy of the repository bound to the given transaction.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository { return &OrderRepository{db: tx} }

func (r *OrderRepository) Create(o *models.Order) error { return r.db.Create(o).Error }

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindBySessionID(sessionID string) (*models.Order, error) {
	var o models.Order
	if err := r.db.Preload("Items").Where("checkout_session_id = ?", sessionID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	return orders, r.db.Preload("Items").Where("user_id = ?", userID).Order("id DESC").Find(&orders).Error
}

func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	return orders, r.db.Preload("Items").Order("id DESC").Find(&orders).Error
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}
