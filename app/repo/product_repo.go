package repo

import (
	"strings"

	"gorm.io/gorm"

	"shoply/app/models"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository { return &ProductRepository{db: tx} }

// List returns one page of products, optionally filtered by a
// case-insensitive name substring.
func (r *ProductRepository) List(query string, page, pageSize int) ([]models.Product, int64, error) {
	db := r.db.Model(&models.Product{})
	if query != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []models.Product
	err := db.Order("id").Offset((page - 1) * pageSize).Limit(pageSize).Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *models.Product) error { return r.db.Create(p).Error }

func (r *ProductRepository) Save(p *models.Product) error { return r.db.Save(p).Error }

func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// DecrementStock subtracts quantity from stock without reading the row first.
// The update only matches rows with enough stock left; the bool reports
// whether a row was updated, so stock can never go negative.
func (r *ProductRepository) DecrementStock(id uint, quantity int) (bool, error) {
	res := r.db.Model(&models.Product{}).Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
