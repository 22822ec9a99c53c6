package repo

import (
	"gorm.io/gorm"

	"shoply/app/models"
)

type SocialAccountRepository struct{ db *gorm.DB }

func NewSocialAccountRepository(db *gorm.DB) *SocialAccountRepository {
	return &SocialAccountRepository{db: db}
}

func (r *SocialAccountRepository) Create(a *models.SocialAccount) error { return r.db.Create(a).Error }

func (r *SocialAccountRepository) Save(a *models.SocialAccount) error { return r.db.Save(a).Error }

func (r *SocialAccountRepository) FindByID(id uint) (*models.SocialAccount, error) {
	var a models.SocialAccount
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SocialAccountRepository) FindByPlatform(platform string) (*models.SocialAccount, error) {
	var a models.SocialAccount
	if err := r.db.Where("platform = ?", platform).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SocialAccountRepository) ListAll() ([]models.SocialAccount, error) {
	var accounts []models.SocialAccount
	return accounts, r.db.Order("id").Find(&accounts).Error
}

func (r *SocialAccountRepository) Delete(id uint) error {
	return r.db.Delete(&models.SocialAccount{}, id).Error
}
