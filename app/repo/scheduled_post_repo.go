package repo

import (
	"time"

	"gorm.io/gorm"

	"shoply/app/models"
)

type ScheduledPostRepository struct{ db *gorm.DB }

func NewScheduledPostRepository(db *gorm.DB) *ScheduledPostRepository {
	return &ScheduledPostRepository{db: db}
}

func (r *ScheduledPostRepository) Create(p *models.ScheduledPost) error { return r.db.Create(p).Error }

func (r *ScheduledPostRepository) Save(p *models.ScheduledPost) error { return r.db.Save(p).Error }

func (r *ScheduledPostRepository) FindByID(id uint) (*models.ScheduledPost, error) {
	var p models.ScheduledPost
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ScheduledPostRepository) ListAll() ([]models.ScheduledPost, error) {
	var posts []models.ScheduledPost
	return posts, r.db.Order("publish_at DESC").Find(&posts).Error
}

// DuePending returns pending posts whose publish time has passed.
func (r *ScheduledPostRepository) DuePending(now time.Time) ([]models.ScheduledPost, error) {
	var posts []models.ScheduledPost
	err := r.db.Where("status = ? AND publish_at <= ?", models.PostStatusPending, now).
		Order("publish_at").Find(&posts).Error
	return posts, err
}

func (r *ScheduledPostRepository) MarkPublished(id uint, externalID string, at time.Time) error {
	return r.db.Model(&models.ScheduledPost{}).Where("id = ?", id).Updates(map[string]any{
		"status":       models.PostStatusPublished,
		"external_id":  externalID,
		"published_at": at,
		"last_error":   "",
	}).Error
}

// MarkAttemptFailed increments the attempt counter and records the error.
// Once attempts reaches maxAttempts the post is marked failed for good.
func (r *ScheduledPostRepository) MarkAttemptFailed(id uint, attempts, maxAttempts int, errMsg string) error {
	status := models.PostStatusPending
	if attempts >= maxAttempts {
		status = models.PostStatusFailed
	}
	if len(errMsg) > 1024 {
		errMsg = errMsg[:1024]
	}
	return r.db.Model(&models.ScheduledPost{}).Where("id = ?", id).Updates(map[string]any{
		"status":     status,
		"attempts":   attempts,
		"last_error": errMsg,
	}).Error
}

func (r *ScheduledPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.ScheduledPost{}, id).Error
}
