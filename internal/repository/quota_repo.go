package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emojisense/emojisense-backend/internal/domain"
)

// QuotaRepository persists per-client daily usage counters
type QuotaRepository interface {
	Get(clientID string) (*domain.QuotaUsage, error)
	Save(usage *domain.QuotaUsage) error
}

// quotaRepository implements QuotaRepository with GORM
type quotaRepository struct {
	db *gorm.DB
}

// NewQuotaRepository creates a new QuotaRepository
func NewQuotaRepository(db *gorm.DB) QuotaRepository {
	return &quotaRepository{db: db}
}

// Get fetches one client's counter; a missing row returns (nil, nil)
func (r *quotaRepository) Get(clientID string) (*domain.QuotaUsage, error) {
	var usage domain.QuotaUsage
	err := r.db.Where("client_id = ?", clientID).First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// Save upserts one client's counter
func (r *quotaRepository) Save(usage *domain.QuotaUsage) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "used", "updated_at"}),
	}).Create(usage).Error
}
