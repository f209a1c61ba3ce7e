package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "aitrip/internal/models/db_models"
)

type APIKeyRepository interface {
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.APIKey, error)
	Upsert(ctx context.Context, key *dbm.APIKey) error
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) APIKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.APIKey, error) {
	var key dbm.APIKey
	err := r.db.WithContext(ctx).First(&key, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

func (r *apiKeyRepository) Upsert(ctx context.Context, key *dbm.APIKey) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"llm_api_key", "amap_key", "amap_security_code", "speech_api_key", "updated_at",
		}),
	}).Create(key).Error
}
