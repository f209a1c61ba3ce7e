package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "aitrip/internal/models/db_models"
	"aitrip/internal/infra"
)

type TripFilter struct {
	Status   string
	Page     int
	PageSize int
}

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	Update(ctx context.Context, trip *dbm.Trip) error
	// FindByIdForAccount returns (nil, nil) when the trip does not exist or belongs to someone else.
	FindByIdForAccount(ctx context.Context, id, accountID uuid.UUID) (*dbm.Trip, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, filter TripFilter) ([]dbm.Trip, int64, error)
	// Delete removes the trip and its expenses; false when nothing matched.
	Delete(ctx context.Context, id, accountID uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Update(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) FindByIdForAccount(ctx context.Context, id, accountID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, filter TripFilter) ([]dbm.Trip, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("account_id = ?", accountID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []dbm.Trip
	err := q.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (r *tripRepository) Delete(ctx context.Context, id, accountID uuid.UUID) (deleted bool, err error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return false, tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	res := tx.Where("id = ? AND account_id = ?", id, accountID).Delete(&dbm.Trip{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := tx.Where("trip_id = ?", id).Delete(&dbm.Expense{}).Error; err != nil {
		return false, err
	}
	return true, nil
}
