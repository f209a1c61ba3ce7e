package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "aitrip/internal/models/db_models"
)

type DashboardRepository interface {
	CountTripsByStatus(ctx context.Context, accountID uuid.UUID) ([]StatusCountRow, error)
	CountUpcomingTrips(ctx context.Context, accountID uuid.UUID, today time.Time) (int64, error)
	SumTripBudgets(ctx context.Context, accountID uuid.UUID) (float64, error)
	SumExpensesByCategory(ctx context.Context, accountID uuid.UUID) ([]CategorySumRow, error)
	TopDestinations(ctx context.Context, accountID uuid.UUID, limit int) ([]LocationRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type StatusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type CategorySumRow struct {
	Category string  `gorm:"column:category"`
	Sum      float64 `gorm:"column:sum"`
}

type LocationRow struct {
	Location string `gorm:"column:location"`
	Count    int64  `gorm:"column:count"`
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTripsByStatus(ctx context.Context, accountID uuid.UUID) ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("status, COUNT(*) AS count").
		Where("account_id = ?", accountID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountUpcomingTrips(ctx context.Context, accountID uuid.UUID, today time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("account_id = ? AND start_date >= ? AND status <> ?", accountID, today, dbm.TripStatusCompleted).
		Count(&n).Error
	return n, err
}

// ---------- Sums ----------
func (r *dashboardRepository) SumTripBudgets(ctx context.Context, accountID uuid.UUID) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("COALESCE(SUM(budget), 0)").
		Where("account_id = ?", accountID).
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) SumExpensesByCategory(ctx context.Context, accountID uuid.UUID) ([]CategorySumRow, error) {
	var rows []CategorySumRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS sum").
		Where("account_id = ?", accountID).
		Group("category").
		Order("sum DESC").
		Scan(&rows).Error
	return rows, err
}

// ---------- Top destinations ----------
func (r *dashboardRepository) TopDestinations(ctx context.Context, accountID uuid.UUID, limit int) ([]LocationRow, error) {
	var rows []LocationRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("destination AS location, COUNT(*) AS count").
		Where("account_id = ?", accountID).
		Group("destination").
		Order("count DESC, location ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
