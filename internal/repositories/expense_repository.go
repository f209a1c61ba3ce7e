package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "aitrip/internal/models/db_models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *dbm.Expense) error
	// ListByAccount returns the account's expenses newest first, optionally for one trip.
	ListByAccount(ctx context.Context, accountID uuid.UUID, tripID *uuid.UUID) ([]dbm.Expense, error)
	SumByTrip(ctx context.Context, tripID uuid.UUID) (float64, error)
	Delete(ctx context.Context, id, accountID uuid.UUID) (bool, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *dbm.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, tripID *uuid.UUID) ([]dbm.Expense, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if tripID != nil {
		q = q.Where("trip_id = ?", *tripID)
	}
	var expenses []dbm.Expense
	err := q.Order("date DESC, created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) SumByTrip(ctx context.Context, tripID uuid.UUID) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&dbm.Expense{}).
		Where("trip_id = ?", tripID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *expenseRepository) Delete(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&dbm.Expense{})
	return res.RowsAffected > 0, res.Error
}
