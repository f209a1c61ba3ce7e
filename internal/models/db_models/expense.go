package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Category    string
	Amount      float64 `gorm:"type:numeric(12,2)"`
	Currency    string  `gorm:"type:varchar(8);default:CNY"`
	Description string
	Date        time.Time `gorm:"type:date"`
}
