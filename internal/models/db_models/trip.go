package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusPlanning  TripStatus = "planning"
	TripStatusPlanned   TripStatus = "planned"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

var TripStatuses = []TripStatus{
	TripStatusDraft, TripStatusPlanning, TripStatusPlanned, TripStatusOngoing, TripStatusCompleted,
}

func (s TripStatus) Valid() bool {
	for _, st := range TripStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`
	Budget      float64   `gorm:"type:numeric(12,2)"`
	Travelers   int
	Preferences pq.StringArray `gorm:"type:text[]"`
	Description string
	// Itinerary holds the generated plan as returned to clients; empty until a plan is generated.
	Itinerary datatypes.JSON `gorm:"type:jsonb"`
	Status    TripStatus     `gorm:"type:varchar(20);default:draft;index"`

	Expenses []Expense
}
