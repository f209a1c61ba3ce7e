package db_models

import "github.com/google/uuid"

// APIKey keeps the third-party credentials a user brings for the client apps.
type APIKey struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LLMAPIKey        string    `gorm:"column:llm_api_key"`
	AmapKey          string    `gorm:"column:amap_key"`
	AmapSecurityCode string    `gorm:"column:amap_security_code"`
	SpeechAPIKey     string    `gorm:"column:speech_api_key"`
}

func (APIKey) TableName() string { return "api_keys" }
