package response_models

import "aitrip/internal/models/request_models"

// VoiceExtraction is advisory: nil fields were not found in the transcript.
type VoiceExtraction struct {
	Destination *string  `json:"destination,omitempty"`
	Days        *int     `json:"days,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Travelers   *int     `json:"travelers,omitempty"`
	Preferences []string `json:"preferences"`
}

type ParseVoiceResponse struct {
	Extraction VoiceExtraction                    `json:"extraction"`
	Request    request_models.GeneratePlanRequest `json:"request"`
}
