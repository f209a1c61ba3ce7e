package request_models

type ParseVoiceRequest struct {
	Transcript string               `json:"transcript" binding:"required"`
	Draft      *GeneratePlanRequest `json:"draft"`
}
