package request_models

type UpsertAPIKeyRequest struct {
	LLMAPIKey        *string `json:"llmApiKey"`
	AmapKey          *string `json:"amapKey"`
	AmapSecurityCode *string `json:"amapSecurityCode"`
	SpeechAPIKey     *string `json:"speechApiKey"`
}
