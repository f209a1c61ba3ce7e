package services

import (
	"context"
	"fmt"
	"strings"

	dbm "aitrip/internal/models/db_models"
	"aitrip/internal/models/request_models"
	resp "aitrip/internal/models/response_models"
	"aitrip/internal/repositories"
	"aitrip/pkg/utils"
)

type APIKeyServiceInterface interface {
	GetAPIKeys(ctx context.Context, accountID string) (*resp.APIKeyResponse, error)
	// UpsertAPIKeys updates only the keys present in the request; an empty string clears one.
	UpsertAPIKeys(ctx context.Context, accountID string, request request_models.UpsertAPIKeyRequest) (*resp.APIKeyResponse, error)
}

type APIKeyService struct {
	repo repositories.APIKeyRepository
}

func NewAPIKeyService(repo repositories.APIKeyRepository) APIKeyServiceInterface {
	return &APIKeyService{repo: repo}
}

func (s *APIKeyService) GetAPIKeys(ctx context.Context, accountID string) (*resp.APIKeyResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	key, err := s.repo.FindByAccount(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := toAPIKeyResponse(key)
	return &out, nil
}

func (s *APIKeyService) UpsertAPIKeys(ctx context.Context, accountID string, request request_models.UpsertAPIKeyRequest) (*resp.APIKeyResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	key, err := s.repo.FindByAccount(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if key == nil {
		key = &dbm.APIKey{AccountID: owner}
	}

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	assign(&key.LLMAPIKey, request.LLMAPIKey)
	assign(&key.AmapKey, request.AmapKey)
	assign(&key.AmapSecurityCode, request.AmapSecurityCode)
	assign(&key.SpeechAPIKey, request.SpeechAPIKey)

	if err := s.repo.Upsert(ctx, key); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := toAPIKeyResponse(key)
	return &out, nil
}
