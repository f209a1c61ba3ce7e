package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"aitrip/internal/models/db_models"
	"aitrip/internal/models/request_models"
	"aitrip/internal/models/response_models"
	"aitrip/internal/repositories"
	mem "aitrip/pkg/memcache"
	"aitrip/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Logout(token string, claims *utils.Claims)
	GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	issuer      *utils.TokenIssuer
	denylist    mem.TokenDenylist
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	issuer *utils.TokenIssuer,
	denylist mem.TokenDenylist,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		issuer:      issuer,
		denylist:    denylist,
		logger:      logger.Named("account"),
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	a.logger.Info("account registered", zap.String("account_id", account.ID.String()))
	return a.issue(account)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issue(account)
}

// Logout revokes the token for the rest of its lifetime.
func (a *AccountService) Logout(token string, claims *utils.Claims) {
	if claims == nil {
		return
	}
	a.denylist.Revoke(token, claims.RemainingTTL())
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrUnauthorized
	}
	out := toAccountResponse(account)
	return &out, nil
}

func (a *AccountService) issue(account *db_models.Account) (*response_models.AuthResponse, error) {
	token, err := a.issuer.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return &response_models.AuthResponse{
		Token: token,
		User:  toAccountResponse(account),
	}, nil
}
