package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devisio-app/devisio-backend/internal/schema"
	"github.com/devisio-app/devisio-backend/pkg/auth"
	"github.com/devisio-app/devisio-backend/pkg/config"
	"github.com/devisio-app/devisio-backend/pkg/db/models"
	"github.com/devisio-app/devisio-backend/pkg/enums"
	pkgerrors "github.com/devisio-app/devisio-backend/pkg/errors"
	"github.com/devisio-app/devisio-backend/pkg/security"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service exposes account and profile operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, body map[string]any) (*ProfileResponse, error)
}

type service struct {
	repo   Repository
	jwtCfg config.JWTConfig
	pwCfg  config.PasswordConfig
	now    func() time.Time
}

// NewService builds a users service with the required dependencies.
func NewService(repo Repository, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{repo: repo, jwtCfg: jwtCfg, pwCfg: pwCfg, now: time.Now}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !schema.SecurePassword(req.Password) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters and mix letters, digits and punctuation")
	}
	companyType, err := enums.ParseCompanyType(req.CompanyType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	hash, err := security.HashPassword(req.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.repo.CreateUser(ctx, &models.User{
		Email:         email,
		PasswordHash:  hash,
		CompanyType:   companyType,
		AccountStatus: enums.AccountStatusValid,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}
	return s.authResponse(user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}
	if user.AccountStatus != enums.AccountStatusValid {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "account is not active")
	}
	return s.authResponse(user)
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return toProfile(user), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, body map[string]any) (*ProfileResponse, error) {
	if userID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	validated, err := schema.Validate(profileUpdateSchema(), body)
	if err != nil {
		if verr, ok := schema.AsError(err); ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, verr.Error()).WithDetails(verr.Details())
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payload")
	}

	updates := bindProfileUpdate(validated)
	if len(updates) > 0 {
		rows, err := s.repo.UpdateUser(ctx, userID, updates)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
		}
		if rows == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
	}
	return s.GetProfile(ctx, userID)
}

func (s *service) authResponse(user *models.User) (*AuthResponse, error) {
	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   auth.RoleUser,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}
	return &AuthResponse{Token: token, User: toProfile(user)}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
