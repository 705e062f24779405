package users

import (
	"context"
	"testing"

	"github.com/devisio-app/devisio-backend/pkg/config"
	"github.com/devisio-app/devisio-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name TEXT,
  last_name TEXT,
  company_name TEXT,
  company_address TEXT,
  siret TEXT,
  ape_code TEXT,
  rcs_code TEXT,
  tva_number TEXT,
  company_type TEXT NOT NULL,
  account_status TEXT NOT NULL DEFAULT 'valid',
  quote_infos TEXT,
  expires_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(users).Error)
	return conn
}

func newUsersService(t *testing.T) Service {
	t.Helper()

	jwtCfg := config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "devisio-test",
		ExpirationMinutes: 60,
	}
	svc, err := NewService(NewRepository(setupUsersTestDB(t)), jwtCfg, config.PasswordConfig{})
	require.NoError(t, err)
	return svc
}

func requireCode(t *testing.T, err error, code errors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.As(err)
	require.NotNil(t, appErr, "expected typed error, got %v", err)
	assert.Equal(t, code, appErr.Code())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUsersService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Email:       "Artisan@Example.com",
		Password:    "s3cret!pass",
		CompanyType: "SARL",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "artisan@example.com", registered.User.Email)
	assert.Equal(t, "valid", string(registered.User.AccountStatus))

	logged, err := svc.Login(ctx, LoginRequest{
		Email:    "artisan@example.com",
		Password: "s3cret!pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)
	assert.Equal(t, registered.User.ID, logged.User.ID)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := newUsersService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "weak@example.com",
		Password:    "lettersonly",
		CompanyType: "SAS",
	})
	requireCode(t, err, errors.CodeValidation)
}

func TestRegisterRejectsUnknownCompanyType(t *testing.T) {
	svc := newUsersService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "type@example.com",
		Password:    "s3cret!pass",
		CompanyType: "GmbH",
	})
	requireCode(t, err, errors.CodeValidation)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newUsersService(t)
	ctx := context.Background()

	req := RegisterRequest{
		Email:       "dup@example.com",
		Password:    "s3cret!pass",
		CompanyType: "EURL",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	requireCode(t, err, errors.CodeConflict)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newUsersService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Email:       "login@example.com",
		Password:    "s3cret!pass",
		CompanyType: "Individuelle",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "login@example.com", Password: "wrong!pass1"})
	requireCode(t, err, errors.CodeUnauthorized)

	_, err = svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "s3cret!pass"})
	requireCode(t, err, errors.CodeUnauthorized)
}

func TestLoginRejectsBlockedAccount(t *testing.T) {
	conn := setupUsersTestDB(t)
	jwtCfg := config.JWTConfig{Secret: "test-secret", Issuer: "devisio-test", ExpirationMinutes: 60}
	svc, err := NewService(NewRepository(conn), jwtCfg, config.PasswordConfig{})
	require.NoError(t, err)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Email:       "blocked@example.com",
		Password:    "s3cret!pass",
		CompanyType: "SAS",
	})
	require.NoError(t, err)

	require.NoError(t, conn.Exec(
		"UPDATE users SET account_status = 'blocked' WHERE id = ?", registered.User.ID,
	).Error)

	_, err = svc.Login(ctx, LoginRequest{Email: "blocked@example.com", Password: "s3cret!pass"})
	requireCode(t, err, errors.CodeForbidden)
}

func TestUpdateProfile(t *testing.T) {
	svc := newUsersService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Email:       "profile@example.com",
		Password:    "s3cret!pass",
		CompanyType: "SARL",
	})
	require.NoError(t, err)

	profile, err := svc.UpdateProfile(ctx, registered.User.ID, map[string]any{
		"first_name":   "Jean",
		"siret":        "12345678901234",
		"company_type": "SAS",
		"quote_infos":  "TVA non applicable, art. 293 B du CGI",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jean", *profile.FirstName)
	assert.Equal(t, "12345678901234", *profile.Siret)
	assert.Equal(t, "SAS", string(profile.CompanyType))

	// Explicit null clears the column, untouched fields survive.
	profile, err = svc.UpdateProfile(ctx, registered.User.ID, map[string]any{
		"siret": nil,
	})
	require.NoError(t, err)
	assert.Nil(t, profile.Siret)
	assert.Equal(t, "Jean", *profile.FirstName)
}

func TestUpdateProfileRejectsBadSiret(t *testing.T) {
	svc := newUsersService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Email:       "siret@example.com",
		Password:    "s3cret!pass",
		CompanyType: "SARL",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, registered.User.ID, map[string]any{
		"siret": "123",
	})
	requireCode(t, err, errors.CodeValidation)

	details, ok := errors.As(err).Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "out_of_range", details["category"])
	assert.Equal(t, ".siret", details["path"])
}
