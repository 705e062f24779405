package payments

import (
	"context"
	"testing"
	"time"

	"github.com/devisio-app/devisio-backend/pkg/config"
	"github.com/devisio-app/devisio-backend/pkg/db"
	"github.com/devisio-app/devisio-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPaymentsTestDB(t *testing.T) *gorm.DB {
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
	payments := `
CREATE TABLE IF NOT EXISTS payments (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  amount NUMERIC NOT NULL,
  is_valid INTEGER NOT NULL DEFAULT 0,
  stripe_pi TEXT NOT NULL,
  date DATETIME
);`
	require.NoError(t, conn.Exec(users).Error)
	require.NoError(t, conn.Exec(payments).Error)
	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, email string, expiresAt *time.Time) int64 {
	t.Helper()

	res := conn.Exec(
		"INSERT INTO users (email, password_hash, company_type, account_status, expires_at) VALUES (?, ?, 'SARL', 'valid', ?)",
		email, "hash", expiresAt,
	)
	require.NoError(t, res.Error)

	var id int64
	require.NoError(t, conn.Raw("SELECT id FROM users WHERE email = ?", email).Scan(&id).Error)
	return id
}

func newPaymentsService(t *testing.T, conn *gorm.DB, now time.Time) Service {
	t.Helper()

	billing := config.BillingConfig{ShortPlanMonths: 3, LongPlanMonths: 12}
	svc, err := NewService(NewRepository(conn), db.FromGorm(conn), billing)
	require.NoError(t, err)
	svc.(*service).now = func() time.Time { return now }
	return svc
}

func requireCode(t *testing.T, err error, code errors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.As(err)
	require.NotNil(t, appErr, "expected typed error, got %v", err)
	assert.Equal(t, code, appErr.Code())
}

func TestAddCreditStartsFromNowWhenLapsed(t *testing.T) {
	conn := setupPaymentsTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newPaymentsService(t, conn, now)

	past := now.AddDate(0, -1, 0)
	userID := seedUser(t, conn, "lapsed@example.com", &past)

	credit, err := svc.AddCredit(context.Background(), userID, AddCreditRequest{
		Plan:     "short",
		Amount:   decimal.NewFromInt(30),
		StripePI: "pi_123",
	})
	require.NoError(t, err)
	assert.True(t, now.AddDate(0, 3, 0).Equal(credit.ExpiresAt))
	assert.True(t, credit.Payment.IsValid)
	assert.Equal(t, "pi_123", credit.Payment.StripePI)
}

func TestAddCreditExtendsRunningSubscription(t *testing.T) {
	conn := setupPaymentsTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newPaymentsService(t, conn, now)

	future := now.AddDate(0, 2, 0)
	userID := seedUser(t, conn, "running@example.com", &future)

	credit, err := svc.AddCredit(context.Background(), userID, AddCreditRequest{
		Plan:     "long",
		Amount:   decimal.NewFromInt(100),
		StripePI: "pi_456",
	})
	require.NoError(t, err)
	assert.True(t, future.AddDate(0, 12, 0).Equal(credit.ExpiresAt))
}

func TestAddCreditFirstSubscription(t *testing.T) {
	conn := setupPaymentsTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newPaymentsService(t, conn, now)

	userID := seedUser(t, conn, "fresh@example.com", nil)

	credit, err := svc.AddCredit(context.Background(), userID, AddCreditRequest{
		Plan:     "short",
		Amount:   decimal.NewFromInt(30),
		StripePI: "pi_789",
	})
	require.NoError(t, err)
	assert.True(t, now.AddDate(0, 3, 0).Equal(credit.ExpiresAt))
}

func TestAddCreditRejectsUnknownPlan(t *testing.T) {
	conn := setupPaymentsTestDB(t)
	svc := newPaymentsService(t, conn, time.Now())

	userID := seedUser(t, conn, "plan@example.com", nil)
	_, err := svc.AddCredit(context.Background(), userID, AddCreditRequest{
		Plan:     "lifetime",
		Amount:   decimal.NewFromInt(30),
		StripePI: "pi_000",
	})
	requireCode(t, err, errors.CodeValidation)
}

func TestAddCreditUnknownUser(t *testing.T) {
	conn := setupPaymentsTestDB(t)
	svc := newPaymentsService(t, conn, time.Now())

	_, err := svc.AddCredit(context.Background(), 999999, AddCreditRequest{
		Plan:     "short",
		Amount:   decimal.NewFromInt(30),
		StripePI: "pi_missing",
	})
	requireCode(t, err, errors.CodeNotFound)
}

func TestGetAllForUserNewestFirst(t *testing.T) {
	conn := setupPaymentsTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	userID := seedUser(t, conn, "history@example.com", nil)

	first := newPaymentsService(t, conn, now.AddDate(0, -6, 0))
	_, err := first.AddCredit(context.Background(), userID, AddCreditRequest{
		Plan: "short", Amount: decimal.NewFromInt(30), StripePI: "pi_old",
	})
	require.NoError(t, err)

	second := newPaymentsService(t, conn, now)
	_, err = second.AddCredit(context.Background(), userID, AddCreditRequest{
		Plan: "long", Amount: decimal.NewFromInt(100), StripePI: "pi_new",
	})
	require.NoError(t, err)

	listing, err := second.GetAllForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, listing, 2)
	assert.Equal(t, "pi_new", listing[0].StripePI)
	assert.Equal(t, "pi_old", listing[1].StripePI)
}
