package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/devisio-app/devisio-backend/internal/payments"
	"github.com/devisio-app/devisio-backend/internal/quotes"
	"github.com/devisio-app/devisio-backend/internal/users"
	"github.com/devisio-app/devisio-backend/internal/works"
	pkgAuth "github.com/devisio-app/devisio-backend/pkg/auth"
	"github.com/devisio-app/devisio-backend/pkg/config"
	pkgerrors "github.com/devisio-app/devisio-backend/pkg/errors"
	"github.com/devisio-app/devisio-backend/pkg/logger"
	"github.com/devisio-app/devisio-backend/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubUserService struct{}

func (stubUserService) Register(ctx context.Context, req users.RegisterRequest) (*users.AuthResponse, error) {
	return &users.AuthResponse{}, nil
}

func (stubUserService) Login(ctx context.Context, req users.LoginRequest) (*users.AuthResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

func (stubUserService) GetProfile(ctx context.Context, userID int64) (*users.ProfileResponse, error) {
	return &users.ProfileResponse{ID: userID}, nil
}

func (stubUserService) UpdateProfile(ctx context.Context, userID int64, body map[string]any) (*users.ProfileResponse, error) {
	return &users.ProfileResponse{ID: userID}, nil
}

type stubQuoteService struct {
	list func(ctx context.Context, userID int64) ([]quotes.QuoteDetail, error)
}

func (s stubQuoteService) Create(ctx context.Context, userID int64, body map[string]any) (*quotes.QuoteDetail, error) {
	return &quotes.QuoteDetail{}, nil
}

func (s stubQuoteService) GetByIDForUser(ctx context.Context, userID, quoteID int64) (*quotes.QuoteDetail, error) {
	return &quotes.QuoteDetail{ID: quoteID}, nil
}

func (s stubQuoteService) GetAllForUser(ctx context.Context, userID int64) ([]quotes.QuoteDetail, error) {
	if s.list != nil {
		return s.list(ctx, userID)
	}
	return []quotes.QuoteDetail{}, nil
}

func (s stubQuoteService) UpdateByIDForUser(ctx context.Context, userID, quoteID int64, body map[string]any) (*quotes.QuoteDetail, error) {
	return &quotes.QuoteDetail{ID: quoteID}, nil
}

func (s stubQuoteService) DeleteByIDForUser(ctx context.Context, userID, quoteID int64) error {
	return nil
}

type stubWorkService struct{}

func (stubWorkService) Create(ctx context.Context, userID int64, req works.CreateWorkRequest) (*works.WorkResponse, error) {
	return &works.WorkResponse{}, nil
}

func (stubWorkService) GetAllForUser(ctx context.Context, userID int64) ([]works.WorkResponse, error) {
	return []works.WorkResponse{}, nil
}

func (stubWorkService) GetByIDForUser(ctx context.Context, userID, workID int64) (*works.WorkResponse, error) {
	return &works.WorkResponse{ID: workID}, nil
}

func (stubWorkService) UpdateByIDForUser(ctx context.Context, userID, workID int64, req works.UpdateWorkRequest) (*works.WorkResponse, error) {
	return &works.WorkResponse{ID: workID}, nil
}

func (stubWorkService) DeleteByIDForUser(ctx context.Context, userID, workID int64) error {
	return nil
}

type stubPaymentService struct{}

func (stubPaymentService) AddCredit(ctx context.Context, userID int64, req payments.AddCreditRequest) (*payments.CreditResponse, error) {
	return &payments.CreditResponse{}, nil
}

func (stubPaymentService) GetAllForUser(ctx context.Context, userID int64) ([]payments.PaymentResponse, error) {
	return []payments.PaymentResponse{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:  "test",
			Port: "0",
		},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "devisio-test",
			ExpirationMinutes: 30,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	return newTestRouterWithQuotes(cfg, stubQuoteService{})
}

func newTestRouterWithQuotes(cfg *config.Config, quoteService quotes.Service) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		metrics.NewHTTPMetrics(nil),
		stubUserService{},
		quoteService,
		stubWorkService{},
		stubPaymentService{},
	)
}

func buildToken(t *testing.T, cfg *config.Config, userID int64) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Role:   pkgAuth.RoleUser,
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for live probe got %d", resp.Code)
	}
}

func TestHealthReadyUsesPinger(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for ready probe got %d", resp.Code)
	}
}

func TestMetricsEndpointIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics got %d", resp.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(testConfig())
	for _, path := range []string{"/api/v1/quotes/", "/api/v1/works/", "/api/v1/payments/", "/api/v1/users/me/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token got %d", path, resp.Code)
		}
	}
}

func TestProtectedRoutesRejectGarbageToken(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token got %d", resp.Code)
	}
}

func TestQuoteListSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	var seenUserID int64
	router := newTestRouterWithQuotes(cfg, stubQuoteService{
		list: func(ctx context.Context, userID int64) ([]quotes.QuoteDetail, error) {
			seenUserID = userID
			name := "salle de bain"
			return []quotes.QuoteDetail{{ID: 7, Name: &name}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 42))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for quote list got %d", resp.Code)
	}
	if seenUserID != 42 {
		t.Fatalf("expected token user 42 to reach the service, got %d", seenUserID)
	}
	if body := resp.Body.String(); !strings.Contains(body, "salle de bain") {
		t.Fatalf("expected quote payload in body, got %s", body)
	}
}

func TestQuoteGetRejectsNonNumericID(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/abc", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 42))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric quote id got %d", resp.Code)
	}
}

func TestLoginIsPublicAndRejectsBadJSON(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestRegisterIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	body := `{"email":"rene@artisan.fr","password":"s3cret!pass","company_type":"SAS"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for register got %d", resp.Code)
	}
}
