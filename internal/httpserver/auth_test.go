package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	accountsvc "storefront/internal/service/account"
	"storefront/internal/service/catalog"
	"storefront/internal/token"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubAccountService struct {
	account     *domain.Account
	registerErr error
	loginErr    error
	profileErr  error
}

func (s *stubAccountService) Register(_ context.Context, _ accountsvc.RegisterInput) (*domain.Account, string, error) {
	return s.account, "minted-token", s.registerErr
}

func (s *stubAccountService) Login(_ context.Context, _, _ string) (*domain.Account, string, error) {
	return s.account, "minted-token", s.loginErr
}

func (s *stubAccountService) Profile(_ context.Context, _ string) (*domain.Account, error) {
	return s.account, s.profileErr
}

type stubCatalogService struct {
	products []domain.Product
	lastCat  string
	lastQ    catalog.Query
	inserted int
	err      error
}

func (s *stubCatalogService) List(_ context.Context, category string) ([]domain.Product, error) {
	s.lastCat = category
	return s.products, s.err
}

func (s *stubCatalogService) Query(_ context.Context, category string, q catalog.Query) ([]domain.Product, error) {
	s.lastCat = category
	s.lastQ = q
	return s.products, s.err
}

func (s *stubCatalogService) Seed(_ context.Context, _ []domain.Product) (int, error) {
	return s.inserted, s.err
}

func newTestRouter(accounts accountService, products catalogService, tokens tokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return buildRouter(logDiscard(), nil, Deps{
		AccountSvc: accounts,
		CatalogSvc: products,
		Tokens:     tokens,
	}, nil)
}

func TestProfile_MissingToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	router := newTestRouter(&stubAccountService{}, &stubCatalogService{}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestProfile_InvalidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	router := newTestRouter(&stubAccountService{}, &stubCatalogService{}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestProfile_ExpiredToken(t *testing.T) {
	expired := token.NewManager("test-secret", -time.Minute)
	raw, err := expired.Mint("acct-1", "user@example.com")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	router := newTestRouter(&stubAccountService{}, &stubCatalogService{}, expired)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d", rec.Code)
	}
}

func TestProfile_Success(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	raw, err := tokens.Mint("acct-1", "me@example.com")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	accounts := &stubAccountService{
		account: &domain.Account{ID: "acct-1", Name: "Me", Email: "me@example.com", PasswordHash: "secret-hash"},
	}
	router := newTestRouter(accounts, &stubCatalogService{}, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"email":"me@example.com"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, "secret-hash") {
		t.Fatalf("password hash leaked in response: %s", body)
	}
}

func TestBearerToken_Parsing(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"abc", ""},
		{"Basic abc", ""},
		{"Bearer ", ""},
	}
	for _, tc := range cases {
		if got := bearerToken(tc.header); got != tc.want {
			t.Fatalf("bearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
