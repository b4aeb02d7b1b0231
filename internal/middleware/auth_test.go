package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopkit/shopkit/internal/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authTestHandler(t *testing.T, verifier TokenVerifier) (http.Handler, *string) {
	t.Helper()

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = auth.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	mw := Auth(AuthConfig{Logger: discardLogger(), Verifier: verifier})
	return mw(next), &seenUserID
}

func TestAuth_MissingToken(t *testing.T) {
	t.Parallel()

	ti := auth.NewTokenIssuer([]byte("secret"), time.Hour)
	handler, _ := authTestHandler(t, ti)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for missing token, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	ti := auth.NewTokenIssuer([]byte("secret"), time.Hour)
	handler, _ := authTestHandler(t, ti)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for invalid token, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := auth.NewTokenIssuer([]byte("secret"), -time.Minute)
	token, err := expired.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	verifier := auth.NewTokenIssuer([]byte("secret"), time.Hour)
	handler, _ := authTestHandler(t, verifier)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for expired token, got %d", rec.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	t.Parallel()

	ti := auth.NewTokenIssuer([]byte("secret"), time.Hour)
	token, err := ti.Issue("user-99")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	handler, seenUserID := authTestHandler(t, ti)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d", rec.Code)
	}
	if *seenUserID != "user-99" {
		t.Errorf("expected user-99 in context, got %q", *seenUserID)
	}
}

func TestAuth_NonBearerHeader(t *testing.T) {
	t.Parallel()

	ti := auth.NewTokenIssuer([]byte("secret"), time.Hour)
	handler, _ := authTestHandler(t, ti)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for non-bearer header, got %d", rec.Code)
	}
}
