package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"surgitrack/config"
	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/usecase"
	"surgitrack/pkg/validator"

	"github.com/google/uuid"
)

type fakeAuthUsecase struct {
	signupFn func(*dto.SignupRequest) (*dto.UserResponse, string, error)
	loginFn  func(*dto.LoginRequest) (*dto.UserResponse, string, error)
	verifyFn func(string) *dto.UserResponse
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, string, error) {
	return f.signupFn(req)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	return f.loginFn(req)
}

func (f *fakeAuthUsecase) Verify(token string) *dto.UserResponse {
	return f.verifyFn(token)
}

func testAuthHandler(fake *fakeAuthUsecase) *AuthHandler {
	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		Session: config.SessionConfig{
			Secret:     "test-secret",
			Expiry:     7 * 24 * time.Hour,
			CookieName: "token",
		},
	}
	return NewAuthHandler(fake, validator.NewValidator(), cfg)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestSignupSetsSessionCookie(t *testing.T) {
	accountID := uuid.New()
	h := testAuthHandler(&fakeAuthUsecase{
		signupFn: func(req *dto.SignupRequest) (*dto.UserResponse, string, error) {
			return &dto.UserResponse{ID: accountID, Email: req.Email}, "signed-token", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"doc@example.com","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		User *dto.UserResponse `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.User == nil || body.User.Email != "doc@example.com" {
		t.Errorf("user = %+v, want doc@example.com", body.User)
	}

	cookie := sessionCookie(t, rec)
	if cookie.Value != "signed-token" {
		t.Errorf("cookie value = %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Error("cookie must be SameSite=Lax")
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path = %q, want /", cookie.Path)
	}
	if cookie.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("cookie max-age = %d, want 7 days", cookie.MaxAge)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	h := testAuthHandler(&fakeAuthUsecase{
		signupFn: func(*dto.SignupRequest) (*dto.UserResponse, string, error) {
			return nil, "", usecase.ErrEmailAlreadyExists
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"doc@example.com","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestSignupMissingFields(t *testing.T) {
	called := false
	h := testAuthHandler(&fakeAuthUsecase{
		signupFn: func(*dto.SignupRequest) (*dto.UserResponse, string, error) {
			called = true
			return nil, "", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"doc@example.com"}`))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if called {
		t.Error("usecase must not be reached on invalid input")
	}
	if !strings.Contains(rec.Body.String(), "password") {
		t.Errorf("error should name the missing field, got %s", rec.Body.String())
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := testAuthHandler(&fakeAuthUsecase{
		loginFn: func(*dto.LoginRequest) (*dto.UserResponse, string, error) {
			return nil, "", usecase.ErrInvalidCredentials
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"doc@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestMeWithoutCookie(t *testing.T) {
	h := testAuthHandler(&fakeAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"user":null`) {
		t.Errorf("body = %s, want null user", rec.Body.String())
	}
}

func TestMeWithValidCookie(t *testing.T) {
	accountID := uuid.New()
	h := testAuthHandler(&fakeAuthUsecase{
		verifyFn: func(token string) *dto.UserResponse {
			if token != "good-token" {
				return nil
			}
			return &dto.UserResponse{ID: accountID, Email: "doc@example.com"}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "good-token"})
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		User *dto.UserResponse `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.User == nil || body.User.ID != accountID {
		t.Errorf("user = %+v", body.User)
	}
}

func TestMeWithInvalidCookie(t *testing.T) {
	h := testAuthHandler(&fakeAuthUsecase{
		verifyFn: func(string) *dto.UserResponse { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "expired-or-tampered"})
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"user":null`) {
		t.Errorf("body = %s, want null user", rec.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	h := testAuthHandler(&fakeAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	cookie := sessionCookie(t, rec)
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Errorf("cookie not cleared: value=%q max-age=%d", cookie.Value, cookie.MaxAge)
	}
}
