package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"practice-catalog/config"
	"practice-catalog/internal/middleware"
	"practice-catalog/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func authRouter() (*gin.Engine, *model.User) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, config.AuthConfig{JWTSecret: testSecret})

	var captured model.User
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		user, _ := middleware.UserFromContext(c.Request.Context())
		captured = user
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuthValidToken(t *testing.T) {
	r, captured := authRouter()

	token := signToken(t, jwt.MapClaims{
		"sub":          "user-1",
		"name":         "Dr. Vet",
		"practice_key": "practice-1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if captured.ID != "user-1" || captured.PracticeKey != "practice-1" {
		t.Errorf("user not stored in context: %+v", captured)
	}
}

func TestAuthRejections(t *testing.T) {
	r, _ := authRouter()

	noPractice := signToken(t, jwt.MapClaims{"sub": "user-1"})
	badSig := func() string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1", "practice_key": "p1"})
		s, _ := token.SignedString([]byte("wrong-secret"))
		return s
	}()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"wrong signature", "Bearer " + badSig, http.StatusUnauthorized},
		{"no practice key", "Bearer " + noPractice, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, config.AuthConfig{JWTSecret: testSecret, RateLimitPerMin: 60})

	r := gin.New()
	r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	// Burst is a tenth of the per-minute budget; the first 6 requests
	// pass, the 7th is throttled.
	var last int
	for i := 0; i < 7; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", last)
	}

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("independent client throttled: %d", w.Code)
	}
}
