package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"practice-catalog/config"
	"practice-catalog/internal/catalog"
	catalogHTTP "practice-catalog/internal/catalog/delivery/http"
	"practice-catalog/internal/middleware"
	"practice-catalog/internal/model"
	"practice-catalog/pkg/locale"
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

type mockUseCase struct {
	createInput catalog.CreateItemInput
	createOut   catalog.CreateItemOutput
	createErr   error

	detailOut catalog.DetailItemOutput
	detailErr error
}

func (m *mockUseCase) Create(ctx context.Context, input catalog.CreateItemInput) (catalog.CreateItemOutput, error) {
	m.createInput = input
	return m.createOut, m.createErr
}

func (m *mockUseCase) Update(ctx context.Context, input catalog.UpdateItemInput) (catalog.UpdateItemOutput, error) {
	return catalog.UpdateItemOutput{}, nil
}

func (m *mockUseCase) Upsert(ctx context.Context, input catalog.UpsertItemInput) (catalog.UpsertItemOutput, error) {
	return catalog.UpsertItemOutput{}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, practiceKey, key string) error  { return nil }
func (m *mockUseCase) Restore(ctx context.Context, practiceKey, key string) error { return nil }
func (m *mockUseCase) SetActive(ctx context.Context, practiceKey, key string, active bool) error {
	return nil
}

func (m *mockUseCase) Detail(ctx context.Context, practiceKey, key string) (catalog.DetailItemOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) List(ctx context.Context, input catalog.ListItemsInput) (catalog.ListItemsOutput, error) {
	return catalog.ListItemsOutput{}, nil
}

const testSecret = "test-secret"

func newRouter(t *testing.T, uc catalog.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	locales, err := locale.Load()
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}

	l := &mockLogger{}
	mw := middleware.New(l, config.AuthConfig{JWTSecret: testSecret})
	h := catalogHTTP.New(l, uc, locales)

	r := gin.New()
	catalogHTTP.RegisterRoutes(r.Group("/api/v1/catalog"), h, mw)
	return r
}

func bearer(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          "user-1",
		"practice_key": "practice-1",
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + s
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, acceptLanguage string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createBody = `{"item_type":"service","code":"RABIES-01","name":"Rabies Vaccination","base_price":40}`

func TestCreateHandlerSuccess(t *testing.T) {
	uc := &mockUseCase{
		createOut: catalog.CreateItemOutput{Item: model.CatalogItem{
			Key: "k1", PracticeKey: "practice-1", ItemType: model.ItemTypeService,
			Code: "RABIES-01", Name: "Rabies Vaccination", Active: true,
		}},
	}
	r := newRouter(t, uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/catalog/items", createBody, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// Tenant comes from the token, never from the request body.
	if uc.createInput.PracticeKey != "practice-1" {
		t.Errorf("practice key = %q", uc.createInput.PracticeKey)
	}

	var resp struct {
		Data struct {
			Item struct {
				Key  string `json:"key"`
				Code string `json:"code"`
			} `json:"item"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Item.Key != "k1" || resp.Data.Item.Code != "RABIES-01" {
		t.Errorf("unexpected payload: %s", w.Body.String())
	}
}

func TestCreateHandlerConflictLocalized(t *testing.T) {
	uc := &mockUseCase{
		createErr: &catalog.ConflictError{Field: "code", Value: "RABIES-01", ItemType: model.ItemTypeService},
	}
	r := newRouter(t, uc)

	t.Run("default locale", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/catalog/items", createBody, "")
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d", w.Code)
		}
		want := fmt.Sprintf("an item with code %s already exists for this practice", "RABIES-01")
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("spanish", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/catalog/items", createBody, "es-ES,es;q=0.9")
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "ya existe un artículo") {
			t.Errorf("body = %s", w.Body.String())
		}
	})
}

func TestCreateHandlerValidationError(t *testing.T) {
	uc := &mockUseCase{
		createErr: catalog.NewValidationError(catalog.RuleCategoryNotFound,
			"validation.category_not_found", "cat-1"),
	}
	r := newRouter(t, uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/catalog/items", createBody, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "category cat-1 does not exist") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateHandlerInternalErrorMasked(t *testing.T) {
	uc := &mockUseCase{createErr: errors.New("pq: connection reset")}
	r := newRouter(t, uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/catalog/items", createBody, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Errorf("driver error leaked to the client: %s", w.Body.String())
	}
}

func TestCreateHandlerBadBody(t *testing.T) {
	r := newRouter(t, &mockUseCase{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/catalog/items", `{"item_type":"subscription"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestCreateHandlerUnauthenticated(t *testing.T) {
	r := newRouter(t, &mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/items", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestDetailHandlerNotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: catalog.ErrItemNotFound}
	r := newRouter(t, uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/catalog/items/missing", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}
