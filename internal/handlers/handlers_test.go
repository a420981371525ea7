package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/logger"
	"carteira/internal/middleware"
	"carteira/internal/services"
	"carteira/internal/validator"
)

// --- mock audit service ---

type auditEntry struct {
	action       string
	resourceType string
	resourceID   uint
	changes      map[string]interface{}
}

type mockAuditService struct {
	entries []auditEntry
}

var _ services.AuditServicer = (*mockAuditService)(nil)

func (m *mockAuditService) Log(action, resourceType string, resourceID uint, _ string, changes map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{action, resourceType, resourceID, changes})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["code"] != code {
		t.Errorf("expected error code %q, got %v (body: %v)", code, result["code"], result)
	}
}

// assertDetailField checks that a VALIDATION_ERROR body names field.
func assertDetailField(t *testing.T, result map[string]interface{}, field string) {
	t.Helper()
	details, _ := result["details"].([]interface{})
	for _, d := range details {
		if d.(map[string]interface{})["field"] == field {
			return
		}
	}
	t.Errorf("expected a detail for field %q, got %v", field, result["details"])
}

func TestRespondWithError_RecordsOnContext(t *testing.T) {
	var recorded []*gin.Error
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		recorded = c.Errors
	})
	r.Use(middleware.ErrorHandler())
	r.GET("/clientes/:id", NewClienteHandler(&mockClienteService{}, &mockAuditService{}).GetCliente)

	rec := doRequest(r, "GET", "/clientes/0", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	if len(recorded) != 1 {
		t.Fatalf("expected one error on the context, got %d", len(recorded))
	}
	var appErr *apperrors.AppError
	if !errors.As(recorded[0].Err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected the recorded error to be the VALIDATION_ERROR, got %v", recorded[0].Err)
	}
}
