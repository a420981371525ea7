package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_LabelsByRoute(t *testing.T) {
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/clientes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/clientes/1", "/clientes/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, m)
	for _, want := range []string{
		`carteira_http_requests_total{method="GET",route="/clientes/:id",status="200"} 2`,
		`carteira_http_requests_total{method="GET",route="unmatched",status="404"} 1`,
		`carteira_http_inflight_requests 0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in metrics output:\n%s", want, body)
		}
	}
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	return rec.Body.String()
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.requests.WithLabelValues("POST", "/acoes", "201").Inc()

	body := scrape(t, m)
	for _, want := range []string{"carteira_http_requests_total", "go_goroutines"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in metrics output", want)
		}
	}
}

func TestNew_Independent(t *testing.T) {
	// Two instances must not panic on duplicate registration.
	New()
	New()
}
