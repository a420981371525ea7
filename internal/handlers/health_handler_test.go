package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Run("returns_200_when_database_up", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler(pingerFunc(func(context.Context) error { return nil })).Health)

		rec := doRequest(r, "GET", "/health", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["status"] != "ok" {
			t.Error("expected status=ok")
		}
	})

	t.Run("returns_503_when_database_down", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", NewHealthHandler(pingerFunc(func(context.Context) error {
			return errors.New("connection refused")
		})).Health)

		rec := doRequest(r, "GET", "/health", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		if parseJSON(t, rec)["database"] != "down" {
			t.Error("expected database=down")
		}
	})
}
