package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusMiddleware(t *testing.T) {
	t.Run("registers collectors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m, err := NewPrometheusMiddleware(reg)
		require.NoError(t, err)
		require.NotNil(t, m)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := NewPrometheusMiddleware(reg)
		require.NoError(t, err)

		_, err = NewPrometheusMiddleware(reg)
		assert.Error(t, err)
	})
}

func TestPrometheusMiddleware_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/runs/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("counts requests by route pattern", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/abc", nil)
		_, err := app.Test(req)
		require.NoError(t, err)

		count := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/runs/:id", "200"))
		assert.Equal(t, float64(1), count)
	})

	t.Run("observes latency", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/runs/def", nil)
		_, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, 1, testutil.CollectAndCount(m.requestLatency))
	})

	t.Run("metrics endpoint is excluded", func(t *testing.T) {
		before := testutil.CollectAndCount(m.requestCount)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		_, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, before, testutil.CollectAndCount(m.requestCount))
	})
}
