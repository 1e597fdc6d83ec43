package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iyhunko/product-showcase/internal/config"
	"github.com/iyhunko/product-showcase/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestNewServer(t *testing.T) {
	conf := &config.Config{MetricsServer: config.Server{Port: "9191"}}

	srv := metrics.NewServer(conf)
	assert.Equal(t, ":9191", srv.Addr)

	metrics.PagesRendered.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "showcase_pages_rendered_total")
	assert.Contains(t, w.Body.String(), "showcase_image_fallbacks_total")
}
