package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-showcase/internal/catalog"
	"github.com/iyhunko/product-showcase/internal/config"
	httpAPI "github.com/iyhunko/product-showcase/internal/http"
	"github.com/iyhunko/product-showcase/internal/http/controller"
	"github.com/iyhunko/product-showcase/internal/model"
	"github.com/iyhunko/product-showcase/internal/service"
	"github.com/iyhunko/product-showcase/internal/view"
)

// TestImageHost serves product images; any path containing "broken" answers 404.
type TestImageHost struct {
	Server *httptest.Server
}

// SetupImageHost starts an image host that is closed when the test ends.
func SetupImageHost(t *testing.T) *TestImageHost {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return &TestImageHost{Server: srv}
}

// URL returns the absolute URL of an image on the host.
func (h *TestImageHost) URL(name string) string {
	return h.Server.URL + "/" + name
}

// SetupShowcase starts the preview server for products with image probing
// enabled and returns its base URL.
func SetupShowcase(t *testing.T, products []model.Product) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := catalog.New(products)
	if err != nil {
		t.Fatalf("Could not build catalog: %s", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("Could not parse templates: %s", err)
	}

	prober := service.NewHTTPImageProber(nil, 2*time.Second)
	svc := service.NewShowcaseService(c, prober)

	router := httpAPI.InitRouter(gin.New(), renderer,
		controller.New(&config.Config{}, renderer),
		controller.NewShowcaseController(svc, renderer),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}
