package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-showcase/internal/catalog"
	"github.com/iyhunko/product-showcase/internal/config"
	httpAPI "github.com/iyhunko/product-showcase/internal/http"
	"github.com/iyhunko/product-showcase/internal/http/controller"
	"github.com/iyhunko/product-showcase/internal/logger"
	"github.com/iyhunko/product-showcase/internal/metrics"
	"github.com/iyhunko/product-showcase/internal/service"
	"github.com/iyhunko/product-showcase/internal/view"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	policy, err := catalog.ParseValidationPolicy(conf.CatalogValidation)
	handleErr("parsing catalog validation policy", err)

	products, err := catalog.New(catalog.Featured(), catalog.WithValidation(policy))
	handleErr("building catalog", err)

	renderer, err := view.NewRenderer()
	handleErr("parsing page templates", err)

	var prober service.ImageProber
	if conf.Images.Probe {
		prober = service.NewHTTPImageProber(nil, conf.Images.ProbeTimeout)
	}
	showcaseService := service.NewShowcaseService(products, prober)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting showcase",
		slog.String("mode", string(conf.Mode)),
		slog.Int("products", products.Len()),
		slog.String("validation", string(products.Policy())),
		slog.Bool("probe_images", conf.Images.Probe),
	)

	switch conf.Mode {
	case config.ModeServe:
		err = serve(ctx, conf, showcaseService, renderer)
	default:
		err = export(ctx, conf.OutputPath, showcaseService, renderer)
	}
	handleErr("running showcase", err)
}

func serve(ctx context.Context, conf *config.Config, showcaseService *service.ShowcaseService, renderer *view.Renderer) error {
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctr := controller.New(conf, renderer)
	showcaseCtr := controller.NewShowcaseController(showcaseService, renderer)
	router := httpAPI.InitRouter(gin.New(), renderer, ctr, showcaseCtr)

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	metricsServer := metrics.StartMetricsServer(conf)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return metricsServer.Shutdown(shutdownCtx)
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
