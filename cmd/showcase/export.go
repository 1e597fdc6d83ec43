package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iyhunko/product-showcase/internal/config"
	"github.com/iyhunko/product-showcase/internal/service"
	"github.com/iyhunko/product-showcase/internal/view"
)

// export renders the page once to path, or to stdout for "-".
func export(ctx context.Context, path string, showcaseService *service.ShowcaseService, renderer *view.Renderer) error {
	var out io.Writer = os.Stdout
	if path != config.StdoutPath {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writePage(ctx, out, showcaseService, renderer); err != nil {
		return err
	}
	slog.Info("page exported", slog.String("path", path))
	return nil
}

// writePage gates the first render on the readiness check.
func writePage(ctx context.Context, out io.Writer, showcaseService *service.ShowcaseService, renderer *view.Renderer) error {
	if !renderer.Ready(out) {
		return view.ErrNotReady
	}
	return renderer.Render(out, showcaseService.Render(ctx))
}
