package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrEmptyImageURL is returned when a product has no image to load.
	ErrEmptyImageURL = errors.New("empty image url")

	// ErrImageUnavailable is returned when the image host answers with an error status.
	ErrImageUnavailable = errors.New("image unavailable")
)

// ImageProber checks whether an image URL can be loaded.
type ImageProber interface {
	Probe(ctx context.Context, url string) error
}

// HTTPImageProber probes images with a single HEAD request. It never retries.
type HTTPImageProber struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPImageProber creates a prober; a nil client selects http.DefaultClient.
func NewHTTPImageProber(client *http.Client, timeout time.Duration) *HTTPImageProber {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPImageProber{
		client:  client,
		timeout: timeout,
	}
}

// Probe issues a HEAD request for url and reports any failure to load it.
func (p *HTTPImageProber) Probe(ctx context.Context, url string) error {
	if url == "" {
		return ErrEmptyImageURL
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: status %d", ErrImageUnavailable, resp.StatusCode)
	}
	return nil
}
