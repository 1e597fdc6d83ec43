package service

import (
	"context"
	"log/slog"

	"github.com/iyhunko/product-showcase/internal/catalog"
	"github.com/iyhunko/product-showcase/internal/metrics"
	"github.com/iyhunko/product-showcase/internal/presenter"
	"golang.org/x/sync/errgroup"
)

const (
	// PageTitle is the heading of the showcase page.
	PageTitle = "Featured Products"

	// PageSubtitle is the copy shown under the heading.
	PageSubtitle = "Explore our latest collection of premium tech gadgets."

	// maxConcurrentProbes bounds the number of image probes in flight.
	maxConcurrentProbes = 4
)

// PageView is the rendered catalog page: a header and one card per product.
type PageView struct {
	Title    string               `json:"title"`
	Subtitle string               `json:"subtitle"`
	Cards    []presenter.CardView `json:"cards"`
}

// ShowcaseService renders the catalog page.
type ShowcaseService struct {
	catalog *catalog.Catalog
	prober  ImageProber
}

// NewShowcaseService creates a service for the given catalog. The prober may be
// nil, in which case every card keeps its primary image.
func NewShowcaseService(c *catalog.Catalog, prober ImageProber) *ShowcaseService {
	return &ShowcaseService{
		catalog: c,
		prober:  prober,
	}
}

// Render produces one card per product in catalog order. It never fails;
// an empty catalog yields a page with no cards.
func (s *ShowcaseService) Render(ctx context.Context) PageView {
	products := s.catalog.Products()

	cards := make([]presenter.CardView, 0, len(products))
	for _, p := range products {
		cards = append(cards, presenter.Present(p))
	}

	if s.prober != nil && len(cards) > 0 {
		s.resolveImages(ctx, cards)
	}

	metrics.PagesRendered.Inc()
	metrics.CardsRendered.Add(float64(len(cards)))

	return PageView{
		Title:    PageTitle,
		Subtitle: PageSubtitle,
		Cards:    cards,
	}
}

// resolveImages probes every card image and switches failed ones to the
// fallback. Failures are applied by index so card order is unaffected.
func (s *ShowcaseService) resolveImages(ctx context.Context, cards []presenter.CardView) {
	failed := make([]error, len(cards))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)
	for i := range cards {
		src := cards[i].Image.Primary()
		g.Go(func() error {
			failed[i] = s.prober.Probe(gctx, src)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range failed {
		if err == nil {
			continue
		}
		if cards[i].Image.Fail() {
			metrics.ImageFallbacks.Inc()
			slog.Debug("card image replaced by fallback",
				slog.Int("product_id", cards[i].ID),
				slog.String("image", cards[i].Image.Primary()),
				slog.Any("err", err),
			)
		}
	}
}
