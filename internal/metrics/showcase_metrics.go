package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PagesRendered is a Prometheus counter for tracking the total number of page renders.
	PagesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "showcase_pages_rendered_total",
		Help: "The total number of showcase pages rendered",
	})

	// CardsRendered is a Prometheus counter for tracking the total number of product cards rendered.
	CardsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "showcase_cards_rendered_total",
		Help: "The total number of product cards rendered",
	})

	// ImageFallbacks is a Prometheus counter for tracking card images replaced by the fallback image.
	ImageFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "showcase_image_fallbacks_total",
		Help: "The total number of card images replaced by the fallback image",
	})
)
