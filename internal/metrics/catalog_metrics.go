package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// OutcomeMatched labels filter requests whose filter named a category.
	OutcomeMatched = "matched"
	// OutcomePassthrough labels filter requests that returned the catalog unchanged.
	OutcomePassthrough = "passthrough"
)

var (
	// Registry holds the catalog counters. It is separate from the default registry
	// so exported files carry only catalog metrics.
	Registry = prometheus.NewRegistry()

	// ProductsDiscounted is a Prometheus counter for tracking the total number of products discounted.
	ProductsDiscounted = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_discounted_total",
		Help: "The total number of products that had a discount applied",
	})

	// FilterRequests is a Prometheus counter for tracking category filter requests by outcome.
	FilterRequests = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_filter_requests_total",
		Help: "The total number of category filter requests",
	}, []string{"outcome"})

	// ProductsFiltered is a Prometheus counter for tracking the total number of products returned by filtering.
	ProductsFiltered = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "catalog_products_filtered_total",
		Help: "The total number of products emitted by category filtering",
	})
)
