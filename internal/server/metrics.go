package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's prometheus collectors on a private registry
// so multiple servers (tests) never collide.
type metrics struct {
	registry      *prometheus.Registry
	categoryViews *prometheus.CounterVec
	searches      prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		categoryViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "menuview_category_views_total",
			Help: "Category fragment renders served, by category key.",
		}, []string{"category"}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "menuview_searches_total",
			Help: "Search requests served.",
		}),
	}
	m.registry.MustRegister(m.categoryViews, m.searches)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
