// Package metrics exposes Prometheus collectors for the storefront and the
// JSON dashboard served to the admin view.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rogerio-castellano/grillaway/internal/models"
)

const namespace = "grillaway"

// Recorder owns a private registry so tests and multiple servers in one
// process do not collide on the default one.
type Recorder struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	ordersPlaced  *prometheus.CounterVec
	orderValue    prometheus.Histogram
	cartMutations *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders placed by delivery method.",
		}, []string{"delivery"}),
		orderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value_rupiah",
			Help:      "Order totals in Rupiah.",
			Buckets:   prometheus.ExponentialBuckets(50000, 2, 8),
		}),
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutations_total",
			Help:      "Cart mutations by operation.",
		}, []string{"op"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.ordersPlaced,
		r.orderValue,
		r.cartMutations,
	)
	return r
}

func (r *Recorder) ObserveRequest(method, route string, status int) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (r *Recorder) OrderPlaced(o models.Order) {
	r.ordersPlaced.WithLabelValues(o.Delivery).Inc()
	r.orderValue.Observe(float64(o.Total))
}

// CartMutation counts one cart change; op is add, change, remove or clear.
func (r *Recorder) CartMutation(op string) {
	r.cartMutations.WithLabelValues(op).Inc()
}

// Registry is exposed for tests that gather the collectors directly.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
