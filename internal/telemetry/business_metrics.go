package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level
// observability: the quote funnel and the order book.
type BusinessMetrics struct {
	// Quoting
	QuotesComputed *prometheus.CounterVec
	QuoteValue     *prometheus.HistogramVec
	QuoteRejected  *prometheus.CounterVec

	// Orders
	OrdersCreated      *prometheus.CounterVec
	OrderValue         *prometheus.HistogramVec
	OrderStatusChanged *prometheus.CounterVec

	// Payments
	PaymentAttempts  *prometheus.CounterVec
	PaymentSucceeded *prometheus.CounterVec
	PaymentFailed    *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics under the
// given namespace.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "print24"
	}

	rupeeBuckets := []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000}

	return &BusinessMetrics{
		QuotesComputed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_computed_total",
			Help:      "Price breakdowns computed, by product",
		}, []string{"product"}),
		QuoteValue: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_value_rupees",
			Help:      "Final totals of computed quotes",
			Buckets:   rupeeBuckets,
		}, []string{"product"}),
		QuoteRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_rejected_total",
			Help:      "Quote requests rejected at validation",
		}, []string{"reason"}),
		OrdersCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders created, by product",
		}, []string{"product"}),
		OrderValue: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value_rupees",
			Help:      "Final totals of created orders",
			Buckets:   rupeeBuckets,
		}, []string{"product"}),
		OrderStatusChanged: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_changed_total",
			Help:      "Order status transitions",
		}, []string{"from", "to"}),
		PaymentAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_attempts_total",
			Help:      "Payment confirmations attempted",
		}, []string{"gateway"}),
		PaymentSucceeded: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_succeeded_total",
			Help:      "Payments verified and recorded",
		}, []string{"gateway"}),
		PaymentFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_failed_total",
			Help:      "Payment confirmations rejected",
		}, []string{"gateway", "reason"}),
	}
}
