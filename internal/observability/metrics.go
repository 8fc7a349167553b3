package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total number of HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billscan_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "billscan_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ActiveRequests tracks currently active requests
	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "billscan_http_active_requests",
			Help: "Number of active HTTP requests",
		},
	)

	// BillsParsed counts parsed bills by input source (text, image, cli)
	BillsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billscan_bills_parsed_total",
			Help: "Total number of bills run through the extraction engine",
		},
		[]string{"source"},
	)

	// BillConfidence observes the confidence of each parsed bill
	BillConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "billscan_bill_confidence",
			Help:    "Confidence of parsed bills",
			Buckets: []float64{0, 0.2, 0.3, 0.5, 0.7, 0.8, 1.0},
		},
	)

	// BillItems observes the number of items found per bill
	BillItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "billscan_bill_items",
			Help:    "Number of line items extracted per bill",
			Buckets: prometheus.LinearBuckets(0, 5, 8),
		},
	)

	// CategoryMappings counts note category mappings, split by whether they fell back
	CategoryMappings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billscan_category_mappings_total",
			Help: "Total number of note categories mapped to the taxonomy",
		},
		[]string{"type", "outcome"},
	)

	// OCRDuration tracks time spent in text recognition
	OCRDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "billscan_ocr_duration_seconds",
			Help:    "OCR duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)
)

// ObserveBill records engine output for one parsed bill
func ObserveBill(source string, confidence float64, items int) {
	BillsParsed.WithLabelValues(source).Inc()
	BillConfidence.Observe(confidence)
	BillItems.Observe(float64(items))
}

// ObserveMapping records one category mapping
func ObserveMapping(txType string, fallback bool) {
	outcome := "matched"
	if fallback {
		outcome = "fallback"
	}
	CategoryMappings.WithLabelValues(txType, outcome).Inc()
}

// Middleware collects Prometheus metrics for every request
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ActiveRequests.Inc()
		defer ActiveRequests.Dec()

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		method := c.Method()
		route := c.Route().Path
		RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()

		return err
	}
}
