package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Site data gateway
	PayloadFetches  *prometheus.CounterVec
	FallbacksServed prometheus.Counter
	FetchLatency    prometheus.Histogram

	// Page composition
	SectionsRendered *prometheus.CounterVec
	SectionsSkipped  prometheus.Counter

	// Embed capability service
	TokensIssued       prometheus.Counter
	TokenVerifications *prometheus.CounterVec
	WidgetRequests     *prometheus.CounterVec

	// Tenant resolution
	TenantResolutions *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		PayloadFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawprint_payload_fetches_total",
			Help: "Total render payload fetches, labeled by outcome",
		}, []string{"outcome"}),
		FallbacksServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawprint_fallback_payloads_total",
			Help: "Total fallback render payloads served in place of live content",
		}),
		FetchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pawprint_payload_fetch_latency_seconds",
			Help:    "Latency of render payload fetches in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		SectionsRendered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawprint_sections_rendered_total",
			Help: "Total page sections rendered, labeled by section type",
		}, []string{"type"}),
		SectionsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawprint_sections_skipped_total",
			Help: "Total sections skipped due to unrecognized type",
		}),
		TokensIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawprint_embed_tokens_issued_total",
			Help: "Total embed capability tokens issued",
		}),
		TokenVerifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawprint_embed_token_verifications_total",
			Help: "Total embed token verifications, labeled by result",
		}, []string{"result"}),
		WidgetRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawprint_widget_requests_total",
			Help: "Total widget surface requests, labeled by device class",
		}, []string{"device"}),
		TenantResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawprint_tenant_resolutions_total",
			Help: "Total tenant resolutions, labeled by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObservePayloadFetch(outcome string, seconds float64) {
	m.PayloadFetches.WithLabelValues(outcome).Inc()
	m.FetchLatency.Observe(seconds)
}

func (m *Metrics) IncrementFallbacksServed() {
	m.FallbacksServed.Inc()
}

func (m *Metrics) IncrementSectionRendered(sectionType string) {
	m.SectionsRendered.WithLabelValues(sectionType).Inc()
}

func (m *Metrics) IncrementSectionSkipped() {
	m.SectionsSkipped.Inc()
}

func (m *Metrics) IncrementTokensIssued() {
	m.TokensIssued.Inc()
}

func (m *Metrics) IncrementTokenVerification(result string) {
	m.TokenVerifications.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementWidgetRequest(device string) {
	m.WidgetRequests.WithLabelValues(device).Inc()
}

func (m *Metrics) IncrementTenantResolution(outcome string) {
	m.TenantResolutions.WithLabelValues(outcome).Inc()
}
