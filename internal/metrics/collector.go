package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the matching pipeline.
type Collector struct {
	swipes            *prometheus.CounterVec
	decisions         *prometheus.CounterVec
	suggestionQueries prometheus.Counter
	suggestionResults prometheus.Histogram
	geocodeRequests   *prometheus.CounterVec
	geocodeCacheHits  *prometheus.CounterVec
	signalingRooms    prometheus.Gauge
	signalingClients  prometheus.Gauge
	signalingMessages *prometheus.CounterVec
}

// NewCollector creates and registers all matching pipeline metrics.
func NewCollector() *Collector {
	return &Collector{
		swipes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swipes_total",
				Help: "Total number of swipe decisions recorded",
			},
			[]string{"action"},
		),
		decisions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "match_decisions_total",
				Help: "Total number of owner-side match transitions",
			},
			[]string{"status"},
		),
		suggestionQueries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "suggestion_queries_total",
				Help: "Total number of discovery queries served",
			},
		),
		suggestionResults: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "suggestion_result_count",
				Help:    "Number of projects returned per discovery query",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
			},
		),
		geocodeRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geocode_requests_total",
				Help: "Total number of upstream geocoding calls",
			},
			[]string{"outcome"},
		),
		geocodeCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geocode_cache_lookups_total",
				Help: "Geocode cache lookups by layer and result",
			},
			[]string{"layer", "result"},
		),
		signalingRooms: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "signaling_rooms",
				Help: "Number of open signaling rooms",
			},
		),
		signalingClients: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "signaling_clients",
				Help: "Number of connected signaling clients",
			},
		),
		signalingMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaling_messages_total",
				Help: "Signaling messages relayed by type",
			},
			[]string{"type"},
		),
	}
}

// RecordSwipe increments the swipe counter for the given action.
func (c *Collector) RecordSwipe(action string) {
	c.swipes.WithLabelValues(action).Inc()
}

// RecordDecision increments the owner transition counter for the given status.
func (c *Collector) RecordDecision(status string) {
	c.decisions.WithLabelValues(status).Inc()
}

// RecordSuggestionQuery records one served discovery query and its result size.
func (c *Collector) RecordSuggestionQuery(resultCount int) {
	c.suggestionQueries.Inc()
	c.suggestionResults.Observe(float64(resultCount))
}

// RecordGeocodeRequest counts an upstream geocoding call by outcome.
func (c *Collector) RecordGeocodeRequest(outcome string) {
	c.geocodeRequests.WithLabelValues(outcome).Inc()
}

// RecordGeocodeCacheLookup counts a cache lookup for the given layer.
func (c *Collector) RecordGeocodeCacheLookup(layer string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.geocodeCacheHits.WithLabelValues(layer, result).Inc()
}

// SetSignalingRooms sets the open room gauge.
func (c *Collector) SetSignalingRooms(count int) {
	c.signalingRooms.Set(float64(count))
}

// SetSignalingClients sets the connected client gauge.
func (c *Collector) SetSignalingClients(count int) {
	c.signalingClients.Set(float64(count))
}

// RecordSignalingMessage counts a relayed signaling message by type.
func (c *Collector) RecordSignalingMessage(messageType string) {
	c.signalingMessages.WithLabelValues(messageType).Inc()
}
