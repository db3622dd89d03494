// Package metrics exports sticker generation outcomes to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mhpenta/stickergen"
)

const namespace = "stickergen"

// invalidStyle labels requests whose style is not one of stickergen.Styles, so
// caller input cannot create new series.
const invalidStyle = "invalid"

// Collector records generation outcomes. It implements stickergen.Recorder.
type Collector struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ stickergen.Recorder = (*Collector)(nil)

// NewCollector creates the metrics without registering them.
func NewCollector() *Collector {
	return &Collector{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Sticker generations by style and outcome.",
		}, []string{"style", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating a sticker, including rejected requests.",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}, []string{"outcome"}),
	}
}

// Register creates a Collector and registers it with reg.
func Register(reg prometheus.Registerer) (*Collector, error) {
	c := NewCollector()
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ObserveGeneration implements stickergen.Recorder.
func (c *Collector) ObserveGeneration(style stickergen.Style, outcome string, duration time.Duration) {
	c.generations.WithLabelValues(styleLabel(style), outcome).Inc()
	c.duration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.generations.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.generations.Collect(ch)
	c.duration.Collect(ch)
}

func styleLabel(style stickergen.Style) string {
	if !style.Valid() {
		return invalidStyle
	}
	return style.String()
}
