package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sitegen"

// PrometheusRecorder records site generation metrics into its own registry
type PrometheusRecorder struct {
	registry           *prom.Registry
	generations        *prom.CounterVec
	generationDuration prom.Histogram
	entities           *prom.GaugeVec
	photoDownloads     *prom.CounterVec
}

// NewPrometheusRecorder creates the metrics and registers them, along with
// the Go runtime and process collectors, in a new registry
func NewPrometheusRecorder() *PrometheusRecorder {
	pr := &PrometheusRecorder{
		registry: prom.NewRegistry(),
		generations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Site generations by result",
		}, []string{"result"}),
		generationDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of site generations",
			Buckets:   prom.DefBuckets,
		}),
		entities: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Entities of the last generated site by kind",
		}, []string{"kind"}),
		photoDownloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "photo_downloads_total",
			Help:      "Speaker photo downloads by status",
		}, []string{"status"}),
	}
	pr.registry.MustRegister(pr.generations, pr.generationDuration, pr.entities, pr.photoDownloads)
	pr.registry.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	return pr
}

// ObserveGeneration records the result and duration of a generation
func (p *PrometheusRecorder) ObserveGeneration(success bool, seconds float64) {
	result := "failed"
	if success {
		result = "success"
	}
	p.generations.WithLabelValues(result).Inc()
	p.generationDuration.Observe(seconds)
}

// SetEntityCount records the number of entities of a kind
func (p *PrometheusRecorder) SetEntityCount(kind string, count int) {
	p.entities.WithLabelValues(kind).Set(float64(count))
}

// IncPhotoDownload counts a photo download attempt
func (p *PrometheusRecorder) IncPhotoDownload(status string) {
	p.photoDownloads.WithLabelValues(status).Inc()
}

// Registry returns the registry holding the metrics
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// Handler returns an http.Handler serving the metrics
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
