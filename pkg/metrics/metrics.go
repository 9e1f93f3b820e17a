package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hearth"

// 실행 결과 라벨
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// GeneratorMetrics 데일리 매칭 생성기 수집기. nil 이면 아무것도 기록하지 않는다.
type GeneratorMetrics struct {
	registry *prometheus.Registry

	Runs           *prometheus.CounterVec
	MatchesCreated prometheus.Counter
	Conflicts      prometheus.Counter
	InsertFailures prometheus.Counter
	RunDuration    prometheus.Histogram
}

// NewGeneratorMetrics 인스턴스마다 별도 registry 를 사용한다
func NewGeneratorMetrics() *GeneratorMetrics {
	registry := prometheus.NewRegistry()

	m := &GeneratorMetrics{
		registry: registry,
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "match_runs_total",
				Help:      "Total number of daily match generation runs",
			},
			[]string{"result"},
		),
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_created_total",
			Help:      "Total number of match rows created",
		}),
		Conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_conflicts_total",
			Help:      "Inserts skipped because the pair already had a match for the date",
		}),
		InsertFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_insert_failures_total",
			Help:      "Inserts that failed for reasons other than a duplicate pair",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_run_duration_seconds",
			Help:      "Duration of daily match generation runs",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(
		m.Runs,
		m.MatchesCreated,
		m.Conflicts,
		m.InsertFailures,
		m.RunDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *GeneratorMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler /metrics 엔드포인트
func (m *GeneratorMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *GeneratorMetrics) ObserveRun(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(result).Inc()
	m.RunDuration.Observe(d.Seconds())
}

func (m *GeneratorMetrics) IncMatchesCreated() {
	if m == nil {
		return
	}
	m.MatchesCreated.Inc()
}

func (m *GeneratorMetrics) IncConflicts() {
	if m == nil {
		return
	}
	m.Conflicts.Inc()
}

func (m *GeneratorMetrics) IncInsertFailures() {
	if m == nil {
		return
	}
	m.InsertFailures.Inc()
}
