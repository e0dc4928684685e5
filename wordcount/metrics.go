package wordcount

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	sourceDictionary = "dictionary"
	sourceInput      = "input"
)

// Metrics собирает счётчики одного запуска.
// Нулевой *Metrics допустим: все методы становятся no-op.
type Metrics struct {
	registry *prometheus.Registry
	lines    *prometheus.CounterVec
	stopped  *prometheus.CounterVec
	skipped  prometheus.Counter
	entries  prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordcount_lines_total",
			Help: "Lines read, by source file.",
		}, []string{"source"}),
		stopped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordcount_dictionary_stopped_total",
			Help: "Dictionary reads stopped before EOF, by reason.",
		}, []string{"reason"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordcount_skipped_lines_total",
			Help: "Input lines without a countable word.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wordcount_entries",
			Help: "Entries with a non-zero count in the report.",
		}),
	}
	m.registry.MustRegister(m.lines, m.stopped, m.skipped, m.entries)
	return m
}

// WriteTextfile пишет метрики в формате textfile-коллектора node_exporter.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) lineRead(source string) {
	if m == nil {
		return
	}
	m.lines.WithLabelValues(source).Inc()
}

func (m *Metrics) dictionaryStopped(reason string) {
	if m == nil {
		return
	}
	m.stopped.WithLabelValues(reason).Inc()
}

func (m *Metrics) lineSkipped() {
	if m == nil {
		return
	}
	m.skipped.Inc()
}

func (m *Metrics) setEntries(n int) {
	if m == nil {
		return
	}
	m.entries.Set(float64(n))
}
