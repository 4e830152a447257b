package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const LabelNameReason = "reason"

type ScanMetrics struct {
	filesTotal    prometheus.Gauge
	bytesTotal    prometheus.Gauge
	duration      prometheus.Gauge
	lastRun       prometheus.Gauge
	problemsTotal *prometheus.GaugeVec
}

var (
	scanMetrics *ScanMetrics
	once        sync.Once
)

func GetScanMetrics() *ScanMetrics {
	once.Do(func() {
		scanMetrics = &ScanMetrics{
			filesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "files_total",
				Help:      "Number of regular files reported by the last scan",
			}),
			bytesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "bytes_total",
				Help:      "Sum of the sizes (in bytes) of all reported files",
			}),
			duration: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "duration_seconds",
				Help:      "How long the last scan took in seconds",
			}),
			lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_run_timestamp",
				Help:      "Unix timestamp on which the last scan finished",
			}),
			problemsTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "problems_total",
				Help:      "Number of entries which could not be read completely, by reason",
			}, []string{
				LabelNameReason,
			}),
		}

		registry.MustRegister(scanMetrics.filesTotal)
		registry.MustRegister(scanMetrics.bytesTotal)
		registry.MustRegister(scanMetrics.duration)
		registry.MustRegister(scanMetrics.lastRun)
		registry.MustRegister(scanMetrics.problemsTotal)
	})

	return scanMetrics
}

// UpdateScan replaces the values of the previous scan
func (m *ScanMetrics) UpdateScan(files int, bytes uint64, problems map[string]int, took time.Duration, finishedAt time.Time) {
	m.filesTotal.Set(float64(files))
	m.bytesTotal.Set(float64(bytes))
	m.duration.Set(took.Seconds())
	m.lastRun.Set(float64(finishedAt.Unix()))

	m.problemsTotal.Reset()
	for reason, count := range problems {
		m.problemsTotal.WithLabelValues(reason).Set(float64(count))
	}
}
