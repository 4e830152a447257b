package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "dirscan"
	subsystem = "scan"
)

var (
	registry = prometheus.NewRegistry()
)

// WriteTextfile stores all registered metrics in the Prometheus text format, e.g. for the node_exporter textfile collector.
// The file is written atomically.
func WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, registry)
}
