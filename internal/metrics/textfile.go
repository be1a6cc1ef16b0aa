package metrics

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes the catalog counters to path in the Prometheus text
// format, for pickup by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return writeTextfile(path, Registry)
}

func writeTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	slog.Debug("metrics written", slog.String("path", path))
	return nil
}
