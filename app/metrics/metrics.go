package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects run metrics in a private registry and writes them in
// the Prometheus text format for the node exporter textfile collector.
type Recorder struct {
	reg *prometheus.Registry

	stageRows     *prometheus.GaugeVec
	stageDuration *prometheus.GaugeVec
	droppedRows   *prometheus.CounterVec
	lastRun       *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	stageRows := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_stage_rows",
			Help: "Rows produced by the last run of each pipeline stage.",
		},
		[]string{"pipeline", "stage"},
	)
	stageDuration := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_stage_duration_seconds",
			Help: "Duration of the last run of each pipeline stage.",
		},
		[]string{"pipeline", "stage"},
	)
	droppedRows := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_dropped_total",
			Help: "Rows removed during a run, by reason.",
		},
		[]string{"pipeline", "reason"},
	)
	lastRun := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run.",
		},
		[]string{"pipeline"},
	)

	reg.MustRegister(stageRows, stageDuration, droppedRows, lastRun)

	return &Recorder{
		reg:           reg,
		stageRows:     stageRows,
		stageDuration: stageDuration,
		droppedRows:   droppedRows,
		lastRun:       lastRun,
	}
}

func (r *Recorder) ObserveStage(pipeline, stage string, rows int, duration time.Duration) {
	r.stageRows.WithLabelValues(pipeline, stage).Set(float64(rows))
	r.stageDuration.WithLabelValues(pipeline, stage).Set(duration.Seconds())
}

func (r *Recorder) CountDropped(pipeline, reason string, n int) {
	r.droppedRows.WithLabelValues(pipeline, reason).Add(float64(n))
}

func (r *Recorder) MarkSuccess(pipeline string, at time.Time) {
	r.lastRun.WithLabelValues(pipeline).Set(float64(at.Unix()))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteFile atomically replaces path with the current metrics.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
