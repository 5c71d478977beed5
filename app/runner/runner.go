package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lysyi3m/catalog-merge/app/cfg"
	"github.com/lysyi3m/catalog-merge/app/config"
	"github.com/lysyi3m/catalog-merge/app/export"
	"github.com/lysyi3m/catalog-merge/app/merge"
	"github.com/lysyi3m/catalog-merge/app/metrics"
)

// Env is everything a pipeline binary needs after startup.
type Env struct {
	Cfg      *cfg.Cfg
	Pipeline *config.PipelineConfig
	Policy   merge.Policy
	Metrics  *metrics.Recorder
	RunID    string
}

// Setup loads configuration and installs the default logger. It returns
// nil, nil when only help was requested.
func Setup(pipeline string, args []string) (*Env, error) {
	appCfg, err := cfg.LoadArgs(args)
	if err != nil {
		return nil, err
	}
	if appCfg == nil {
		return nil, nil
	}

	runID := uuid.NewString()
	slog.SetDefault(NewLogger(os.Stderr, appCfg.Debug).With("pipeline", pipeline, "run_id", runID))

	pipelineCfg, err := config.NewLoader(appCfg.ConfigPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline config: %w", err)
	}
	if len(appCfg.Selected) > 0 {
		pipelineCfg.Fashion.SelectedFiles = appCfg.Selected
	}

	policy, err := merge.ParsePolicy(pipelineCfg.DedupPolicy)
	if err != nil {
		return nil, err
	}

	slog.Info("Starting pipeline",
		"version", appCfg.Version,
		"data_dir", appCfg.DataDir,
		"dedup_policy", policy)

	return &Env{
		Cfg:      appCfg,
		Pipeline: pipelineCfg,
		Policy:   policy,
		Metrics:  metrics.NewRecorder(),
		RunID:    runID,
	}, nil
}

func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenStore opens the SQLite export when one is configured, nil otherwise.
func (e *Env) OpenStore(ctx context.Context) (*export.Store, error) {
	if e.Cfg.SQLitePath == "" {
		return nil, nil
	}
	return export.Open(ctx, e.Cfg.SQLitePath)
}

// Finish stamps a successful run and writes metrics when a file is configured.
func (e *Env) Finish(pipeline string) error {
	e.Metrics.MarkSuccess(pipeline, time.Now())

	if e.Cfg.MetricsFile == "" {
		return nil
	}
	return e.Metrics.WriteFile(e.Cfg.MetricsFile)
}
