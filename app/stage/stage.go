package stage

import (
	"fmt"
	"log/slog"
	"time"
)

type Name string

const (
	NameLoad        Name = "load"
	NameStandardize Name = "standardize"
	NameMerge       Name = "merge"
	NameClean       Name = "clean"
	NameLinks       Name = "links"
	NameSave        Name = "save"
	NameExport      Name = "export"
)

// Recorder receives per-stage measurements.
type Recorder interface {
	ObserveStage(pipeline, stage string, rows int, duration time.Duration)
	CountDropped(pipeline, reason string, n int)
}

type Stage struct {
	Pipeline  string
	Name      Name
	StartedAt *time.Time
}

func (s *Stage) Start() {
	now := time.Now()
	s.StartedAt = &now
}

func (s *Stage) GetDuration() time.Duration {
	if s.StartedAt == nil {
		return 0
	}
	return time.Since(*s.StartedAt)
}

func NewStage(pipeline string, name Name) Stage {
	return Stage{
		Pipeline: pipeline,
		Name:     name,
	}
}

// Tracker runs the stages of one pipeline run and reports on each.
type Tracker struct {
	pipeline string
	recorder Recorder
}

func NewTracker(pipeline string, recorder Recorder) *Tracker {
	return &Tracker{pipeline: pipeline, recorder: recorder}
}

// Run times fn, which returns the number of rows the stage produced.
func (t *Tracker) Run(name Name, fn func() (int, error)) error {
	s := NewStage(t.pipeline, name)
	s.Start()

	rows, err := fn()
	if err != nil {
		return fmt.Errorf("%s stage failed: %w", name, err)
	}

	duration := s.GetDuration()
	if t.recorder != nil {
		t.recorder.ObserveStage(t.pipeline, string(name), rows, duration)
	}

	slog.Info("Stage completed",
		"pipeline", t.pipeline,
		"stage", name,
		"rows", rows,
		"duration", duration)

	return nil
}

// Dropped logs and records rows removed for reason.
func (t *Tracker) Dropped(reason string, n int) {
	if n == 0 {
		return
	}
	if t.recorder != nil {
		t.recorder.CountDropped(t.pipeline, reason, n)
	}
	slog.Info("Rows dropped", "pipeline", t.pipeline, "reason", reason, "count", n)
}
