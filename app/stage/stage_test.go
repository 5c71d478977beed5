package stage

import (
	"errors"
	"testing"
	"time"
)

type fakeRecorder struct {
	stages  map[string]int
	dropped map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{stages: map[string]int{}, dropped: map[string]int{}}
}

func (f *fakeRecorder) ObserveStage(pipeline, stage string, rows int, duration time.Duration) {
	f.stages[pipeline+"/"+stage] = rows
}

func (f *fakeRecorder) CountDropped(pipeline, reason string, n int) {
	f.dropped[pipeline+"/"+reason] += n
}

func TestStageDuration(t *testing.T) {
	s := NewStage("fashion", NameLoad)
	if s.GetDuration() != 0 {
		t.Error("Expected zero duration before Start")
	}

	s.Start()
	if s.StartedAt == nil {
		t.Fatal("Expected StartedAt to be set")
	}
	if s.GetDuration() < 0 {
		t.Error("Expected non-negative duration")
	}
}

func TestTrackerRun(t *testing.T) {
	recorder := newFakeRecorder()
	tracker := NewTracker("furniture", recorder)

	err := tracker.Run(NameMerge, func() (int, error) { return 12, nil })
	if err != nil {
		t.Fatal(err)
	}
	if recorder.stages["furniture/merge"] != 12 {
		t.Errorf("Expected 12 rows recorded, got %d", recorder.stages["furniture/merge"])
	}
}

func TestTrackerRunError(t *testing.T) {
	recorder := newFakeRecorder()
	tracker := NewTracker("furniture", recorder)
	boom := errors.New("boom")

	err := tracker.Run(NameSave, func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped error, got %v", err)
	}
	if _, ok := recorder.stages["furniture/save"]; ok {
		t.Error("Expected failed stage not to be recorded")
	}
}

func TestTrackerDropped(t *testing.T) {
	recorder := newFakeRecorder()
	tracker := NewTracker("fashion", recorder)

	tracker.Dropped("missing_product_id", 3)
	tracker.Dropped("missing_product_id", 0)

	if recorder.dropped["fashion/missing_product_id"] != 3 {
		t.Errorf("Expected 3 dropped, got %d", recorder.dropped["fashion/missing_product_id"])
	}
}

func TestTrackerWithoutRecorder(t *testing.T) {
	tracker := NewTracker("fashion", nil)
	if err := tracker.Run(NameLoad, func() (int, error) { return 1, nil }); err != nil {
		t.Fatal(err)
	}
	tracker.Dropped("x", 1)
}
