package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

func bubbleTrace(t *testing.T) *export.Trace {
	t.Helper()
	in := step.Input{Values: []int{5, 1, 4, 2, 8}}
	steps, err := playback.Collect(context.Background(), algorithms.Bubble{}, in, step.Params{}, nil)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	return export.NewTrace("bubble", step.KindArray, in, step.Params{}, steps)
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	tr := bubbleTrace(t)
	runID, err := st.Save(tr, 42)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID != tr.ID {
		t.Errorf("expected run id %s, got %s", tr.ID, runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Algorithm != "bubble" {
		t.Errorf("expected algorithm 'bubble', got '%s'", meta.Algorithm)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if !meta.Completed {
		t.Error("expected a completed run")
	}
	if meta.Steps != len(tr.Steps) {
		t.Errorf("expected %d steps, got %d", len(tr.Steps), meta.Steps)
	}

	got, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(got.Steps) != len(tr.Steps) {
		t.Errorf("expected %d steps, got %d", len(tr.Steps), len(got.Steps))
	}
}

func TestStoreList(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "runs"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for range 2 {
		if _, err := st.Save(bubbleTrace(t), 1); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(st.baseDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(bubbleTrace(t), 0)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "trace.json", "steps.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}
