package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/mandelscope/internal/fractal"
)

func testRun(command string) *Run {
	p := fractal.NewParams(fractal.ClassicBounds, fractal.Resolution{Xn: 30, Yn: 20}, 80)
	run := NewRun(command, p, "cpu")
	run.Artifacts = []string{"mandelbrot.png"}
	run.Masked = 42
	return run
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testRun("image"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	run, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if run.Command != "image" || run.Xn != 30 || run.Yn != 20 || run.MaxIter != 80 {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.Bounds != fractal.ClassicBounds {
		t.Errorf("bounds = %v", run.Bounds)
	}
	if run.Masked != 42 || len(run.Artifacts) != 1 {
		t.Errorf("artifacts/masked lost: %+v", run)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first, second := testRun("data"), testRun("data")
	first.Timestamp, second.Timestamp = ts, ts.Add(time.Second)

	idB, err := st.Save(second)
	if err != nil {
		t.Fatal(err)
	}
	idA, err := st.Save(first)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(tmpDir, "runs", "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != idA || runs[1].ID != idB {
		t.Errorf("runs not ordered by time: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreSave_UniqueIDs(t *testing.T) {
	st := New(t.TempDir())
	ts := time.Now()

	seen := map[string]bool{}
	for k := 0; k < 3; k++ {
		run := testRun("all")
		run.Timestamp = ts
		id, err := st.Save(run)
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate run id %s", id)
		}
		seen[id] = true
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(testRun("heatmap"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	manifest := filepath.Join(tmpDir, "runs", runID, "manifest.json")
	if _, err := os.Stat(manifest); os.IsNotExist(err) {
		t.Error("manifest.json not created")
	}
}
