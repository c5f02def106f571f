package puzzles

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validPuzzleJSON = `{
	"version": 1,
	"count": 2,
	"puzzles": [
		{"name": "center-one", "source": "handwritten", "difficulty": "easy", "grid": ".1.\n...\n..."},
		{"name": "corner-two", "source": "handwritten", "difficulty": "medium", "grid": "2.\n.."}
	]
}`

func createTempPuzzleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzles.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp puzzle file: %v", err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)

	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loader.Count() != 2 {
		t.Errorf("Count() = %d, want 2", loader.Count())
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/puzzles.json"); err == nil {
		t.Error("Load() should fail for a non-existent file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := createTempPuzzleFile(t, "{ not valid json")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed JSON")
	}
}

func TestLoadEmptyPuzzleArray(t *testing.T) {
	path := createTempPuzzleFile(t, `{"version":1,"count":0,"puzzles":[]}`)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loader.Count() != 0 {
		t.Errorf("Count() = %d, want 0", loader.Count())
	}
}

func TestGetPuzzleParsesGrid(t *testing.T) {
	loader := NewLoaderFromPuzzles([]Puzzle{
		{Name: "p0", Grid: ".1.\n...\n..."},
	})
	g, p, err := loader.GetPuzzle(0)
	if err != nil {
		t.Fatalf("GetPuzzle() failed: %v", err)
	}
	if p.Name != "p0" {
		t.Errorf("Name = %q, want p0", p.Name)
	}
	if g.Rows != 3 || g.Cols != 3 {
		t.Errorf("dims = %dx%d, want 3x3", g.Rows, g.Cols)
	}
}

func TestGetPuzzleOutOfRange(t *testing.T) {
	loader := NewLoaderFromPuzzles([]Puzzle{{Grid: "."}})
	if _, _, err := loader.GetPuzzle(-1); err == nil {
		t.Error("GetPuzzle(-1) should fail")
	}
	if _, _, err := loader.GetPuzzle(5); err == nil {
		t.Error("GetPuzzle(5) should fail for an out-of-range index")
	}
}

func TestGetPuzzleInvalidGridSurfacesError(t *testing.T) {
	loader := NewLoaderFromPuzzles([]Puzzle{{Name: "broken", Grid: "XYZ"}})
	if _, _, err := loader.GetPuzzle(0); err == nil {
		t.Error("GetPuzzle() should surface the grid parse error")
	}
}

func TestGetPuzzleBySeedIsDeterministic(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	_, p1, idx1, err := loader.GetPuzzleBySeed("seed-a")
	if err != nil {
		t.Fatalf("GetPuzzleBySeed() failed: %v", err)
	}
	_, p2, idx2, err := loader.GetPuzzleBySeed("seed-a")
	if err != nil {
		t.Fatalf("GetPuzzleBySeed() failed: %v", err)
	}
	if idx1 != idx2 || p1.Name != p2.Name {
		t.Errorf("same seed produced different results: (%d,%s) vs (%d,%s)", idx1, p1.Name, idx2, p2.Name)
	}
}

func TestGetPuzzleBySeedEmptyLoader(t *testing.T) {
	loader := NewLoaderFromPuzzles(nil)
	if _, _, _, err := loader.GetPuzzleBySeed("any"); err == nil {
		t.Error("GetPuzzleBySeed() should fail with no puzzles loaded")
	}
}

func TestGetDailyPuzzleConsistentForSameDate(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	_, _, idx1, err := loader.GetDailyPuzzle(date)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() failed: %v", err)
	}
	_, _, idx2, err := loader.GetDailyPuzzle(date)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() failed: %v", err)
	}
	if idx1 != idx2 {
		t.Errorf("same date produced different indices: %d vs %d", idx1, idx2)
	}
}

func TestGetDailyPuzzleNormalizesTimeZone(t *testing.T) {
	path := createTempPuzzleFile(t, validPuzzleJSON)
	loader, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	utc := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	pst, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	sameMoment := utc.In(pst)

	_, _, idx1, err := loader.GetDailyPuzzle(utc)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() failed: %v", err)
	}
	_, _, idx2, err := loader.GetDailyPuzzle(sameMoment)
	if err != nil {
		t.Fatalf("GetDailyPuzzle() failed: %v", err)
	}
	if idx1 != idx2 {
		t.Errorf("same UTC instant in different time zones produced different indices: %d vs %d", idx1, idx2)
	}
}

func TestGlobalLoader(t *testing.T) {
	original := Global()
	defer SetGlobal(original)

	testLoader := NewLoaderFromPuzzles([]Puzzle{{Name: "global-test", Grid: "."}})
	SetGlobal(testLoader)

	if Global() != testLoader {
		t.Fatal("SetGlobal() did not update the global loader")
	}
	if Global().Count() != 1 {
		t.Errorf("Count() = %d, want 1", Global().Count())
	}
}
