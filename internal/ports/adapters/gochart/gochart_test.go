package gochart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/forPelevin/tsvreport/internal/types"
)

func decodePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
}

func TestPieAndBar_WritePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	a := New()
	counts := []types.Count{{Key: "alice", N: 3}, {Key: "bob", N: 1}}

	pie := filepath.Join(dir, "speaker_distribution.png")
	if err := a.Pie(pie, "Distribution of Speakers", counts); err != nil {
		t.Fatalf("pie: %v", err)
	}
	decodePNG(t, pie)

	bar := filepath.Join(dir, "pos_distribution.png")
	if err := a.Bar(bar, "Distribution of Parts of Speech", []types.Count{{Key: "NN", N: 2}}); err != nil {
		t.Fatalf("bar: %v", err)
	}
	decodePNG(t, bar)
}

func TestEmptyCountsRenderPlaceholder(t *testing.T) {
	dir := t.TempDir()
	a := New()
	if err := a.Pie(filepath.Join(dir, "pie.png"), "Distribution of Speakers", nil); err != nil {
		t.Fatalf("pie: %v", err)
	}
	if err := a.Bar(filepath.Join(dir, "bar.png"), "Distribution of Parts of Speech", nil); err != nil {
		t.Fatalf("bar: %v", err)
	}
	decodePNG(t, filepath.Join(dir, "pie.png"))
	decodePNG(t, filepath.Join(dir, "bar.png"))
}

func TestPieValues_Labels(t *testing.T) {
	got := pieValues([]types.Count{{Key: "alice", N: 1}, {Key: "bob", N: 2}})
	if got[0].Label != "alice (33.3%)" || got[1].Label != "bob (66.7%)" {
		t.Fatalf("unexpected labels %q, %q", got[0].Label, got[1].Label)
	}
}

func TestYMaxAndBarWidth(t *testing.T) {
	if got := yMax([]types.Count{{Key: "NN", N: 10}}); got != 11 {
		t.Fatalf("yMax = %v, want 11", got)
	}
	if got := yMax([]types.Count{{Key: "NN", N: 0}}); got != 1 {
		t.Fatalf("yMax = %v, want 1", got)
	}
	if got := barWidth(1); got != 80 {
		t.Fatalf("barWidth(1) = %d, want 80", got)
	}
	if got := barWidth(500); got != 4 {
		t.Fatalf("barWidth(500) = %d, want 4", got)
	}
}
