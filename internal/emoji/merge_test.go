package emoji

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRankHistory(t *testing.T) {
	h := History{
		"grin":      3,
		"party.png": 1,
		"wave":      3,
		"heart":     7,
	}
	got := RankHistory(h)
	want := []string{"heart", "grin", "wave", "party.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankHistory() = %v, want %v", got, want)
	}
}

func TestRankHistoryEmpty(t *testing.T) {
	if got := RankHistory(History{}); len(got) != 0 {
		t.Errorf("RankHistory(empty) = %v, want empty", got)
	}
}

func writeImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func displays(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Display
	}
	return out
}

// The canonical merge scenario: history entries lead in ranked order, and
// the later PNG and catalog sections exclude everything the history prefix
// already covers.
func TestMergeScenario(t *testing.T) {
	dir := writeImages(t, "party.png", "heart.png")
	h := History{"😀 grin": 3, "party.png": 1}
	c := Catalog{"😀": "grin"}

	cands, err := Merge(h, c, dir, false)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}

	want := []string{"😀 grin", "party.png", "heart.png"}
	if got := displays(cands); !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge() = %v, want %v", got, want)
	}

	if cands[1].IconPath != filepath.Join(dir, "party.png") {
		t.Errorf("party.png IconPath = %q", cands[1].IconPath)
	}
	if cands[0].IconPath != "" {
		t.Errorf("unicode candidate has IconPath %q", cands[0].IconPath)
	}
}

func TestMergeHistoryLineFromCatalog(t *testing.T) {
	h := History{"grin": 2}
	c := Catalog{"😀": "grin", "🎉": "party popper"}

	cands, err := Merge(h, c, t.TempDir(), false)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	want := []string{"😀 grin", "🎉 party popper"}
	if got := displays(cands); !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMergeNoDuplicates(t *testing.T) {
	dir := writeImages(t, "a.png", "b.png", "c.png")
	h := History{"b.png": 5, "grin": 2, "a.png": 1}
	c := Catalog{"😀": "grin", "👋": "wave"}

	cands, err := Merge(h, c, dir, false)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	counts := map[string]int{}
	for _, cand := range cands {
		counts[cand.Display]++
	}
	for display, n := range counts {
		if n > 1 {
			t.Errorf("candidate %q emitted %d times", display, n)
		}
	}
	want := []string{"b.png", "😀 grin", "a.png", "c.png", "👋 wave"}
	if got := displays(cands); !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMergeStrictMissingCatalogEntry(t *testing.T) {
	h := History{"grin": 1}

	if _, err := Merge(h, Catalog{}, t.TempDir(), true); err == nil {
		t.Fatal("Merge(strict) expected error for history entry without catalog match")
	}

	cands, err := Merge(h, Catalog{}, t.TempDir(), false)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if got := displays(cands); !reflect.DeepEqual(got, []string{"grin"}) {
		t.Errorf("Merge() = %v, want raw identity fallback", got)
	}
}

func TestMergeMissingImageDir(t *testing.T) {
	cands, err := Merge(History{}, Catalog{"😀": "grin"}, filepath.Join(t.TempDir(), "nope"), false)
	if err != nil {
		t.Fatalf("Merge() error for missing dir: %v", err)
	}
	if got := displays(cands); !reflect.DeepEqual(got, []string{"😀 grin"}) {
		t.Errorf("Merge() = %v", got)
	}
}

func TestMergeIgnoresNonPngEntries(t *testing.T) {
	dir := writeImages(t, "ok.png", "note.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatal(err)
	}

	cands, err := Merge(History{}, Catalog{}, dir, false)
	if err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	if got := displays(cands); !reflect.DeepEqual(got, []string{"ok.png"}) {
		t.Errorf("Merge() = %v, want only ok.png", got)
	}
}
