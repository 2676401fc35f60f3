package emoji

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RankHistory returns the history identities ordered by descending usage
// count. Equal counts are broken lexicographically so the ordering is
// deterministic run to run.
func RankHistory(h History) []string {
	ids := make([]string, 0, len(h))
	for id := range h {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if h[ids[i]] != h[ids[j]] {
			return h[ids[i]] > h[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Merge builds the full candidate list: the ranked history prefix first,
// then PNG files discovered under imageDir, then the remaining catalog
// entries. Later sections exclude anything already covered by the history
// prefix, so no identity appears twice.
//
// A history identity with no catalog match is an error in strict mode;
// otherwise its raw identity is used as the candidate line.
func Merge(h History, c Catalog, imageDir string, strict bool) ([]Candidate, error) {
	ranked := RankHistory(h)
	seen := coverSet(ranked)
	byName := c.Reverse()

	out := make([]Candidate, 0, len(ranked)+len(c))
	for _, id := range ranked {
		if strings.HasSuffix(id, ImageExt) {
			// The icon path is emitted whether or not the file still
			// exists; a stale preview is harmless and the entry stays
			// selectable.
			out = append(out, Candidate{Display: id, IconPath: filepath.Join(imageDir, id)})
			continue
		}
		grapheme, ok := byName[id]
		if !ok {
			if strict {
				return nil, fmt.Errorf("history entry %q has no catalog match", id)
			}
			out = append(out, Candidate{Display: id})
			continue
		}
		out = append(out, Candidate{Display: grapheme + " " + id})
	}

	for _, name := range scanImages(imageDir) {
		if seen[name] {
			continue
		}
		out = append(out, Candidate{Display: name, IconPath: filepath.Join(imageDir, name)})
	}

	type entry struct{ grapheme, name string }
	rest := make([]entry, 0, len(c))
	for grapheme, name := range c {
		if seen[grapheme] || seen[name] {
			continue
		}
		rest = append(rest, entry{grapheme, name})
	}
	// Map iteration order is randomized; sort by name for a stable listing.
	sort.Slice(rest, func(i, j int) bool {
		if rest[i].name != rest[j].name {
			return rest[i].name < rest[j].name
		}
		return rest[i].grapheme < rest[j].grapheme
	})
	for _, e := range rest {
		out = append(out, Candidate{Display: e.grapheme + " " + e.name})
	}

	return out, nil
}

// coverSet collects every string a history identity can collide with in the
// later sections: the identity itself plus, for Unicode entries stored as a
// full "<grapheme> <name>" line, both halves of the split.
func coverSet(ids []string) map[string]bool {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
		if strings.HasSuffix(id, ImageExt) {
			continue
		}
		if grapheme, name, ok := strings.Cut(id, " "); ok {
			seen[grapheme] = true
			seen[name] = true
		}
	}
	return seen
}

// scanImages lists the top-level PNG file names in dir, sorted. A missing
// or unreadable directory is an empty candidate set, not an error.
func scanImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ImageExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
