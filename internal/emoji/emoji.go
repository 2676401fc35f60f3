// Package emoji holds the candidate data model: usage history, the Unicode
// catalog, and the merged candidate list offered to a picker.
package emoji

// ImageExt marks file-based emoji candidates.
const ImageExt = ".png"

// History maps an emoji identity to its usage count. An identity is a
// Unicode display name (e.g. "grin") or a PNG file name (e.g. "party.png").
// It is loaded once at startup and written back once after a successful copy.
type History map[string]uint64

// Catalog maps a Unicode grapheme to its human-readable display name.
// Read-only for the whole run.
type Catalog map[string]string

// Reverse returns the display-name to grapheme index used to render
// history entries back into full candidate lines. Duplicate names keep the
// lexicographically smallest grapheme so the result is deterministic.
func (c Catalog) Reverse() map[string]string {
	byName := make(map[string]string, len(c))
	for grapheme, name := range c {
		if prev, ok := byName[name]; ok && prev <= grapheme {
			continue
		}
		byName[name] = grapheme
	}
	return byName
}

// Kind distinguishes what a selection refers to.
type Kind int

const (
	// KindUnicode is a grapheme copied as plain text.
	KindUnicode Kind = iota
	// KindImage is a PNG file copied as a path reference or as raw bytes.
	KindImage
)

// Candidate is one selectable entry offered to the picker.
type Candidate struct {
	// Display is the candidate line the user sees; the picker echoes it
	// back verbatim as the selection. Unicode entries look like
	// "<grapheme> <name>", image entries are the bare file name.
	Display string `json:"display"`

	// IconPath is the absolute PNG path used for the picker's icon-preview
	// annotation. Empty for Unicode entries.
	IconPath string `json:"icon_path,omitempty"`
}
