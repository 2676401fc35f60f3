package emoji

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection reports a picker output line that is neither a PNG
// file name nor a "<grapheme> <name>" pair.
var ErrInvalidSelection = errors.New("invalid selection format")

// Selection is a resolved picker output line.
type Selection struct {
	Emoji string // what gets copied: the grapheme, or the PNG file name
	Name  string // history identity: the display name, or the PNG file name
	Kind  Kind
}

// Resolve parses the picker's trimmed output line into a Selection.
func Resolve(line string) (Selection, error) {
	if strings.HasSuffix(line, ImageExt) {
		return Selection{Emoji: line, Name: line, Kind: KindImage}, nil
	}
	grapheme, name, ok := strings.Cut(line, " ")
	if !ok {
		return Selection{}, fmt.Errorf("%w: %q", ErrInvalidSelection, line)
	}
	return Selection{Emoji: grapheme, Name: name, Kind: KindUnicode}, nil
}
