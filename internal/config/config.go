package config

import (
	"os"
	"path/filepath"
)

// Fixed file names inside the data folder.
const (
	historyFileName = "history.json"
	catalogFileName = "emojis.json"
)

// CatalogURL is where the Unicode emoji catalog is downloaded from when no
// local copy exists yet.
const CatalogURL = "https://raw.githubusercontent.com/Zai-Kun/rustoji/refs/heads/master/emojis.json"

// Config carries every fixed path and picker setting. It is built once in
// main and passed by reference into the components, so there is a single
// point of truth and no hidden process-wide state.
type Config struct {
	DataDir  string // holds the history and catalog documents
	ImageDir string // top-level *.png files here are candidates

	HistoryFile string
	CatalogFile string

	CatalogURL string

	// Pickers maps each supported picker program to the extra arguments it
	// needs for line-based selection. fuzzel needs dmenu mode and the
	// on-screen match counter; bemenu is already a dmenu clone.
	Pickers       map[string][]string
	DefaultPicker string

	// Strict aborts the run when a history identity has no catalog entry,
	// instead of falling back to displaying the raw identity.
	Strict bool
}

// Default returns the standard configuration with ~ expanded.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dataDir := filepath.Join(home, ".local", "share", "gomoji")
	return &Config{
		DataDir:     dataDir,
		ImageDir:    filepath.Join(home, "assets", "emojis"),
		HistoryFile: filepath.Join(dataDir, historyFileName),
		CatalogFile: filepath.Join(dataDir, catalogFileName),
		CatalogURL:  CatalogURL,
		Pickers: map[string][]string{
			"fuzzel": {"--dmenu", "--counter"},
			"bemenu": nil,
		},
		DefaultPicker: "fuzzel",
	}, nil
}

// PickerCommand resolves a requested picker name against the supported set.
// Unknown names substitute the default picker.
func (c *Config) PickerCommand(name string) (string, []string) {
	if args, ok := c.Pickers[name]; ok {
		return name, args
	}
	return c.DefaultPicker, c.Pickers[c.DefaultPicker]
}
