package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if !filepath.IsAbs(cfg.DataDir) {
		t.Errorf("DataDir %q is not absolute", cfg.DataDir)
	}
	if !strings.HasSuffix(cfg.HistoryFile, filepath.Join("gomoji", "history.json")) {
		t.Errorf("HistoryFile = %q", cfg.HistoryFile)
	}
	if !strings.HasSuffix(cfg.CatalogFile, filepath.Join("gomoji", "emojis.json")) {
		t.Errorf("CatalogFile = %q", cfg.CatalogFile)
	}
	if cfg.CatalogURL == "" {
		t.Error("CatalogURL is empty")
	}
}

func TestPickerCommand(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	name, args := cfg.PickerCommand("fuzzel")
	if name != "fuzzel" || !reflect.DeepEqual(args, []string{"--dmenu", "--counter"}) {
		t.Errorf("PickerCommand(fuzzel) = %q %v", name, args)
	}

	name, args = cfg.PickerCommand("bemenu")
	if name != "bemenu" || len(args) != 0 {
		t.Errorf("PickerCommand(bemenu) = %q %v", name, args)
	}

	// Unknown pickers substitute the default.
	name, args = cfg.PickerCommand("dmenu")
	if name != "fuzzel" || !reflect.DeepEqual(args, []string{"--dmenu", "--counter"}) {
		t.Errorf("PickerCommand(dmenu) = %q %v", name, args)
	}
}
