package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gomoji/internal/clipboard"
	"gomoji/internal/config"
	"gomoji/internal/emoji"
	"gomoji/internal/picker"
	"gomoji/internal/store"
	"gomoji/internal/tui"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

const version = "0.3.0"

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "gomoji",
		Repository: "gomoji",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/gomoji/gomoji/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gomoji [picker] [copy-path] [options]\n\n")
		fmt.Fprintf(os.Stderr, "gomoji feeds a frequency-ranked emoji list (Unicode glyphs plus PNG\n")
		fmt.Fprintf(os.Stderr, "files from ~/assets/emojis) to an interactive picker and copies the\n")
		fmt.Fprintf(os.Stderr, "selection to the clipboard.\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  picker     fuzzel (default) or bemenu; unknown names use the default\n")
		fmt.Fprintf(os.Stderr, "  copy-path  \"false\" copies PNG selections as raw image bytes instead\n")
		fmt.Fprintf(os.Stderr, "             of a file:// path (default: path)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gomoji                # fuzzel, PNG selections copied as a path\n")
		fmt.Fprintf(os.Stderr, "  gomoji bemenu false   # bemenu, PNG selections copied as bytes\n")
		fmt.Fprintf(os.Stderr, "  gomoji --tui          # built-in terminal picker\n")
		fmt.Fprintf(os.Stderr, "  gomoji --json         # print the candidate list as JSON\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Print the merged candidate list as JSON and exit")
	tuiFlag := pflag.BoolP("tui", "t", false, "Use the built-in terminal picker instead of an external one")
	strictFlag := pflag.Bool("strict", false, "Fail when a history entry has no catalog match")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("gomoji version %s\n", version)
		return
	}

	if *updateFlag {
		checkUpdate(version)
		return
	}

	cfg, err := config.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gomoji: %v\n", err)
		os.Exit(1)
	}
	cfg.Strict = *strictFlag

	args := pflag.Args()
	pickerName := cfg.DefaultPicker
	if len(args) > 0 {
		pickerName = args[0]
	}
	// Second positional: anything but "false" keeps path-copy mode.
	copyAsPath := true
	if len(args) > 1 && strings.EqualFold(args[1], "false") {
		copyAsPath = false
	}

	if err := run(cfg, pickerName, copyAsPath, *tuiFlag, *jsonFlag); err != nil {
		fmt.Fprintf(os.Stderr, "gomoji: %v\n", err)
		os.Exit(1)
	}
}

// run is the whole flow: load stores, merge, pick, resolve, copy, persist.
// Strictly sequential; the only suspension points are the picker wait and
// the clipboard write.
func run(cfg *config.Config, pickerName string, copyAsPath, useTUI, asJSON bool) error {
	if err := store.EnsureDir(cfg.DataDir); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.CatalogFile); os.IsNotExist(err) {
		if err := store.FetchCatalog(cfg.CatalogURL, cfg.CatalogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not fetch the emoji catalog: %v\n", err)
		}
	}

	history, err := store.LoadHistory(cfg.HistoryFile)
	if err != nil {
		return err
	}
	catalog, err := store.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}

	cands, err := emoji.Merge(history, catalog, cfg.ImageDir, cfg.Strict)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cands)
	}

	var output string
	if useTUI {
		output, err = tui.Pick(cands)
	} else {
		name, pickerArgs := cfg.PickerCommand(pickerName)
		output, err = picker.Run(picker.Command{Name: name, Args: pickerArgs}, cands)
	}
	if err != nil {
		return err
	}
	if output == "" {
		return nil // user declined to select anything
	}

	sel, err := emoji.Resolve(output)
	if err != nil {
		return err
	}

	if err := clipboard.Copy(sel, cfg.ImageDir, copyAsPath); err != nil {
		clipboard.Notify("Copy failed: " + err.Error())
		return err
	}
	clipboard.Notify("Copied: " + sel.Emoji)

	history[sel.Name]++
	return store.SaveHistory(cfg.HistoryFile, history)
}
