// Package store persists the flat JSON documents gomoji keeps in its data
// folder: the usage history and the Unicode emoji catalog.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"gomoji/internal/emoji"
)

// EnsureDir creates the data folder if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// LoadHistory reads the identity→count mapping. An absent file is an empty
// history, not an error.
func LoadHistory(path string) (emoji.History, error) {
	h := emoji.History{}
	if err := loadJSON(path, &h); err != nil {
		return nil, fmt.Errorf("loading history %s: %w", path, err)
	}
	return h, nil
}

// SaveHistory rewrites the history document in full, pretty-printed.
func SaveHistory(path string, h emoji.History) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("saving history %s: %w", path, err)
	}
	return nil
}

// LoadCatalog reads the grapheme→name mapping. An absent file is an empty
// catalog.
func LoadCatalog(path string) (emoji.Catalog, error) {
	c := emoji.Catalog{}
	if err := loadJSON(path, &c); err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// FetchCatalog downloads the catalog document to path. Called only when the
// local copy is missing; a failure here is the caller's to downgrade to a
// warning.
func FetchCatalog(url, path string) error {
	if url == "" {
		return errors.New("no catalog URL configured")
	}
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching catalog: %s", resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
