package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// DefaultRepoURL is the community collection of ready-made dashboards.
const DefaultRepoURL = "https://github.com/SigNoz/dashboards"

// Entry is one importable dashboard JSON file found in a catalog checkout.
type Entry struct {
	Category string
	Name     string
	Path     string
}

// Label returns the display name used in selection lists.
func (e Entry) Label() string {
	return e.Category + "/" + e.Name
}

// Fetch shallow-clones the catalog repository into a temp directory and scans
// it for dashboard files. The caller must remove the returned directory when
// done with the entries.
func Fetch(ctx context.Context, repoURL string) ([]Entry, string, error) {
	tmpDir, err := os.MkdirTemp("", "sdm-catalog-*")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp directory: %w", err)
	}

	_, err = git.PlainCloneContext(ctx, tmpDir, false, &git.CloneOptions{
		URL:   repoURL,
		Depth: 1,
	})
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, "", fmt.Errorf("cloning dashboard repository: %w", err)
	}

	entries, err := Scan(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, "", err
	}
	return entries, tmpDir, nil
}

// Scan walks a checkout and collects dashboard JSON files, grouped by their
// top-level directory. Files at the repository root land in "general".
func Scan(root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		category := "general"
		if dir := filepath.Dir(rel); dir != "." {
			category = strings.SplitN(dir, string(filepath.Separator), 2)[0]
		}

		entries = append(entries, Entry{Category: category, Name: d.Name(), Path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning catalog: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
