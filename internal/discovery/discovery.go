// Package discovery enumerates the structure files a run may need to
// convert and filters out work whose artifact already exists.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InputExt is the extension of recognized structure files.
const InputExt = ".pdb"

// ErrInputDirNotFound indicates the configured input directory is missing.
// It is fatal: nothing can be converted without it.
var ErrInputDirNotFound = errors.New("input directory not found")

// Item is one unit of work: a single structure file awaiting conversion.
// Items are immutable once discovered.
type Item struct {
	ID   string // file name with the extension stripped
	Path string // source path of the structure file
}

// List enumerates the structure files in inputDir, non-recursively, and
// returns them sorted by ID for reproducible logging. Directory-listing
// order is not stable across platforms, so nothing downstream may rely
// on ordering for correctness. An empty directory yields an empty slice
// and a nil error.
func List(inputDir string) ([]Item, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, inputDir)
		}
		return nil, fmt.Errorf("failed to read input directory %s: %w", inputDir, err)
	}

	var items []Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, InputExt) {
			continue
		}
		items = append(items, Item{
			ID:   strings.TrimSuffix(name, ext),
			Path: filepath.Join(inputDir, name),
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Partition splits items into those still needing conversion and those
// whose artifact already exists in outputDir. The check is a plain
// existence test: artifact presence is the sole completion marker, so a
// rerun resumes from exactly the pending items.
func Partition(items []Item, outputDir, outputExt string) (pending, done []Item) {
	for _, item := range items {
		artifact := filepath.Join(outputDir, item.ID+outputExt)
		if _, err := os.Stat(artifact); err == nil {
			done = append(done, item)
			continue
		}
		pending = append(pending, item)
	}
	return pending, done
}
