package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SortOrder selects how a directory listing is ordered.
type SortOrder int

const (
	OrderName SortOrder = iota
	OrderModified
	OrderSize
)

// SortOptions are the labels shown in the sort popup, indexed by SortOrder.
var SortOptions = []string{
	"Alphabetical",
	"Last modified date",
	"File size",
}

// List reads a directory and returns entry snapshots in the given order.
func List(dirPath string, order SortOrder) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		rawName := e.Name()
		fullPath := filepath.Join(dirPath, rawName)

		isDir := e.IsDir()
		isSymlink := (info.Mode() & os.ModeSymlink) != 0

		// For symlinks, check if target is a directory
		if isSymlink {
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Modified:  info.ModTime(),
			Mode:      info.Mode(),
		})
	}

	Sort(entries, order)
	return entries, nil
}

// Sort orders entries in place. Ordering is stable within a listing so cursor
// arithmetic stays predictable across reloads.
func Sort(entries []Entry, order SortOrder) {
	switch order {
	case OrderModified:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Modified.Before(entries[j].Modified)
		})
	case OrderSize:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Size > entries[j].Size
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})
	}
}
