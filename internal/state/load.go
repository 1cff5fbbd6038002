package state

import (
	"os"
	"path/filepath"

	fsutil "github.com/kura-code/kura/internal/fs"
)

// NewAppState builds the initial state with both panes showing startDir.
func NewAppState(startDir string) (*AppState, error) {
	s := &AppState{
		Active: LeftPane,
		Mode:   BrowseMode{},
	}
	if err := LoadPane(&s.Left, startDir); err != nil {
		return nil, err
	}
	if err := LoadPane(&s.Right, startDir); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadPane replaces a pane's listing with the contents of dirPath. The cursor
// resets to the top and marks are dropped; a directory change invalidates
// both.
func LoadPane(p *Pane, dirPath string) error {
	entries, err := fsutil.List(dirPath, p.Order)
	if err != nil {
		return err
	}
	p.Path = dirPath
	p.Entries = entries
	p.Cursor = 0
	p.Scroll = 0
	p.Marked = make(map[string]struct{})
	return nil
}

// ReloadPane refreshes the listing of the pane's current directory after a
// mutating operation or an external change. The cursor follows the entry it
// was on when that entry still exists; marks survive by path and are dropped
// for paths that vanished.
func ReloadPane(p *Pane) error {
	var cursorPath string
	if entry := p.CurrentEntry(); entry != nil {
		cursorPath = entry.FullPath
	}

	entries, err := fsutil.List(p.Path, p.Order)
	if err != nil {
		return err
	}
	p.Entries = entries

	if cursorPath != "" {
		if !p.SelectName(filepath.Base(cursorPath)) {
			p.ClampCursor()
		}
	} else {
		p.ClampCursor()
	}
	p.pruneMarks()
	return nil
}

// parentDir returns the parent of path, or "" when path is already the root.
func parentDir(path string) string {
	parent := filepath.Dir(path)
	if parent == path {
		return ""
	}
	return parent
}

// pathExists reports whether anything exists at path, without following a
// trailing symlink.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
