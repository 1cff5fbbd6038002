package state

import (
	"golang.org/x/text/unicode/norm"

	fsutil "github.com/kura-code/kura/internal/fs"
)

// PaneID identifies one of the two directory panes.
type PaneID int

const (
	LeftPane PaneID = iota
	RightPane
)

// Other returns the opposite pane id.
func (id PaneID) Other() PaneID {
	if id == LeftPane {
		return RightPane
	}
	return LeftPane
}

// Pane holds one directory view: the listing snapshot, cursor, scroll offset
// and the marked set. Marks are keyed by path, not index, so they survive
// reloads as long as the path is still present.
type Pane struct {
	Path    string
	Entries []fsutil.Entry
	Cursor  int
	Scroll  int
	Marked  map[string]struct{}
	Order   fsutil.SortOrder
}

// CurrentEntry returns the entry under the cursor, or nil on an empty listing.
func (p *Pane) CurrentEntry() *fsutil.Entry {
	if p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return nil
	}
	return &p.Entries[p.Cursor]
}

// MoveCursor moves the cursor by delta, clamped to the listing bounds.
// There is no wraparound.
func (p *Pane) MoveCursor(delta int) {
	p.Cursor += delta
	p.ClampCursor()
}

// ClampCursor forces the cursor back into [0, len-1].
func (p *Pane) ClampCursor() {
	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// EnsureVisible adjusts the scroll offset just enough to keep the cursor
// inside a viewport of the given height. No re-centering.
func (p *Pane) EnsureVisible(height int) {
	if height < 1 {
		height = 1
	}
	if p.Cursor < p.Scroll {
		p.Scroll = p.Cursor
	}
	if p.Cursor >= p.Scroll+height {
		p.Scroll = p.Cursor - height + 1
	}
	if p.Scroll < 0 {
		p.Scroll = 0
	}
}

// IsMarked reports whether path belongs to the marked set.
func (p *Pane) IsMarked(path string) bool {
	_, ok := p.Marked[path]
	return ok
}

// ToggleMark flips the mark on the entry under the cursor.
func (p *Pane) ToggleMark() {
	entry := p.CurrentEntry()
	if entry == nil {
		return
	}
	if p.Marked == nil {
		p.Marked = make(map[string]struct{})
	}
	if p.IsMarked(entry.FullPath) {
		delete(p.Marked, entry.FullPath)
	} else {
		p.Marked[entry.FullPath] = struct{}{}
	}
}

// MarkedPaths returns the marked paths in listing order.
func (p *Pane) MarkedPaths() []string {
	if len(p.Marked) == 0 {
		return nil
	}
	paths := make([]string, 0, len(p.Marked))
	for _, entry := range p.Entries {
		if p.IsMarked(entry.FullPath) {
			paths = append(paths, entry.FullPath)
		}
	}
	return paths
}

// SelectionPaths returns the marked paths, or the cursor entry when nothing
// is marked. This is the target set for copy and delete.
func (p *Pane) SelectionPaths() []string {
	if paths := p.MarkedPaths(); len(paths) > 0 {
		return paths
	}
	if entry := p.CurrentEntry(); entry != nil {
		return []string{entry.FullPath}
	}
	return nil
}

// SelectName moves the cursor to the entry with the given name, returning
// whether it was found. Listing names are NFC-normalized, while names coming
// from paths carry the on-disk bytes, so the lookup normalizes too.
func (p *Pane) SelectName(name string) bool {
	name = norm.NFC.String(name)
	for idx, entry := range p.Entries {
		if entry.Name == name {
			p.Cursor = idx
			return true
		}
	}
	return false
}

// markInterval replaces the marked set with saved plus the paths in the closed
// index interval [lo, hi]. Used by visual select on every cursor move.
func (p *Pane) markInterval(saved map[string]struct{}, lo, hi int) {
	marked := make(map[string]struct{}, len(saved)+hi-lo+1)
	for path := range saved {
		marked[path] = struct{}{}
	}
	for i := lo; i <= hi && i < len(p.Entries); i++ {
		if i < 0 {
			continue
		}
		marked[p.Entries[i].FullPath] = struct{}{}
	}
	p.Marked = marked
}

// pruneMarks drops marks whose paths are no longer in the listing.
func (p *Pane) pruneMarks() {
	if len(p.Marked) == 0 {
		return
	}
	present := make(map[string]struct{}, len(p.Entries))
	for _, entry := range p.Entries {
		present[entry.FullPath] = struct{}{}
	}
	for path := range p.Marked {
		if _, ok := present[path]; !ok {
			delete(p.Marked, path)
		}
	}
}
