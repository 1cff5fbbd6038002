package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fsutil "github.com/kura-code/kura/internal/fs"
)

// reduceCopy snapshots the selection into the clipboard, replacing whatever
// was there. Marks are consumed by the copy, matching mark semantics for
// group operations.
func (r *StateReducer) reduceCopy(state *AppState) (*AppState, error) {
	if _, ok := state.Mode.(BrowseMode); !ok {
		return state, nil
	}
	pane := state.ActivePane()
	paths := pane.SelectionPaths()
	if len(paths) == 0 {
		return state, nil
	}
	state.Clipboard = Clipboard{Paths: paths, Source: state.Active}
	pane.Marked = make(map[string]struct{})
	state.Status = fmt.Sprintf("copied %d item(s)", len(paths))
	return state, nil
}

// reducePaste copies every clipboard entry into the active pane's directory.
// Conflict policy: an entry whose name already exists at the destination is
// skipped and reported; the rest of the batch still goes through. Nothing is
// overwritten. The clipboard survives so it can be pasted again elsewhere.
func (r *StateReducer) reducePaste(state *AppState) (*AppState, error) {
	if _, ok := state.Mode.(BrowseMode); !ok {
		return state, nil
	}
	if len(state.Clipboard.Paths) == 0 {
		state.Status = "clipboard is empty"
		return state, nil
	}

	dstDir := state.ActivePane().Path
	pasted := 0
	var skipped, failed []string

	for _, src := range state.Clipboard.Paths {
		name := filepath.Base(src)
		dst := filepath.Join(dstDir, name)
		if pathExists(dst) {
			skipped = append(skipped, name)
			continue
		}
		if err := fsutil.CopyPath(src, dst); err != nil {
			failed = append(failed, name)
			continue
		}
		pasted++
	}

	state.Status = pasteSummary(pasted, skipped, failed)
	return state, r.reloadVisiblePanes(state, dstDir)
}

func pasteSummary(pasted int, skipped, failed []string) string {
	parts := []string{fmt.Sprintf("pasted %d item(s)", pasted)}
	if len(skipped) > 0 {
		parts = append(parts, "skipped (exists): "+strings.Join(skipped, ", "))
	}
	if len(failed) > 0 {
		parts = append(parts, "failed: "+strings.Join(failed, ", "))
	}
	return strings.Join(parts, "; ")
}

// deleteTargets removes the given paths and reloads affected panes. Failures
// are reported per entry; the batch continues past them.
func (r *StateReducer) deleteTargets(state *AppState, targets []string) (*AppState, error) {
	deleted := 0
	var failed []string
	for _, path := range targets {
		if err := fsutil.DeletePath(path); err != nil {
			failed = append(failed, filepath.Base(path))
			continue
		}
		deleted++
	}

	if len(failed) > 0 {
		state.Status = fmt.Sprintf("deleted %d item(s); failed: %s", deleted, strings.Join(failed, ", "))
	} else {
		state.Status = fmt.Sprintf("deleted %d item(s)", deleted)
	}
	return state, r.reloadVisiblePanes(state, state.ActivePane().Path)
}

// reloadVisiblePanes refreshes every pane currently showing dir. Marks for
// removed paths drop out during the reload.
func (r *StateReducer) reloadVisiblePanes(state *AppState, dir string) error {
	var firstErr error
	for _, pane := range []*Pane{&state.Left, &state.Right} {
		if pane.Path != dir {
			continue
		}
		if err := ReloadPane(pane); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		pane.EnsureVisible(state.ListHeight())
	}
	return firstErr
}

// commitRename renames the current entry to the prompt buffer and re-selects
// it under the new name.
func (r *StateReducer) commitRename(state *AppState, mode RenameMode) (*AppState, error) {
	state.Mode = BrowseMode{}

	newName := mode.Buffer
	if newName == "" || newName == mode.Original {
		return state, nil
	}

	pane := state.ActivePane()
	entry := pane.CurrentEntry()
	if entry == nil || entry.Name != mode.Original {
		return state, nil
	}

	dst := filepath.Join(pane.Path, newName)
	if pathExists(dst) {
		state.Status = fmt.Sprintf("skipped (exists): %s", newName)
		return state, nil
	}
	if err := os.Rename(entry.FullPath, dst); err != nil {
		return state, fmt.Errorf("cannot rename %s: %w", entry.Name, err)
	}

	if err := ReloadPane(pane); err != nil {
		return state, err
	}
	pane.SelectName(newName)
	pane.EnsureVisible(state.ListHeight())
	return state, nil
}

// applySort re-orders the active pane and resets cursor and marks, the way a
// fresh listing would.
func (r *StateReducer) applySort(state *AppState, order fsutil.SortOrder) (*AppState, error) {
	state.Mode = BrowseMode{}
	pane := state.ActivePane()
	pane.Order = order
	fsutil.Sort(pane.Entries, order)
	pane.Cursor = 0
	pane.Scroll = 0
	pane.Marked = make(map[string]struct{})
	return state, nil
}

// reducePromptInput appends a character to the search or rename buffer. Each
// search edit jumps to the next matching entry.
func (r *StateReducer) reducePromptInput(state *AppState, ch rune) (*AppState, error) {
	switch mode := state.Mode.(type) {
	case SearchMode:
		mode.Query += string(ch)
		state.Mode = mode
		r.jumpToMatch(state, mode.Query)
	case RenameMode:
		mode.Buffer += string(ch)
		state.Mode = mode
	}
	return state, nil
}

func (r *StateReducer) reducePromptBackspace(state *AppState) (*AppState, error) {
	switch mode := state.Mode.(type) {
	case SearchMode:
		mode.Query = trimLastRune(mode.Query)
		state.Mode = mode
		r.jumpToMatch(state, mode.Query)
	case RenameMode:
		mode.Buffer = trimLastRune(mode.Buffer)
		state.Mode = mode
	}
	return state, nil
}

// jumpToMatch moves the cursor to the next entry whose name contains query,
// case-insensitively, scanning forward from the cursor with wraparound. The
// scan visits the cursor entry last, so a cursor already on a match stays.
func (r *StateReducer) jumpToMatch(state *AppState, query string) {
	pane := state.ActivePane()
	if query == "" || len(pane.Entries) == 0 {
		return
	}
	q := strings.ToLower(query)
	total := len(pane.Entries)
	for i := 1; i <= total; i++ {
		idx := (pane.Cursor + i) % total
		if strings.Contains(strings.ToLower(pane.Entries[idx].Name), q) {
			pane.Cursor = idx
			pane.EnsureVisible(state.ListHeight())
			return
		}
	}
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

func baseName(path string) string {
	return filepath.Base(path)
}
