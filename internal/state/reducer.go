package state

import (
	fsutil "github.com/kura-code/kura/internal/fs"
)

// StateReducer applies Actions to the AppState. Every Reduce call either
// fully succeeds or leaves the in-memory state untouched; filesystem failures
// are reported through the returned error or the status line, never by a
// half-applied state.
type StateReducer struct{}

// NewStateReducer creates a new reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies one action and returns the (mutated) state.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch action.(type) {
	case ResizeAction, PaneRefreshAction:
	default:
		// Any fresh command retires the previous status message.
		state.Status = ""
		state.LastError = nil
	}

	switch a := action.(type) {

	// ===== MOTIONS =====

	case MoveDownAction:
		return r.reduceMove(state, repeat(a.Count))

	case MoveUpAction:
		return r.reduceMove(state, -repeat(a.Count))

	case GotoTopAction:
		switch state.Mode.(type) {
		case BrowseMode:
			pane := state.ActivePane()
			pane.Cursor = 0
			pane.EnsureVisible(state.ListHeight())
		case ViewerMode:
			mode := state.Mode.(ViewerMode)
			mode.Offset = 0
			state.Mode = mode
		}
		return state, nil

	case GotoBottomAction:
		switch mode := state.Mode.(type) {
		case BrowseMode:
			pane := state.ActivePane()
			pane.Cursor = len(pane.Entries) - 1
			pane.ClampCursor()
			pane.EnsureVisible(state.ListHeight())
		case ViewerMode:
			mode.Offset = len(mode.Lines) - 1
			if mode.Offset < 0 {
				mode.Offset = 0
			}
			state.Mode = mode
		}
		return state, nil

	// ===== PANE SWITCHING / PARENT =====

	case LeftKeyAction:
		if _, ok := state.Mode.(BrowseMode); !ok {
			return state, nil
		}
		if state.Active == LeftPane {
			return r.gotoParent(state)
		}
		state.Active = LeftPane
		return state, nil

	case RightKeyAction:
		if _, ok := state.Mode.(BrowseMode); !ok {
			return state, nil
		}
		if state.Active == RightPane {
			return r.gotoParent(state)
		}
		state.Active = RightPane
		return state, nil

	// ===== MARKS & VISUAL SELECT =====

	case ToggleMarkAction:
		if _, ok := state.Mode.(BrowseMode); ok {
			state.ActivePane().ToggleMark()
		}
		return state, nil

	case ToggleVisualAction:
		switch state.Mode.(type) {
		case BrowseMode:
			pane := state.ActivePane()
			if pane.CurrentEntry() == nil {
				return state, nil
			}
			saved := make(map[string]struct{}, len(pane.Marked))
			for path := range pane.Marked {
				saved[path] = struct{}{}
			}
			state.Mode = VisualMode{Anchor: pane.Cursor, Saved: saved}
			pane.markInterval(saved, pane.Cursor, pane.Cursor)
		case VisualMode:
			// Marks stay as they are; only the anchor goes away.
			state.Mode = BrowseMode{}
		}
		return state, nil

	// ===== OPEN / CLOSE =====

	case OpenAction:
		return r.reduceOpen(state)

	case EscapeAction:
		switch state.Mode.(type) {
		case VisualMode, SearchMode, RenameMode, SortMode:
			state.Mode = BrowseMode{}
		case ConfirmDeleteMode:
			state.Mode = BrowseMode{}
			state.Status = "delete cancelled"
		}
		return state, nil

	// ===== CLIPBOARD =====

	case CopyAction:
		return r.reduceCopy(state)

	case PasteAction:
		return r.reducePaste(state)

	// ===== DELETE =====

	case DeletePromptAction:
		if _, ok := state.Mode.(BrowseMode); !ok {
			return state, nil
		}
		targets := state.ActivePane().SelectionPaths()
		if len(targets) == 0 {
			return state, nil
		}
		state.Mode = ConfirmDeleteMode{Targets: targets}
		return state, nil

	case DeleteNowAction:
		if _, ok := state.Mode.(BrowseMode); !ok {
			return state, nil
		}
		targets := state.ActivePane().SelectionPaths()
		if len(targets) == 0 {
			return state, nil
		}
		return r.deleteTargets(state, targets)

	case ConfirmAction:
		if mode, ok := state.Mode.(ConfirmDeleteMode); ok {
			state.Mode = BrowseMode{}
			return r.deleteTargets(state, mode.Targets)
		}
		return state, nil

	case CancelAction:
		if _, ok := state.Mode.(ConfirmDeleteMode); ok {
			state.Mode = BrowseMode{}
			state.Status = "delete cancelled"
		}
		return state, nil

	// ===== PROMPTS =====

	case SearchStartAction:
		if _, ok := state.Mode.(BrowseMode); ok {
			state.Mode = SearchMode{}
		}
		return state, nil

	case RenameStartAction:
		if _, ok := state.Mode.(BrowseMode); !ok {
			return state, nil
		}
		entry := state.ActivePane().CurrentEntry()
		if entry == nil {
			return state, nil
		}
		state.Mode = RenameMode{Original: entry.Name, Buffer: entry.Name}
		return state, nil

	case SortStartAction:
		if _, ok := state.Mode.(BrowseMode); ok {
			state.Mode = SortMode{Selected: int(state.ActivePane().Order)}
		}
		return state, nil

	case PromptInputAction:
		return r.reducePromptInput(state, a.Char)

	case PromptBackspaceAction:
		return r.reducePromptBackspace(state)

	// ===== APPLICATION =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.Left.EnsureVisible(state.ListHeight())
		state.Right.EnsureVisible(state.ListHeight())
		return state, nil

	case PaneRefreshAction:
		pane := state.PaneByID(a.Pane)
		if err := ReloadPane(pane); err != nil {
			return state, err
		}
		pane.EnsureVisible(state.ListHeight())
		return state, nil
	}

	return state, nil
}

// reduceMove handles j/k per mode. delta already carries the repeat count.
func (r *StateReducer) reduceMove(state *AppState, delta int) (*AppState, error) {
	switch mode := state.Mode.(type) {
	case BrowseMode:
		pane := state.ActivePane()
		pane.MoveCursor(delta)
		pane.EnsureVisible(state.ListHeight())

	case VisualMode:
		pane := state.ActivePane()
		pane.MoveCursor(delta)
		pane.EnsureVisible(state.ListHeight())
		lo, hi := mode.Anchor, pane.Cursor
		if lo > hi {
			lo, hi = hi, lo
		}
		pane.markInterval(mode.Saved, lo, hi)

	case ViewerMode:
		mode.Offset += delta
		if mode.Offset > len(mode.Lines)-1 {
			mode.Offset = len(mode.Lines) - 1
		}
		if mode.Offset < 0 {
			mode.Offset = 0
		}
		state.Mode = mode

	case SortMode:
		n := len(fsutil.SortOptions)
		step := 1
		if delta < 0 {
			step = n - 1
		}
		mode.Selected = (mode.Selected + step) % n
		state.Mode = mode
	}
	return state, nil
}

// reduceOpen handles Enter per mode.
func (r *StateReducer) reduceOpen(state *AppState) (*AppState, error) {
	switch mode := state.Mode.(type) {
	case BrowseMode:
		return r.openEntry(state)

	case ViewerMode, ImageMode:
		state.Mode = BrowseMode{}
		return state, nil

	case ConfirmDeleteMode:
		state.Mode = BrowseMode{}
		return r.deleteTargets(state, mode.Targets)

	case SearchMode:
		state.Mode = BrowseMode{}
		return state, nil

	case RenameMode:
		return r.commitRename(state, mode)

	case SortMode:
		return r.applySort(state, fsutil.SortOrder(mode.Selected))
	}
	return state, nil
}

// openEntry opens the cursor entry: directory, image or text file.
func (r *StateReducer) openEntry(state *AppState) (*AppState, error) {
	pane := state.ActivePane()
	entry := pane.CurrentEntry()
	if entry == nil {
		return state, nil
	}

	if entry.IsDir {
		if err := LoadPane(pane, entry.FullPath); err != nil {
			return state, err
		}
		return state, nil
	}

	if fsutil.IsImageFile(entry.FullPath) {
		img, err := fsutil.DecodeImage(entry.FullPath)
		if err != nil {
			return state, err
		}
		// The image takes over the pane opposite the active one; the active
		// pane keeps browsing.
		state.Mode = ImageMode{Path: entry.FullPath, Img: img}
		return state, nil
	}

	lines, err := fsutil.ReadTextLines(entry.FullPath)
	if err != nil {
		return state, err
	}
	state.Mode = ViewerMode{
		Path:  entry.FullPath,
		Title: entry.Name,
		Lines: lines,
	}
	return state, nil
}

// gotoParent reloads the active pane from its parent directory and puts the
// cursor on the directory just exited.
func (r *StateReducer) gotoParent(state *AppState) (*AppState, error) {
	pane := state.ActivePane()
	parent := parentDir(pane.Path)
	if parent == "" {
		return state, nil
	}
	exited := pane.Path
	if err := LoadPane(pane, parent); err != nil {
		return state, err
	}
	if !pane.SelectName(baseName(exited)) {
		pane.Cursor = 0
	}
	pane.EnsureVisible(state.ListHeight())
	return state, nil
}

func repeat(count int) int {
	if count < 1 {
		return 1
	}
	return count
}
