package state

// Action is the base interface for all state mutations. Actions are produced
// by the input handler and the directory watcher and applied one at a time.
type Action interface{}

// ===== MOTION ACTIONS =====

// MoveDownAction and MoveUpAction carry the vim-style repeat count. The
// reducer interprets them per mode: cursor movement in browse, range growth
// in visual select, line scrolling in the viewer, highlight movement in the
// sort popup.
type MoveDownAction struct{ Count int }
type MoveUpAction struct{ Count int }

type GotoTopAction struct{}
type GotoBottomAction struct{}

// ===== PANE ACTIONS =====

// LeftKeyAction and RightKeyAction are the context-sensitive h/l keys:
// the inward edge switches panes, the outward edge goes to the parent.
type LeftKeyAction struct{}
type RightKeyAction struct{}

type ToggleMarkAction struct{}
type ToggleVisualAction struct{}

// OpenAction is Enter: enter directory, open viewer, close viewer, apply the
// highlighted sort order, commit rename or confirm deletion, depending on mode.
type OpenAction struct{}

// EscapeAction leaves visual select or cancels the active prompt.
type EscapeAction struct{}

// ===== CLIPBOARD ACTIONS =====

type CopyAction struct{}
type PasteAction struct{}

// ===== DELETE ACTIONS =====

type DeletePromptAction struct{} // x - ask first
type DeleteNowAction struct{}    // X - no prompt

type ConfirmAction struct{} // y / Enter while a prompt is open
type CancelAction struct{}  // n / Esc / q while a prompt is open

// ===== PROMPT ACTIONS =====

type SearchStartAction struct{}
type RenameStartAction struct{}
type SortStartAction struct{}

type PromptInputAction struct{ Char rune }
type PromptBackspaceAction struct{}

// ===== APPLICATION ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// PaneRefreshAction reloads one pane's listing in place, preserving cursor
// and marks by path. Dispatched by the directory watcher.
type PaneRefreshAction struct{ Pane PaneID }

type QuitAction struct{}
