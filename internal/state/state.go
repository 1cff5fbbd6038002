package state

// Clipboard holds the paths captured by the last copy command. It is only
// ever replaced by the next copy, never implicitly cleared, so the same
// snapshot can be pasted into several directories.
type Clipboard struct {
	Paths  []string
	Source PaneID
}

// AppState is the single source of truth. It is owned by the event loop and
// mutated by exactly one StateReducer.Reduce call at a time.
type AppState struct {
	Left   Pane
	Right  Pane
	Active PaneID

	Mode      Mode
	Clipboard Clipboard

	// Status line
	Status    string
	LastError error

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// ActivePane returns the pane that owns the cursor.
func (s *AppState) ActivePane() *Pane {
	if s.Active == LeftPane {
		return &s.Left
	}
	return &s.Right
}

// InactivePane returns the pane opposite the active one.
func (s *AppState) InactivePane() *Pane {
	if s.Active == LeftPane {
		return &s.Right
	}
	return &s.Left
}

// PaneByID returns the pane with the given id.
func (s *AppState) PaneByID(id PaneID) *Pane {
	if id == LeftPane {
		return &s.Left
	}
	return &s.Right
}

// ListHeight is the number of entry rows a pane can show: the screen minus
// header, pane title and status line.
func (s *AppState) ListHeight() int {
	h := s.ScreenHeight - 3
	if h < 1 {
		h = 1
	}
	return h
}
