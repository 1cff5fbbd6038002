package state

import "image"

// Mode is the exclusive interaction mode. Exactly one variant is active at a
// time; illegal combinations (visual select inside a viewer, for example) are
// unrepresentable.
type Mode interface {
	isMode()
}

// BrowseMode is the default dual-pane navigation mode.
type BrowseMode struct{}

// VisualMode is an anchored range selection. Anchor is the cursor index where
// the mode was entered; Saved holds the marks that existed at that moment so
// cursor movement can rebuild the pane's marks as Saved union the anchored
// interval.
type VisualMode struct {
	Anchor int
	Saved  map[string]struct{}
}

// ViewerMode displays a text file. Offset is the top visible line, which is
// also the line the relative numbering is computed against.
type ViewerMode struct {
	Path   string
	Title  string
	Lines  []string
	Offset int
}

// ImageMode displays a decoded image in the pane opposite the active one.
type ImageMode struct {
	Path string
	Img  image.Image
}

// ConfirmDeleteMode prompts before deleting Targets. The prompt swallows every
// key outside its yes/no set; q answers no rather than quitting.
type ConfirmDeleteMode struct {
	Targets []string
}

// SearchMode is the incremental-search prompt.
type SearchMode struct {
	Query string
}

// RenameMode is the inline rename prompt for the current entry.
type RenameMode struct {
	Original string
	Buffer   string
}

// SortMode is the sort-order popup. Selected indexes fs.SortOptions.
type SortMode struct {
	Selected int
}

func (BrowseMode) isMode()        {}
func (VisualMode) isMode()        {}
func (ViewerMode) isMode()        {}
func (ImageMode) isMode()         {}
func (ConfirmDeleteMode) isMode() {}
func (SearchMode) isMode()        {}
func (RenameMode) isMode()        {}
func (SortMode) isMode()          {}
