package state

import (
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kura-code/kura/internal/fs"
)

func TestSearchJumpsToMatch(t *testing.T) {
	state := testState("alpha", "beta", "gamma")

	mustReduce(t, state, SearchStartAction{})
	if _, ok := state.Mode.(SearchMode); !ok {
		t.Fatalf("Expected SearchMode, got %T", state.Mode)
	}

	mustReduce(t, state, PromptInputAction{Char: 'g'})
	if state.Left.Cursor != 2 {
		t.Errorf("Expected cursor on gamma, got %d", state.Left.Cursor)
	}

	// The scan wraps around and is case-insensitive.
	mustReduce(t, state, PromptBackspaceAction{})
	mustReduce(t, state, PromptInputAction{Char: 'B'})
	if state.Left.Cursor != 1 {
		t.Errorf("Expected cursor on beta, got %d", state.Left.Cursor)
	}

	mustReduce(t, state, OpenAction{})
	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Errorf("Expected BrowseMode after Enter, got %T", state.Mode)
	}
	if state.Left.Cursor != 1 {
		t.Errorf("Expected cursor to stay on match after leaving search")
	}
}

func TestSearchCursorStaysOnCurrentMatch(t *testing.T) {
	state := testState("apple", "album", "beta")

	mustReduce(t, state, SearchStartAction{})
	mustReduce(t, state, PromptInputAction{Char: 'a'})
	if state.Left.Cursor != 1 {
		t.Fatalf("Expected jump to next match album, got %d", state.Left.Cursor)
	}

	// Extending the query keeps the cursor when it still matches.
	mustReduce(t, state, PromptInputAction{Char: 'l'})
	if state.Left.Cursor != 1 {
		t.Errorf("Expected cursor to stay on album, got %d", state.Left.Cursor)
	}
}

func TestRenameCommitsAndReselects(t *testing.T) {
	state, tmpDir := clipboardFixture(t)
	state.Left.SelectName("b.txt")

	mustReduce(t, state, RenameStartAction{})
	mode, ok := state.Mode.(RenameMode)
	if !ok {
		t.Fatalf("Expected RenameMode, got %T", state.Mode)
	}
	if mode.Original != "b.txt" || mode.Buffer != "b.txt" {
		t.Errorf("Expected prompt pre-filled with b.txt, got %+v", mode)
	}

	// b.txt -> z.txt
	for i := 0; i < 5; i++ {
		mustReduce(t, state, PromptBackspaceAction{})
	}
	for _, ch := range "z.txt" {
		mustReduce(t, state, PromptInputAction{Char: ch})
	}
	mustReduce(t, state, OpenAction{})

	if _, err := os.Stat(filepath.Join(tmpDir, "z.txt")); err != nil {
		t.Errorf("Expected z.txt on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "b.txt")); !os.IsNotExist(err) {
		t.Errorf("Expected b.txt gone, got %v", err)
	}
	entry := state.Left.CurrentEntry()
	if entry == nil || entry.Name != "z.txt" {
		t.Errorf("Expected cursor on renamed entry, got %+v", entry)
	}
}

func TestRenameToExistingNameIsSkipped(t *testing.T) {
	state, tmpDir := clipboardFixture(t)
	state.Left.SelectName("b.txt")

	mustReduce(t, state, RenameStartAction{})
	// b.txt -> a.txt, which already exists.
	for i := 0; i < 5; i++ {
		mustReduce(t, state, PromptBackspaceAction{})
	}
	for _, ch := range "a.txt" {
		mustReduce(t, state, PromptInputAction{Char: ch})
	}
	mustReduce(t, state, OpenAction{})

	if _, err := os.Stat(filepath.Join(tmpDir, "b.txt")); err != nil {
		t.Errorf("Expected b.txt untouched: %v", err)
	}
	if state.Status == "" {
		t.Errorf("Expected a skip report on the status line")
	}
}

func TestRenameEscCancels(t *testing.T) {
	state, tmpDir := clipboardFixture(t)
	state.Left.SelectName("b.txt")

	mustReduce(t, state, RenameStartAction{})
	mustReduce(t, state, PromptInputAction{Char: 'x'})
	mustReduce(t, state, EscapeAction{})

	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Fatalf("Expected BrowseMode after Esc, got %T", state.Mode)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "b.txt")); err != nil {
		t.Errorf("Expected b.txt untouched after cancel: %v", err)
	}
}

func TestSortPopupAppliesOrder(t *testing.T) {
	state := testState("small", "big", "medium")
	state.Left.Entries[0].Size = 1
	state.Left.Entries[1].Size = 100
	state.Left.Entries[2].Size = 10
	state.Left.Cursor = 2
	state.Left.Marked[state.Left.Entries[0].FullPath] = struct{}{}

	mustReduce(t, state, SortStartAction{})
	if _, ok := state.Mode.(SortMode); !ok {
		t.Fatalf("Expected SortMode, got %T", state.Mode)
	}

	// Move the highlight to "File size" and apply.
	mustReduce(t, state, MoveDownAction{Count: 1})
	mustReduce(t, state, MoveDownAction{Count: 1})
	mode := state.Mode.(SortMode)
	if fsutil.SortOrder(mode.Selected) != fsutil.OrderSize {
		t.Fatalf("Expected size order highlighted, got %d", mode.Selected)
	}
	mustReduce(t, state, OpenAction{})

	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Fatalf("Expected BrowseMode after apply, got %T", state.Mode)
	}
	if state.Left.Entries[0].Name != "big" {
		t.Errorf("Expected largest entry first, got %s", state.Left.Entries[0].Name)
	}
	if state.Left.Cursor != 0 {
		t.Errorf("Expected cursor reset, got %d", state.Left.Cursor)
	}
	if len(state.Left.Marked) != 0 {
		t.Errorf("Expected marks cleared by re-sort, got %d", len(state.Left.Marked))
	}
	if state.Left.Order != fsutil.OrderSize {
		t.Errorf("Expected pane order persisted")
	}
}

func TestSortPopupWrapsHighlight(t *testing.T) {
	state := testState("a")
	mustReduce(t, state, SortStartAction{})

	mustReduce(t, state, MoveUpAction{Count: 1})
	mode := state.Mode.(SortMode)
	if mode.Selected != len(fsutil.SortOptions)-1 {
		t.Errorf("Expected wrap to last option, got %d", mode.Selected)
	}

	mustReduce(t, state, EscapeAction{})
	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Errorf("Expected BrowseMode after Esc, got %T", state.Mode)
	}
}
