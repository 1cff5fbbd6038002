package state

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDeletePromptTargetsCursorEntry(t *testing.T) {
	state, tmpDir := clipboardFixture(t)
	state.Left.SelectName("b.txt")

	mustReduce(t, state, DeletePromptAction{})

	mode, ok := state.Mode.(ConfirmDeleteMode)
	if !ok {
		t.Fatalf("Expected ConfirmDeleteMode, got %T", state.Mode)
	}
	if len(mode.Targets) != 1 || mode.Targets[0] != filepath.Join(tmpDir, "b.txt") {
		t.Errorf("Expected targets [b.txt], got %v", mode.Targets)
	}
}

func TestDeleteCancelLeavesListingUntouched(t *testing.T) {
	state, tmpDir := clipboardFixture(t)
	before := append([]string(nil), listingNames(state)...)

	mustReduce(t, state, DeletePromptAction{})
	mustReduce(t, state, CancelAction{})

	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Fatalf("Expected BrowseMode after cancel, got %T", state.Mode)
	}
	if !reflect.DeepEqual(before, listingNames(state)) {
		t.Errorf("Expected listing identical after cancel: %v vs %v", before, listingNames(state))
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "a.txt")); err != nil {
		t.Errorf("Expected filesystem untouched: %v", err)
	}
}

func TestDeleteConfirmRemovesTargets(t *testing.T) {
	state, tmpDir := clipboardFixture(t)
	state.Left.SelectName("b.txt")

	mustReduce(t, state, DeletePromptAction{})
	mustReduce(t, state, ConfirmAction{})

	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Fatalf("Expected BrowseMode after confirm, got %T", state.Mode)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "b.txt")); !os.IsNotExist(err) {
		t.Errorf("Expected b.txt deleted, got %v", err)
	}
	if len(state.Left.Entries) != 2 {
		t.Errorf("Expected 2 entries after delete, got %d", len(state.Left.Entries))
	}
}

func TestImmediateDeleteSkipsPrompt(t *testing.T) {
	state, tmpDir := clipboardFixture(t)

	// Mark all three entries, then X: no prompt, all gone, marks dropped.
	for i := 0; i < 3; i++ {
		mustReduce(t, state, ToggleMarkAction{})
		mustReduce(t, state, MoveDownAction{Count: 1})
	}
	mustReduce(t, state, DeleteNowAction{})

	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Fatalf("Expected BrowseMode throughout, got %T", state.Mode)
	}
	if len(state.Left.Entries) != 0 {
		t.Errorf("Expected empty listing, got %d entries", len(state.Left.Entries))
	}
	if len(state.Left.Marked) != 0 {
		t.Errorf("Expected marks dropped with deleted paths, got %d", len(state.Left.Marked))
	}
	entries, err := os.ReadDir(tmpDir)
	if err != nil || len(entries) != 0 {
		t.Errorf("Expected directory emptied, got %d entries (%v)", len(entries), err)
	}
}

func TestDeleteDirectoryTree(t *testing.T) {
	state, tmpDir := clipboardFixture(t)
	treeDir := filepath.Join(tmpDir, "tree")
	if err := os.MkdirAll(filepath.Join(treeDir, "sub"), 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(treeDir, "sub", "f.txt"), []byte("f"), 0o644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := ReloadPane(&state.Left); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}

	state.Left.SelectName("tree")
	mustReduce(t, state, DeleteNowAction{})

	if _, err := os.Stat(treeDir); !os.IsNotExist(err) {
		t.Errorf("Expected tree removed recursively, got %v", err)
	}
}

func listingNames(state *AppState) []string {
	names := make([]string, len(state.Left.Entries))
	for i, entry := range state.Left.Entries {
		names[i] = entry.Name
	}
	return names
}
