package state

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func viewerFixture(t *testing.T, name string, content []byte) *AppState {
	t.Helper()
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, name), content, 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	state, err := NewAppState(tmpDir)
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}
	state.ScreenWidth, state.ScreenHeight = 80, 24
	return state
}

func textLines(n int) []byte {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return []byte(b.String())
}

func TestEnterOpensTextViewer(t *testing.T) {
	state := viewerFixture(t, "notes.txt", textLines(20))

	mustReduce(t, state, OpenAction{})

	mode, ok := state.Mode.(ViewerMode)
	if !ok {
		t.Fatalf("Expected ViewerMode, got %T", state.Mode)
	}
	if mode.Title != "notes.txt" {
		t.Errorf("Expected title notes.txt, got %q", mode.Title)
	}
	if len(mode.Lines) != 20 {
		t.Errorf("Expected 20 lines, got %d", len(mode.Lines))
	}
	if mode.Offset != 0 {
		t.Errorf("Expected scroll at 0, got %d", mode.Offset)
	}
}

func TestViewerScrollClampsToLineCount(t *testing.T) {
	state := viewerFixture(t, "notes.txt", textLines(20))
	mustReduce(t, state, OpenAction{})

	mustReduce(t, state, MoveDownAction{Count: 5})
	if mode := state.Mode.(ViewerMode); mode.Offset != 5 {
		t.Errorf("Expected offset=5, got %d", mode.Offset)
	}

	mustReduce(t, state, MoveDownAction{Count: 100})
	if mode := state.Mode.(ViewerMode); mode.Offset != 19 {
		t.Errorf("Expected clamp at 19, got %d", mode.Offset)
	}

	mustReduce(t, state, MoveUpAction{Count: 100})
	if mode := state.Mode.(ViewerMode); mode.Offset != 0 {
		t.Errorf("Expected clamp at 0, got %d", mode.Offset)
	}

	mustReduce(t, state, GotoBottomAction{})
	if mode := state.Mode.(ViewerMode); mode.Offset != 19 {
		t.Errorf("Expected G to jump to last line, got %d", mode.Offset)
	}

	mustReduce(t, state, GotoTopAction{})
	if mode := state.Mode.(ViewerMode); mode.Offset != 0 {
		t.Errorf("Expected gg to jump to first line, got %d", mode.Offset)
	}
}

func TestEnterClosesViewer(t *testing.T) {
	state := viewerFixture(t, "notes.txt", textLines(3))
	mustReduce(t, state, OpenAction{})
	mustReduce(t, state, OpenAction{})

	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Errorf("Expected BrowseMode after closing viewer, got %T", state.Mode)
	}
}

func TestEnterOnBinaryFileStaysInBrowse(t *testing.T) {
	content := make([]byte, 64)
	for i := range content {
		content[i] = byte(i) // includes NUL and control bytes
	}
	state := viewerFixture(t, "blob.dat", content)

	_, err := NewStateReducer().Reduce(state, OpenAction{})
	if err == nil {
		t.Fatalf("Expected decode error for binary file")
	}
	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Errorf("Expected BrowseMode preserved on decode failure, got %T", state.Mode)
	}
}

func TestEnterOpensImageViewer(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	state := viewerFixture(t, "pic.png", buf.Bytes())

	mustReduce(t, state, OpenAction{})

	mode, ok := state.Mode.(ImageMode)
	if !ok {
		t.Fatalf("Expected ImageMode, got %T", state.Mode)
	}
	if mode.Img == nil {
		t.Errorf("Expected decoded image in mode")
	}

	// The active pane keeps browsing while the image is open.
	if state.Active != LeftPane {
		t.Errorf("Expected active pane unchanged")
	}

	mustReduce(t, state, OpenAction{})
	if _, ok := state.Mode.(BrowseMode); !ok {
		t.Errorf("Expected BrowseMode after closing image, got %T", state.Mode)
	}
}

func TestViewerRejectsBrowseCommands(t *testing.T) {
	state := viewerFixture(t, "notes.txt", textLines(3))
	mustReduce(t, state, OpenAction{})

	mustReduce(t, state, PasteAction{})
	if _, ok := state.Mode.(ViewerMode); !ok {
		t.Errorf("Expected viewer to stay open on paste command, got %T", state.Mode)
	}
	mustReduce(t, state, DeletePromptAction{})
	if _, ok := state.Mode.(ViewerMode); !ok {
		t.Errorf("Expected viewer to stay open on delete command, got %T", state.Mode)
	}
}
