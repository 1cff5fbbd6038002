package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	statepkg "github.com/kura-code/kura/internal/state"
	textutil "github.com/kura-code/kura/internal/textutil"
)

// Renderer draws the whole UI from the current state.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	r.drawHeader(state, w)

	if mode, ok := state.Mode.(statepkg.ViewerMode); ok {
		r.drawViewer(mode, w, h)
		r.drawStatusLine(state, w, h)
		r.screen.Show()
		return
	}

	leftWidth := w / 2
	rightWidth := w - leftWidth

	// An open image takes over the inactive pane's half of the screen.
	imageMode, imageOpen := state.Mode.(statepkg.ImageMode)

	if imageOpen && state.Active == statepkg.RightPane {
		r.drawImagePane(imageMode, 0, leftWidth, h)
	} else {
		r.drawPane(state, &state.Left, 0, leftWidth, h, state.Active == statepkg.LeftPane)
	}
	if imageOpen && state.Active == statepkg.LeftPane {
		r.drawImagePane(imageMode, leftWidth, rightWidth, h)
	} else {
		r.drawPane(state, &state.Right, leftWidth, rightWidth, h, state.Active == statepkg.RightPane)
	}

	if mode, ok := state.Mode.(statepkg.ConfirmDeleteMode); ok {
		r.drawConfirmPopup(mode, w, h)
	}
	if mode, ok := state.Mode.(statepkg.SortMode); ok {
		r.drawSortPopup(mode, w, h)
	}

	r.drawStatusLine(state, w, h)
	r.screen.Show()
}

// drawHeader renders the top bar: application name plus the active directory.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	endX := r.drawText(0, 0, w, "kura", style.Bold(true))
	if endX < w {
		r.screen.SetContent(endX, 0, ' ', nil, style)
		endX++
	}

	path := textutil.SanitizeTerminalText(state.ActivePane().Path)
	path = textutil.TruncateToWidth(path, w-endX)
	endX = r.drawText(endX, 0, w-endX, path, style)

	for x := endX; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
}

// drawStatusLine renders the bottom row: an active prompt, an error, or the
// latest status message with mark and clipboard counters.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Foreground(r.theme.StatusFg)

	var text string
	switch mode := state.Mode.(type) {
	case statepkg.SearchMode:
		text = "/" + mode.Query
	case statepkg.RenameMode:
		text = fmt.Sprintf("rename: %s -> %s", mode.Original, mode.Buffer)
	case statepkg.VisualMode:
		text = "-- VISUAL --"
	default:
		switch {
		case state.LastError != nil:
			text = state.LastError.Error()
			style = style.Foreground(r.theme.ErrorFg)
		case state.Status != "":
			text = state.Status
		default:
			pane := state.ActivePane()
			text = fmt.Sprintf("%d/%d", pane.Cursor+1, len(pane.Entries))
			if len(pane.Entries) == 0 {
				text = "0/0"
			}
			if marked := len(pane.Marked); marked > 0 {
				text += fmt.Sprintf("  %d marked", marked)
			}
			if n := len(state.Clipboard.Paths); n > 0 {
				text += fmt.Sprintf("  clipboard: %d", n)
			}
		}
	}

	text = textutil.SanitizeTerminalText(text)
	endX := r.drawText(0, y, w, textutil.TruncateToWidth(text, w), style)
	for x := endX; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes text at (x, y) clipped to maxWidth columns and returns the
// next x position.
func (r *Renderer) drawText(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		if x+w > startX+maxWidth {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for i := 1; i < w; i++ {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
		x += w
	}
	return x
}

// fillRow paints the rest of a row with spaces in the given style.
func (r *Renderer) fillRow(fromX, y, toX int, style tcell.Style) {
	for x := fromX; x < toX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
