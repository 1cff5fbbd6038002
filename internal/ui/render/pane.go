package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kura-code/kura/internal/state"
	textutil "github.com/kura-code/kura/internal/textutil"
)

// drawPane renders one directory listing in the column [x0, x0+width).
func (r *Renderer) drawPane(state *statepkg.AppState, pane *statepkg.Pane, x0, width, h int, active bool) {
	if width < 1 || h < 3 {
		return
	}

	// Pane title: the directory path, highlighted for the active pane.
	titleStyle := tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true)
	if active {
		titleStyle = titleStyle.Foreground(r.theme.ActiveTitleFg)
	}
	title := textutil.SanitizeTerminalText(pane.Path)
	endX := r.drawText(x0, 1, width, textutil.TruncateToWidth(title, width), titleStyle)
	r.fillRow(endX, 1, x0+width, tcell.StyleDefault)

	height := state.ListHeight()
	for row := 0; row < height; row++ {
		y := 2 + row
		if y >= h-1 {
			break
		}
		idx := pane.Scroll + row
		if idx >= len(pane.Entries) {
			r.fillRow(x0, y, x0+width, tcell.StyleDefault)
			continue
		}
		r.drawEntryRow(pane, idx, x0, y, width, active)
	}
}

// drawEntryRow renders a single listing row: mark column, then the name
// colored by classification. The cursor row of the active pane is reversed.
func (r *Renderer) drawEntryRow(pane *statepkg.Pane, idx, x0, y, width int, active bool) {
	entry := pane.Entries[idx]

	style := tcell.StyleDefault.Foreground(r.theme.entryColor(Classify(entry)))
	markStyle := tcell.StyleDefault.Foreground(r.theme.MarkFg)
	if active && idx == pane.Cursor {
		style = style.Reverse(true)
		markStyle = markStyle.Reverse(true)
	}

	marker := ' '
	if pane.IsMarked(entry.FullPath) {
		marker = '*'
	}

	x := x0
	if width >= 2 {
		r.screen.SetContent(x, y, marker, nil, markStyle)
		x++
		r.screen.SetContent(x, y, ' ', nil, style)
		x++
	}

	name := textutil.SanitizeTerminalText(entry.Name)
	if entry.IsDir {
		name += "/"
	}
	name = textutil.TruncateToWidth(name, x0+width-x)
	x = r.drawText(x, y, x0+width-x, name, style)

	r.fillRow(x, y, x0+width, style)
}
