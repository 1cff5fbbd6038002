package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kura-code/kura/internal/state"
	textutil "github.com/kura-code/kura/internal/textutil"
)

// drawViewer renders the full-width text viewer with a relative-number
// gutter. The top visible line is the current line.
func (r *Renderer) drawViewer(mode statepkg.ViewerMode, w, h int) {
	titleStyle := tcell.StyleDefault.Foreground(r.theme.ActiveTitleFg).Bold(true)
	title := fmt.Sprintf("%s (%d lines)", textutil.SanitizeTerminalText(mode.Title), len(mode.Lines))
	endX := r.drawText(0, 1, w, textutil.TruncateToWidth(title, w), titleStyle)
	r.fillRow(endX, 1, w, tcell.StyleDefault)

	gutterWidth := len(strconv.Itoa(len(mode.Lines)))
	if gutterWidth < 2 {
		gutterWidth = 2
	}

	gutterStyle := tcell.StyleDefault.Foreground(r.theme.GutterFg)
	currentStyle := tcell.StyleDefault.Foreground(r.theme.ActiveTitleFg)
	textStyle := tcell.StyleDefault.Foreground(r.theme.Foreground)

	height := h - 3
	for row := 0; row < height; row++ {
		y := 2 + row
		idx := mode.Offset + row
		if idx >= len(mode.Lines) {
			r.fillRow(0, y, w, tcell.StyleDefault)
			continue
		}

		gs := gutterStyle
		if idx == mode.Offset {
			gs = currentStyle
		}
		gutter := fmt.Sprintf("%*s ", gutterWidth, gutterLabel(idx, mode.Offset))
		x := r.drawText(0, y, w, gutter, gs)

		line := textutil.ExpandTabs(mode.Lines[idx], textutil.DefaultTabWidth)
		line = textutil.SanitizeTerminalText(line)
		line = textutil.TruncateToWidth(line, w-x)
		x = r.drawText(x, y, w-x, line, textStyle)
		r.fillRow(x, y, w, tcell.StyleDefault)
	}
}

// gutterLabel is the number shown for line idx when the viewport starts at
// offset: the distance to the current line, except the current line itself,
// which shows its absolute 1-based number.
func gutterLabel(idx, offset int) string {
	if idx == offset {
		return strconv.Itoa(idx + 1)
	}
	d := idx - offset
	if d < 0 {
		d = -d
	}
	return strconv.Itoa(d)
}
