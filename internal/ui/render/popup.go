package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kura-code/kura/internal/fs"
	statepkg "github.com/kura-code/kura/internal/state"
	textutil "github.com/kura-code/kura/internal/textutil"
)

// drawConfirmPopup renders the delete confirmation prompt over the panes.
func (r *Renderer) drawConfirmPopup(mode statepkg.ConfirmDeleteMode, w, h int) {
	prompt := fmt.Sprintf("Delete %d item(s)? (y/N)", len(mode.Targets))
	lines := []string{"Confirm Deletion", "", prompt}
	r.drawPopup(lines, w, h, -1)
}

// drawSortPopup renders the sort-order picker with the highlighted option.
func (r *Renderer) drawSortPopup(mode statepkg.SortMode, w, h int) {
	lines := make([]string, 0, len(fsutil.SortOptions)+2)
	lines = append(lines, "Sort By", "")
	lines = append(lines, fsutil.SortOptions...)
	r.drawPopup(lines, w, h, 2+mode.Selected)
}

// drawPopup centers a block of lines on screen; highlightRow (when >= 0) is
// drawn reversed.
func (r *Renderer) drawPopup(lines []string, w, h int, highlightRow int) {
	boxWidth := 0
	for _, line := range lines {
		if lw := textutil.DisplayWidth(line); lw > boxWidth {
			boxWidth = lw
		}
	}
	boxWidth += 4
	if boxWidth > w {
		boxWidth = w
	}
	boxHeight := len(lines) + 2
	if boxHeight > h {
		boxHeight = h
	}

	x0 := (w - boxWidth) / 2
	y0 := (h - boxHeight) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	style := tcell.StyleDefault.Background(r.theme.PopupBg).Foreground(r.theme.PopupFg)

	for y := y0; y < y0+boxHeight && y < h; y++ {
		r.fillRow(x0, y, x0+boxWidth, style)
	}

	for i, line := range lines {
		y := y0 + 1 + i
		if y >= y0+boxHeight-1 {
			break
		}
		lineStyle := style
		if i == highlightRow {
			lineStyle = lineStyle.Reverse(true)
		}
		text := textutil.TruncateToWidth(line, boxWidth-4)
		x := x0 + 2
		x = r.drawText(x, y, boxWidth-4, text, lineStyle)
		if i == highlightRow {
			r.fillRow(x, y, x0+boxWidth-2, lineStyle)
		}
	}
}
