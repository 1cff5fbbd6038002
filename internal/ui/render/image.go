package render

import (
	"image"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kura-code/kura/internal/state"
	textutil "github.com/kura-code/kura/internal/textutil"
)

// drawImagePane renders a decoded image into the column [x0, x0+width) using
// upper-half-block cells: the rune's foreground colors the top pixel row and
// the background the bottom, giving two vertical pixels per cell.
func (r *Renderer) drawImagePane(mode statepkg.ImageMode, x0, width, h int) {
	titleStyle := tcell.StyleDefault.Foreground(r.theme.ActiveTitleFg).Bold(true)
	title := textutil.SanitizeTerminalText(filepath.Base(mode.Path))
	endX := r.drawText(x0, 1, width, textutil.TruncateToWidth(title, width), titleStyle)
	r.fillRow(endX, 1, x0+width, tcell.StyleDefault)

	rows := h - 3
	if rows < 1 || width < 1 || mode.Img == nil {
		return
	}

	bounds := mode.Img.Bounds()
	imgW := bounds.Dx()
	imgH := bounds.Dy()
	if imgW == 0 || imgH == 0 {
		return
	}

	// Fit the image into width x (2*rows) pixels; each cell row then draws
	// two of the fitted pixel rows.
	pixelRows := rows * 2
	cols, pixLines := fitImage(imgW, imgH, width, pixelRows)
	cellRows := (pixLines + 1) / 2

	offsetX := x0 + (width-cols)/2
	offsetY := (rows - cellRows) / 2

	for y := 0; y < rows; y++ {
		r.fillRow(x0, 2+y, x0+width, tcell.StyleDefault)
	}

	for cy := 0; cy < cellRows; cy++ {
		screenY := 2 + offsetY + cy
		if screenY >= h-1 {
			break
		}
		for cx := 0; cx < cols; cx++ {
			top := samplePixel(mode.Img, bounds, cx, cy*2, cols, pixLines)
			bottom := samplePixel(mode.Img, bounds, cx, cy*2+1, cols, pixLines)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			r.screen.SetContent(offsetX+cx, screenY, '▀', nil, style)
		}
	}
}

// fitImage scales (imgW, imgH) to fit (maxW, maxH) preserving aspect ratio.
func fitImage(imgW, imgH, maxW, maxH int) (int, int) {
	if imgW <= maxW && imgH <= maxH {
		return imgW, imgH
	}
	w := maxW
	h := imgH * maxW / imgW
	if h > maxH {
		h = maxH
		w = imgW * maxH / imgH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// samplePixel averages the source region mapped to destination pixel (dx, dy).
func samplePixel(img image.Image, bounds image.Rectangle, dx, dy, dstW, dstH int) tcell.Color {
	x0 := bounds.Min.X + dx*bounds.Dx()/dstW
	x1 := bounds.Min.X + (dx+1)*bounds.Dx()/dstW
	y0 := bounds.Min.Y + dy*bounds.Dy()/dstH
	y1 := bounds.Min.Y + (dy+1)*bounds.Dy()/dstH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var sumR, sumG, sumB, n uint64
	for y := y0; y < y1 && y < bounds.Max.Y; y++ {
		for x := x0; x < x1 && x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			sumR += uint64(cr >> 8)
			sumG += uint64(cg >> 8)
			sumB += uint64(cb >> 8)
			n++
		}
	}
	if n == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(sumR/n), int32(sumG/n), int32(sumB/n))
}
