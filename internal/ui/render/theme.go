package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	DirectoryFg   tcell.Color
	HiddenFg      tcell.Color
	ExecutableFg  tcell.Color
	SelectionBg   tcell.Color
	SelectionFg   tcell.Color
	ActiveTitleFg tcell.Color
	TitleFg       tcell.Color
	MarkFg        tcell.Color
	GutterFg      tcell.Color
	StatusFg      tcell.Color
	ErrorFg       tcell.Color
	PopupBg       tcell.Color
	PopupFg       tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		DirectoryFg:   tcell.ColorBlue,
		HiddenFg:      tcell.ColorRed,
		ExecutableFg:  tcell.ColorGreen,
		SelectionBg:   tcell.ColorGray,
		SelectionFg:   tcell.ColorWhite,
		ActiveTitleFg: tcell.ColorYellow,
		TitleFg:       tcell.ColorWhite,
		MarkFg:        tcell.ColorYellow,
		GutterFg:      tcell.ColorDarkGray,
		StatusFg:      tcell.ColorDefault,
		ErrorFg:       tcell.ColorRed,
		PopupBg:       tcell.Color235,
		PopupFg:       tcell.ColorWhite,
	}
}
