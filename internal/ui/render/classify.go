package render

import (
	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kura-code/kura/internal/fs"
)

// EntryClass is the display classification of a listing entry.
type EntryClass int

const (
	ClassDefault EntryClass = iota
	ClassDirectory
	ClassHidden
	ClassExecutable
)

// Classify maps an entry to its display class. Precedence when attributes
// overlap: Directory > Hidden > Executable > Default, so a hidden directory
// is still a Directory and a hidden executable is Hidden.
func Classify(entry fsutil.Entry) EntryClass {
	switch {
	case entry.IsDir:
		return ClassDirectory
	case entry.IsHidden():
		return ClassHidden
	case entry.IsExecutable():
		return ClassExecutable
	default:
		return ClassDefault
	}
}

func (t ColorTheme) entryColor(class EntryClass) tcell.Color {
	switch class {
	case ClassDirectory:
		return t.DirectoryFg
	case ClassHidden:
		return t.HiddenFg
	case ClassExecutable:
		return t.ExecutableFg
	default:
		return t.Foreground
	}
}
