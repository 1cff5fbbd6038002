package fs

import (
	"os"
	"time"
)

// Entry is an immutable snapshot of a single file or directory, taken at
// listing time. Listings are replaced wholesale, never patched in place.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
	Mode      os.FileMode
}

// IsHidden reports whether the entry name starts with a dot.
func (e Entry) IsHidden() bool {
	return len(e.Name) > 0 && e.Name[0] == '.'
}

// IsExecutable reports whether the entry is a runnable regular file.
func (e Entry) IsExecutable() bool {
	if e.IsDir {
		return false
	}
	return isExecutable(e.Name, e.Mode)
}
