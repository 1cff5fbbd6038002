//go:build windows

package fs

import (
	"os"
	"path/filepath"
	"strings"
)

func isExecutable(name string, _ os.FileMode) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".exe", ".bat", ".cmd", ".com":
		return true
	}
	return false
}
