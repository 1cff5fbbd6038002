//go:build !windows

package fs

import "os"

func isExecutable(_ string, mode os.FileMode) bool {
	return mode&0o111 != 0
}
