package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyPath copies a file or directory tree from src to dst. dst must not
// already exist; conflict policy is decided by the caller.
func CopyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", src, err)
	}
	if info.IsDir() {
		return copyDir(src, dst, info.Mode())
	}
	return copyFile(src, dst, info.Mode())
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm())
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("cannot copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", dst, err)
	}
	return nil
}

func copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode.Perm()); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dst, err)
	}
	children, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("cannot read directory %s: %w", src, err)
	}
	for _, child := range children {
		srcPath := filepath.Join(src, child.Name())
		dstPath := filepath.Join(dst, child.Name())
		info, err := child.Info()
		if err != nil {
			return fmt.Errorf("cannot stat %s: %w", srcPath, err)
		}
		if child.IsDir() {
			if err := copyDir(srcPath, dstPath, info.Mode()); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath, info.Mode()); err != nil {
			return err
		}
	}
	return nil
}

// DeletePath removes a file or a directory tree.
func DeletePath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}
	if info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("cannot delete directory %s: %w", path, err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("cannot delete %s: %w", path, err)
	}
	return nil
}
