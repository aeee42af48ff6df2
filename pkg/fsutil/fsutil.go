// Package fsutil provides the file system primitives untex needs for safe
// in-place formatting: reading sources and atomic writes.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadFile reads a file and returns its content and mode. The mode is
// preserved by WriteAtomic when formatting in place.
func ReadFile(ctx context.Context, path string) ([]byte, os.FileMode, error) {
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, 0, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, 0, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	return content, stat.Mode(), nil
}
