package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeertmans/untex/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")
		content := []byte("\\documentclass{article}\n")
		if err := os.WriteFile(path, content, 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, mode, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if mode.Perm() != 0600 {
			t.Errorf("mode = %o, want %o", mode.Perm(), 0600)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.tex")
		_, _, err := fsutil.ReadFile(context.Background(), path)
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, _, err := fsutil.ReadFile(context.Background(), dir)
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, _, err := fsutil.ReadFile(ctx, path); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
