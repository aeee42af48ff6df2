package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeertmans/untex/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")
		content := []byte("\\documentclass{article}\n")

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, content, 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		content := []byte("formatted")
		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, content, 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("preserves specified mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if got := stat.Mode().Perm(); got != 0600 {
			t.Errorf("mode = %o, want %o", got, 0600)
		}
	})

	t.Run("uses default mode when zero", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if got := stat.Mode().Perm(); got != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", got, fsutil.DefaultFileMode)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})

	t.Run("cleans up temp file on error", func(t *testing.T) {
		t.Parallel()

		// Renaming into a non-existent parent directory fails.
		dir := t.TempDir()
		path := filepath.Join(dir, "nonexistent", "main.tex")

		ctx := context.Background()
		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0644); err == nil {
			t.Fatal("expected error for invalid path")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		for _, entry := range entries {
			if strings.Contains(entry.Name(), ".tmp") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")
		content := []byte("formatted\n")

		ctx := context.Background()
		changed, err := fsutil.WriteAtomicIfChanged(ctx, path, content, 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !changed {
			t.Error("expected changed = true for new file")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("skips unchanged content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")
		content := []byte("already formatted\n")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		ctx := context.Background()
		changed, err := fsutil.WriteAtomicIfChanged(ctx, path, content, 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if changed {
			t.Error("expected changed = false for unchanged content")
		}
	})

	t.Run("writes changed content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		newContent := []byte("formatted")
		ctx := context.Background()
		changed, err := fsutil.WriteAtomicIfChanged(ctx, path, newContent, 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !changed {
			t.Error("expected changed = true for different content")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("content = %q, want %q", got, newContent)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "main.tex")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("x"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
