package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yegor-usoltsev/propel-prune/internal/prune"
)

func TestReporter_FailureBlock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	gone := filepath.Join(dir, "Gone.php")
	if err := os.WriteFile(gone, []byte("<?php\n"), 0o644); err != nil {
		t.Fatalf("write Gone.php: %v", err)
	}
	// A non-empty directory in place of a listed file makes os.Remove fail,
	// even when running as root.
	stuck := filepath.Join(dir, "Stuck.php")
	if err := os.MkdirAll(stuck, 0o755); err != nil {
		t.Fatalf("mkdir Stuck.php: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stuck, "keep"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write keep: %v", err)
	}

	res, err := prune.Delete(context.Background(), []string{stuck, gone}, false)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var out bytes.Buffer
	r := newReporter(&out, true)
	r.failures(res.Failed)
	r.pruned(len(res.Deleted))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if lines[0] != "The following files could not be removed:" {
		t.Fatalf("expected failure header first, got %q", out.String())
	}
	if !strings.HasPrefix(lines[2], stuck+" (") {
		t.Fatalf("expected failed path %s, got %q", stuck, lines[2])
	}
	if strings.Contains(out.String(), gone) {
		t.Fatalf("deleted file must not appear in failure block: %q", out.String())
	}
	last := lines[len(lines)-1]
	if last != "1 file pruned" {
		t.Fatalf("expected count on its own line, got %q", last)
	}
	if lines[len(lines)-2] != "" {
		t.Fatalf("expected blank line between failures and count, got %q", out.String())
	}
}

func TestReporter_NoFailures(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newReporter(&out, true)
	r.failures(nil)
	r.pruned(3)
	if out.String() != "3 files pruned\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
