package prune

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Reconcile lists the immediate children of p.Dir and returns the full paths
// of regular files that are neither expected for tables under p's naming
// convention nor excluded. Dot-files and directories are skipped.
func Reconcile(ctx context.Context, p Pass, tables []string, exclude map[string]struct{}) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", p.Dir, err)
	}

	ents, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, &DirectoryAccessError{Dir: p.Dir, Err: err}
	}

	expected := ExpectedFiles(tables, p.Prefixes, p.Postfixes)
	var out []string
	for _, e := range ents {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(p.Dir, name)
		if isDir(path, e) {
			continue
		}
		if _, ok := exclude[name]; ok {
			continue
		}
		if _, ok := expected[name]; ok {
			continue
		}
		out = append(out, path)
	}
	return out, nil
}

// Candidates runs every pass in order and accumulates their candidates. A pass
// whose directory cannot be read is skipped; its DirectoryAccessError is
// returned in the second result and the remaining passes still run. Any other error
// aborts.
func Candidates(ctx context.Context, passes []Pass, tables []string, exclude map[string]struct{}) ([]string, []error, error) {
	var candidates []string
	var skipped []error
	for _, p := range passes {
		files, err := Reconcile(ctx, p, tables, exclude)
		if err != nil {
			var de *DirectoryAccessError
			if errors.As(err, &de) {
				skipped = append(skipped, err)
				continue
			}
			return candidates, skipped, err
		}
		candidates = append(candidates, files...)
	}
	return candidates, skipped, nil
}

func isDir(path string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
