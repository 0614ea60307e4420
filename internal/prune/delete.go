package prune

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Result is the outcome of Delete.
type Result struct {
	Deleted []string
	Failed  []*DeletionError
}

// Delete removes every path. A failure is recorded and does not stop the
// remaining removals. With dryRun nothing is removed and Deleted stays empty.
func Delete(ctx context.Context, paths []string, dryRun bool) (Result, error) {
	var res Result
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("delete: %w", err)
		}
		if dryRun {
			log.Printf("dry-run: remove file %s", path)
			continue
		}
		if err := os.Remove(path); err != nil {
			res.Failed = append(res.Failed, &DeletionError{Path: path, Err: err})
			continue
		}
		log.Printf("file- %s", path)
		res.Deleted = append(res.Deleted, path)
	}
	return res, nil
}
