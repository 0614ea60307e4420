package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/yegor-usoltsev/propel-prune/internal/propel"
	"github.com/yegor-usoltsev/propel-prune/internal/prune"
)

type pruneCmd struct {
	Project projectFlags `embed:""`

	Exclude string `name:"exclude" env:"PROPEL_PRUNE_EXCLUDE" default:"BaseForm.class.php BaseFormPropel.class.php BaseFormFilterPropel.class.php" help:"A space delimited list of files to exclude from removal."`
	Yes     bool   `name:"yes" short:"y" help:"Delete without asking for confirmation."`
	DryRun  bool   `name:"dry-run" help:"List files that would be deleted without deleting them."`
	NoColor bool   `name:"no-color" help:"Disable colored output."`
}

func (c *pruneCmd) Run(ctx context.Context, s *streams) error {
	log.Printf("prune: application=%s env=%s", c.Project.Application, c.Project.Env)

	schemaPath := c.Project.schemaPath()
	tables, err := propel.ReadTableNames(ctx, schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	log.Printf("schema: %s: %d tables", schemaPath, len(tables))

	candidates, skipped, err := prune.Candidates(ctx, prune.DefaultPasses(c.Project.libDir()), tables, prune.ExcludeSet(c.Exclude))
	if err != nil {
		return fmt.Errorf("build removal list: %w", err)
	}
	for _, err := range skipped {
		log.Printf("prune: skip: %v", err)
	}

	r := newReporter(s.Out, c.NoColor)
	if len(candidates) == 0 {
		r.pruned(0)
		return nil
	}

	if c.DryRun {
		r.list("The following files would be deleted:", candidates)
		if _, err := prune.Delete(ctx, candidates, true); err != nil {
			return err
		}
		r.pruned(0)
		return nil
	}

	r.list("The following files are scheduled for deletion:", candidates)
	if !c.Yes {
		if !confirm(s.In, s.Out, "Perform deletion?") {
			r.pruned(0)
			return nil
		}
	}

	res, err := prune.Delete(ctx, candidates, false)
	if err != nil {
		return err
	}
	r.failures(res.Failed)
	r.pruned(len(res.Deleted))
	return nil
}

type tablesCmd struct {
	Project projectFlags `embed:""`
}

func (c *tablesCmd) Run(ctx context.Context, s *streams) error {
	tables, err := propel.ReadTableNames(ctx, c.Project.schemaPath())
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	for _, t := range tables {
		fmt.Fprintln(s.Out, t)
	}
	return nil
}
