package cli

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/yegor-usoltsev/propel-prune/internal/validate"
	"github.com/yegor-usoltsev/propel-prune/internal/version"
)

type root struct {
	Version kong.VersionFlag `name:"version" help:"Print version and exit."`

	Prune  pruneCmd  `cmd:"" default:"withargs" help:"Remove model, form and filter classes no longer backed by the schema."`
	Tables tablesCmd `cmd:"" help:"Print the class names derived from the schema."`
}

type streams struct {
	In  io.Reader
	Out io.Writer
}

func Run(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx := context.Background()

	var cli root
	k, err := kong.New(
		&cli,
		kong.Name("propel-prune"),
		kong.Description("Remove generated Propel classes whose tables are gone from the schema."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.Version},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(&streams{In: stdin, Out: stdout}),
	)
	if err != nil {
		log.Printf("init cli: %v", err)
		return 1
	}

	kctx, err := k.Parse(args)
	if err != nil {
		return parseExitCode(err)
	}

	if err := kctx.Run(); err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				log.Printf("validate: %s: %s", e.Path, e.Msg)
			}
			return 1
		}
		log.Printf("command failed: %v", err)
		return 1
	}

	return 0
}

func parseExitCode(err error) int {
	var ec interface{ ExitCode() int }
	if errors.As(err, &ec) {
		code := ec.ExitCode()
		if code == 0 {
			return 0
		}
		log.Printf("parse args: %v", err)
		return code
	}
	// If this isn't an ExitCoder error, treat it as a usage error.
	log.Printf("parse args: %v", err)
	return 2
}
