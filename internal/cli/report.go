package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/yegor-usoltsev/propel-prune/internal/prune"
)

type reporter struct {
	out  io.Writer
	info *color.Color
	warn *color.Color
	fail *color.Color
}

func newReporter(out io.Writer, noColor bool) *reporter {
	r := &reporter{
		out:  out,
		info: color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed, color.Bold),
	}
	if noColor {
		r.info.DisableColor()
		r.warn.DisableColor()
		r.fail.DisableColor()
	}
	return r
}

func (r *reporter) list(header string, paths []string) {
	r.warn.Fprintf(r.out, "%s\n\n", header)
	for _, p := range paths {
		fmt.Fprintln(r.out, p)
	}
	fmt.Fprintln(r.out)
}

func (r *reporter) failures(failed []*prune.DeletionError) {
	if len(failed) == 0 {
		return
	}
	r.fail.Fprintf(r.out, "The following files could not be removed:\n\n")
	for _, f := range failed {
		r.fail.Fprintf(r.out, "%s (%v)\n", f.Path, f.Err)
	}
	fmt.Fprintln(r.out)
}

func (r *reporter) pruned(n int) {
	r.info.Fprintln(r.out, prunedLine(n))
}

func prunedLine(n int) string {
	if n == 1 {
		return "1 file pruned"
	}
	return fmt.Sprintf("%d files pruned", n)
}
