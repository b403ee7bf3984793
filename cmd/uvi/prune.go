package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/uvi-dev/uvi/internal/prune"
	"github.com/uvi-dev/uvi/internal/telemetry"
	"github.com/uvi-dev/uvi/internal/theme"
)

const defaultDir = "."

func runPrune(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("prune", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		fmt.Fprint(stderr, heredoc.Doc(`
			Usage: uvi prune [flags] [dir]

			Removes the artifacts the options mark unused from a generated
			project and promotes the chosen license text to LICENSE.

			Flags:
		`))
		fs.SetOutput(stderr)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
	}

	var (
		dir     string
		dry     bool
		diff    bool
		strict  bool
		noColor bool
		quiet   bool
		src     sourceFlags
	)
	fs.StringVar(&dir, "dir", defaultDir, "Generated project directory")
	fs.BoolVar(&dry, "dry-run", false, "Print actions without touching files")
	fs.BoolVar(&diff, "diff", false, "Print a diff of the tree listing before pruning")
	fs.BoolVar(&strict, "strict", false, "Reject option values outside their domain")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&quiet, "quiet", false, "Do not report actions")
	src.register(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	extra := fs.Args()
	if len(extra) > 0 {
		if dir == defaultDir && len(extra) == 1 {
			dir = extra[0]
		} else {
			return fmt.Errorf("prune: unexpected args: %s", strings.Join(extra, " "))
		}
	}

	opts, err := src.resolve()
	if err != nil {
		return err
	}
	if strict {
		if err := opts.Validate(); err != nil {
			return err
		}
	}

	ctx := context.Background()
	tcfg := telemetry.FromEnv(os.Getenv)
	tcfg.Version = version
	tp, shutdown, err := telemetry.Setup(ctx, tcfg)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
		tp = noop.NewTracerProvider()
		shutdown = func(context.Context) error { return nil }
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	th := theme.ForWriter(stdout, !noColor)
	popt := prune.Opt{
		DryRun: dry,
		Theme:  &th,
		Tracer: tp.Tracer("github.com/uvi-dev/uvi"),
	}
	if !quiet {
		popt.Out = stdout
	}
	p, err := prune.Open(dir, popt)
	if err != nil {
		return err
	}

	ops := prune.Plan(opts)
	if diff {
		d, err := p.Preview(ops)
		if err != nil {
			return fmt.Errorf("prune: preview: %w", err)
		}
		fmt.Fprint(stdout, th.RenderDiff(d))
	}
	return p.Apply(ctx, ops)
}
