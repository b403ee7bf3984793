package prune

import (
	"context"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/uvi-dev/uvi/internal/errdef"
	"github.com/uvi-dev/uvi/internal/options"
	"github.com/uvi-dev/uvi/internal/theme"
)

// Opt describes how a pass runs.
// Fields are plain values so callers can map flags directly.
type Opt struct {
	DryRun bool
	Out    io.Writer
	Theme  *theme.Theme
	Tracer trace.Tracer
}

// Pruner applies the pruning rules to one generated tree.
type Pruner struct {
	fs billy.Filesystem
	o  Opt
}

func New(fsys billy.Filesystem, o Opt) *Pruner {
	if o.Theme == nil {
		th := theme.Plain()
		o.Theme = &th
	}
	if o.Tracer == nil {
		o.Tracer = noop.NewTracerProvider().Tracer(tracerName)
	}
	return &Pruner{fs: fsys, o: o}
}

// Open returns a Pruner bound to the directory root.
func Open(root string, o Opt) (*Pruner, error) {
	fsys, err := openTree(root)
	if err != nil {
		return nil, err
	}
	return New(fsys, o), nil
}

// Run prunes the tree at root according to opts.
func Run(opts options.Options, root string) error {
	p, err := Open(root, Opt{})
	if err != nil {
		return err
	}
	return p.Run(context.Background(), opts)
}

func (p *Pruner) FS() billy.Filesystem { return p.fs }

// Run plans and applies a single pass. ctx only parents trace spans; the
// pass is never interrupted.
func (p *Pruner) Run(ctx context.Context, opts options.Options) error {
	return p.Apply(ctx, Plan(opts))
}

// Apply executes ops in order and stops at the first failure. Ops that
// already ran are not undone.
func (p *Pruner) Apply(ctx context.Context, ops []Op) error {
	ctx, span := p.o.Tracer.Start(ctx, "prune", trace.WithAttributes(
		attribute.String("uvi.run_id", uuid.NewString()),
		attribute.Int("uvi.ops", len(ops)),
		attribute.Bool("uvi.dry_run", p.o.DryRun),
	))
	defer span.End()

	for _, op := range ops {
		if err := p.step(ctx, op); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "prune failed")
			return err
		}
	}
	return nil
}

func (p *Pruner) step(ctx context.Context, op Op) error {
	_, span := p.o.Tracer.Start(ctx, string(op.Action), trace.WithAttributes(
		attribute.String("uvi.rule", op.Rule),
		attribute.String("uvi.path", op.Path),
	))
	defer span.End()

	if !p.o.DryRun {
		if err := execOp(p.fs, op); err != nil {
			err = errdef.Wrap(errdef.CodeFilesystem, &OpError{Op: op, Path: op.Path, Err: err}, "")
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	return p.report(op)
}

func (p *Pruner) report(op Op) error {
	if p.o.Out == nil {
		return nil
	}
	th := p.o.Theme
	line := ""
	if p.o.DryRun {
		line = th.DryRun.Render("dry-run:") + " "
	}
	switch op.Action {
	case ActionMove:
		line += fmt.Sprintf("%s %s %s %s",
			th.Move.Render(string(op.Action)),
			th.Path.Render(op.Path),
			th.Arrow.Render("->"),
			th.Path.Render(op.Target),
		)
	default:
		line += th.Remove.Render(string(op.Action)) + " " + th.Path.Render(op.Path)
	}
	if _, err := fmt.Fprintln(p.o.Out, line); err != nil {
		return fmt.Errorf("prune: report %s: %w", op, err)
	}
	return nil
}
