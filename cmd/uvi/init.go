package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/uvi-dev/uvi/internal/initcmd"
)

func runInit(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: uvi init [flags] [dir]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Writes uvi.<format> holding the default options.")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Flags:")
		fs.SetOutput(stderr)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
	}

	var (
		dir    string
		format string
		force  bool
		dry    bool
	)
	fs.StringVar(&dir, "dir", initcmd.DefaultDir, "Target directory")
	fs.StringVar(&format, "format", initcmd.DefaultFormat, "File format: toml, yaml or json")
	fs.BoolVar(&force, "force", false, "Overwrite an existing options file")
	fs.BoolVar(&dry, "dry-run", false, "Print actions without writing files")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	extra := fs.Args()
	if len(extra) > 0 {
		if dir == initcmd.DefaultDir && len(extra) == 1 {
			dir = extra[0]
		} else {
			return fmt.Errorf("init: unexpected args: %s", strings.Join(extra, " "))
		}
	}

	return initcmd.Run(initcmd.Opt{
		Dir:    dir,
		Format: format,
		Force:  force,
		DryRun: dry,
		Out:    stdout,
	})
}
