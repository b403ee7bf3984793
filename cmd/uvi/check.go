package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/uvi-dev/uvi/internal/theme"
)

func runCheck(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var src sourceFlags
	src.register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("check: unexpected args: %v", fs.Args())
	}

	opts, err := src.resolve()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := opts.CheckNames(); err != nil {
		return err
	}

	th := theme.ForWriter(stdout, true)
	writeLines(stdout,
		th.Success.Render("ok")+" "+opts.ProjectName+" ("+opts.ProjectSlug+")",
		"license: "+opts.LicenseName(),
	)
	return nil
}
