package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/uvi-dev/uvi/internal/options"
)

func runOptions(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("options", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format string
		src    sourceFlags
	)
	fs.StringVar(&format, "format", string(options.FormatYAML), "Output format: toml, yaml or json")
	src.register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("options: unexpected args: %v", fs.Args())
	}

	f, err := options.ParseFormat(format)
	if err != nil {
		return err
	}
	opts, err := src.resolve()
	if err != nil {
		return err
	}
	return options.Encode(stdout, opts, f)
}
