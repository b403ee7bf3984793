package initcmd

import (
	"io"
	"strings"
)

// Opt describes how the init command should run.
// Fields are plain values so callers can map flags directly.
type Opt struct {
	Dir    string
	Format string
	Force  bool
	DryRun bool
	Out    io.Writer
}

func withDefaults(opt Opt) Opt {
	opt.Dir = strings.TrimSpace(opt.Dir)
	if opt.Dir == "" {
		opt.Dir = DefaultDir
	}
	opt.Format = strings.ToLower(strings.TrimSpace(opt.Format))
	if opt.Format == "" {
		opt.Format = DefaultFormat
	}
	return opt
}
