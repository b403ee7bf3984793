package initcmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/uvi-dev/uvi/internal/options"
)

// Command writes a starter options file holding the template defaults.
type Command struct {
	fs  FS
	out io.Writer
}

func New() *Command {
	return &Command{fs: OSFS{}, out: os.Stdout}
}

// Run writes the options file described by o with the OS filesystem.
func Run(o Opt) error {
	return New().Run(o)
}

func (c *Command) Run(o Opt) error {
	o = withDefaults(o)
	if o.Out == nil {
		o.Out = c.out
	}
	f, err := options.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	r := runner{fs: c.fs, o: o, f: f}
	return r.run()
}

type runner struct {
	fs FS
	o  Opt
	f  options.Format
}

func (r *runner) run() error {
	if err := r.ensureDir(); err != nil {
		return err
	}

	name := optionsBase + "." + string(r.f)
	p := filepath.Join(r.o.Dir, name)
	act := actionCreate
	info, err := r.fs.Stat(p)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("init: %s is a directory", name)
	case err == nil && !r.o.Force:
		return fmt.Errorf("init: %s already exists (use --force to overwrite)", name)
	case err == nil:
		act = actionOverwrite
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("init: stat %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := options.Encode(&buf, options.Default(), r.f); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if !r.o.DryRun {
		if err := r.writeAtomic(p, filePerm, buf.Bytes(), r.o.Force); err != nil {
			return fmt.Errorf("init: write %s: %w", name, err)
		}
	}
	return r.report(act, name)
}

func (r *runner) ensureDir() error {
	d := r.o.Dir
	info, err := r.fs.Stat(d)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("init: %s is not a directory", d)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("init: stat %s: %w", d, err)
	}
	if r.o.DryRun {
		return nil
	}
	if err = r.fs.MkdirAll(d, dirPerm); err != nil {
		return fmt.Errorf("init: create %s: %w", d, err)
	}
	return nil
}

func (r *runner) writeAtomic(p string, m fs.FileMode, data []byte, force bool) (err error) {
	f, err := r.fs.CreateTemp(filepath.Dir(p), ".uvi-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = r.fs.Remove(tmp)
		}
	}()
	if err = f.Chmod(m); err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if !force {
		if _, err = r.fs.Stat(p); err == nil {
			return fs.ErrExist
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return r.fs.Rename(tmp, p)
}

func (r *runner) report(act, path string) error {
	if r.o.Out == nil {
		return nil
	}
	prefix := ""
	if r.o.DryRun {
		prefix = "dry-run: "
	}
	if _, err := fmt.Fprintf(r.o.Out, "%s%s %s\n", prefix, act, path); err != nil {
		return fmt.Errorf("init: report %s %s: %w", act, path, err)
	}
	return nil
}
