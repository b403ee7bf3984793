package initcmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uvi-dev/uvi/internal/options"
)

func TestRunWritesLoadableDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := Run(Opt{Dir: dir, Format: "toml", Out: io.Discard}); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, err := options.Load(options.Options{}, filepath.Join(dir, "uvi.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != options.Default() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestRunConflict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uvi.yaml")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Run(Opt{Dir: dir, Out: io.Discard}); err == nil {
		t.Fatalf("expected conflict error")
	}
}

func TestRunForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uvi.yaml")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var buf bytes.Buffer
	if err := Run(Opt{Dir: dir, Force: true, Out: &buf}); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "open_source_license") {
		t.Fatalf("expected overwrite, got %q", data)
	}
	if strings.TrimSpace(buf.String()) != "overwrite uvi.yaml" {
		t.Fatalf("unexpected report %q", buf.String())
	}
}

func TestRunDry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	var buf bytes.Buffer
	if err := Run(Opt{Dir: dir, Format: "json", DryRun: true, Out: &buf}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written in dry-run")
	}
	if strings.TrimSpace(buf.String()) != "dry-run: create uvi.json" {
		t.Fatalf("unexpected report %q", buf.String())
	}
}

func TestRunUnknownFormat(t *testing.T) {
	if err := Run(Opt{Dir: t.TempDir(), Format: "ini", Out: io.Discard}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
