package options

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uvi-dev/uvi/internal/errdef"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefaultBindsEveryKey(t *testing.T) {
	m := Default().Map()
	for _, k := range Keys() {
		if strings.TrimSpace(m[k]) == "" {
			t.Fatalf("expected default for %s", k)
		}
	}
	if got := m[KeyLicense]; got != "MIT license" {
		t.Fatalf("expected MIT default, got %q", got)
	}
}

func TestApplyReplayLayout(t *testing.T) {
	o, err := FromMap(map[string]any{
		"cookiecutter": map[string]any{
			"mkdocs":              "n",
			"devcontainer":        false,
			"open_source_license": "ISC license",
			"unrelated":           []any{"ignored"},
		},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !o.MkDocs.Off() || !o.Devcontainer.Off() {
		t.Fatalf("expected mkdocs and devcontainer off: %+v", o)
	}
	if o.License != LicenseISC {
		t.Fatalf("expected ISC, got %s", o.License)
	}
	if !o.Dockerfile.On() {
		t.Fatalf("expected dockerfile default to survive")
	}
}

func TestApplyRejectsNonScalar(t *testing.T) {
	_, err := FromMap(map[string]any{"mkdocs": []any{"y"}})
	if err == nil {
		t.Fatal("expected error for list value")
	}
	if !errdef.Is(err, errdef.CodeConfig) {
		t.Fatalf("expected config code, got %v", err)
	}
}

func TestUnknownLicenseKeepsRaw(t *testing.T) {
	o := Default()
	o.SetLicense("  WTFPL ")
	if o.License != LicenseUnknown {
		t.Fatalf("expected unknown, got %v", o.License)
	}
	if o.LicenseName() != "WTFPL" {
		t.Fatalf("expected raw name, got %q", o.LicenseName())
	}
	o.SetLicense("Not open source")
	if o.License != LicenseNone || o.LicenseName() != "Not open source" {
		t.Fatalf("expected none, got %v %q", o.License, o.LicenseName())
	}
}

func TestLoadFileFormats(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"opts.yaml": "default_context:\n  mkdocs: n\n  codecov: false\n",
		"opts.toml": "mkdocs = \"n\"\ncodecov = false\n",
		"opts.json": `{"mkdocs": "n", "codecov": "n"}`,
	}
	for name, data := range cases {
		p := writeFile(t, dir, name, data)
		o, err := Load(Default(), p)
		if err != nil {
			t.Fatalf("%s: load: %v", name, err)
		}
		if !o.MkDocs.Off() || !o.Codecov.Off() {
			t.Fatalf("%s: unexpected options %+v", name, o)
		}
	}
}

func TestLoadFileUnknownExtension(t *testing.T) {
	p := writeFile(t, t.TempDir(), "opts.ini", "mkdocs=n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected error for .ini")
	}
}

func TestResolvePrecedence(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "config.yaml", "default_context:\n  mkdocs: n\n  dockerfile: n\n")
	file := writeFile(t, dir, "opts.toml", "dockerfile = \"n\"\ncodecov = \"n\"\n")
	envFile := writeFile(t, dir, ".env", "UVI_CODECOV=y\nUVI_DEVCONTAINER=n\n")
	env := map[string]string{"UVI_DOCKERFILE": "y", "UVI_DEVCONTAINER": ""}

	o, err := Resolve(Sources{
		UserConfig: user,
		File:       file,
		EnvFile:    envFile,
		Getenv:     func(k string) string { return env[k] },
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !o.MkDocs.Off() {
		t.Fatalf("expected mkdocs from user config")
	}
	if !o.Dockerfile.On() {
		t.Fatalf("expected process env to win for dockerfile")
	}
	if !o.Codecov.On() {
		t.Fatalf("expected env file to win over options file for codecov")
	}
	if !o.Devcontainer.Off() {
		t.Fatalf("expected empty process env to fall through to env file")
	}
}

func TestResolveMissingUserConfig(t *testing.T) {
	o, err := Resolve(Sources{UserConfig: filepath.Join(t.TempDir(), "absent.yaml")})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if o != Default() {
		t.Fatalf("expected defaults, got %+v", o)
	}
}

func TestResolveMissingExplicitFile(t *testing.T) {
	_, err := Resolve(Sources{File: filepath.Join(t.TempDir(), "absent.yaml")})
	if !errdef.Is(err, errdef.CodeConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	o := Default()
	o.MkDocs = Flag("maybe")
	o.SetLicense("WTFPL")
	err := o.Validate()
	if !errdef.Is(err, errdef.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "mkdocs") || !strings.Contains(msg, "WTFPL") {
		t.Fatalf("expected both offenders in %q", msg)
	}
}

func TestCheckNames(t *testing.T) {
	o := Default()
	if err := o.CheckNames(); err != nil {
		t.Fatalf("defaults should pass: %v", err)
	}
	o.ProjectName = "my_project"
	if err := o.CheckNames(); err == nil {
		t.Fatal("expected underscore in name to fail")
	}
	o = Default()
	o.ProjectSlug = "my-project"
	if err := o.CheckNames(); err == nil {
		t.Fatal("expected dash in slug to fail")
	}
}

func TestEncodeTOMLLoadsBack(t *testing.T) {
	o := Default()
	o.MkDocs = No
	o.License = LicenseGPL

	var buf bytes.Buffer
	if err := Encode(&buf, o, FormatTOML); err != nil {
		t.Fatalf("encode: %v", err)
	}
	p := writeFile(t, t.TempDir(), "out.toml", buf.String())
	got, err := Load(Default(), p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != o {
		t.Fatalf("expected %+v, got %+v", o, got)
	}
}
