package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/uvi-dev/uvi/internal/errdef"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat normalises a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errdef.New(errdef.CodeConfig, "unknown format %q (available: toml, yaml, json)", name)
	}
}

func formatFor(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errdef.New(errdef.CodeConfig, "cannot infer format of %s", path)
	}
	return ParseFormat(ext)
}

// LoadFile reads the raw bindings stored in path. The format follows the
// file extension.
func LoadFile(path string) (map[string]any, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeConfig, err, "read %s", path)
	}
	m, err := decode(data, f)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeConfig, err, "decode %s", path)
	}
	return m, nil
}

// Load overlays the bindings stored in path on base.
func Load(base Options, path string) (Options, error) {
	m, err := LoadFile(path)
	if err != nil {
		return Options{}, err
	}
	return Apply(base, m)
}

// loadOptional is Load for files that may legitimately be absent.
func loadOptional(base Options, path string) (Options, bool, error) {
	if strings.TrimSpace(path) == "" {
		return base, false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, false, nil
		}
		return Options{}, false, errdef.Wrap(errdef.CodeConfig, err, "stat %s", path)
	}
	o, err := Load(base, path)
	if err != nil {
		return Options{}, false, err
	}
	return o, true, nil
}

func decode(data []byte, f Format) (map[string]any, error) {
	m := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	default:
		err = fmt.Errorf("unsupported format %q", f)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
