package options

import (
	"encoding/json"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode writes the bindings of o to w in the requested format.
func Encode(w io.Writer, o Options, f Format) error {
	m := o.Map()
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatTOML:
		data, err = toml.Marshal(m)
	case FormatYAML:
		data, err = yaml.Marshal(m)
	case FormatJSON:
		data, err = json.MarshalIndent(m, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return fmt.Errorf("options: unsupported format %q", f)
	}
	if err != nil {
		return fmt.Errorf("options: encode %s: %w", f, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("options: write: %w", err)
	}
	return nil
}
