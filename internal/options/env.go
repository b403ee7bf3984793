package options

import (
	"strings"

	"github.com/joho/godotenv"

	"github.com/uvi-dev/uvi/internal/errdef"
)

// EnvKey returns the environment variable that overrides key.
func EnvKey(key string) string {
	return envPrefix + strings.ToUpper(strings.TrimSpace(key))
}

// FromEnv overlays UVI_<OPTION> variables on base. Empty values are
// treated as unset.
func FromEnv(base Options, getenv func(string) string) Options {
	if getenv == nil {
		return base
	}
	out := base
	for _, f := range fields {
		if val := strings.TrimSpace(getenv(EnvKey(f.key))); val != "" {
			f.set(&out, val)
		}
	}
	return out
}

// LoadEnvFile reads a dotenv file and returns a lookup over its entries.
func LoadEnvFile(path string) (func(string) string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeConfig, err, "read env file %s", path)
	}
	return func(k string) string { return vals[k] }, nil
}

// ChainEnv returns a lookup that yields the first non-empty value among fns.
func ChainEnv(fns ...func(string) string) func(string) string {
	return func(k string) string {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if v := fn(k); strings.TrimSpace(v) != "" {
				return v
			}
		}
		return ""
	}
}
