package telemetry

import (
	"strconv"
	"strings"
	"time"
)

const (
	envPrefix   = "UVI_TRACE_OTEL_"
	envEndpoint = envPrefix + "ENDPOINT"
	envInsecure = envPrefix + "INSECURE"
	envHeaders  = envPrefix + "HEADERS"
	envService  = envPrefix + "SERVICE"
	envTimeout  = envPrefix + "TIMEOUT"
)

// Config selects the OTLP collector prune spans are exported to. An empty
// Endpoint keeps tracing off.
type Config struct {
	Endpoint    string
	Insecure    bool
	Headers     map[string]string
	ServiceName string
	Version     string
	DialTimeout time.Duration
}

func Default() Config {
	return Config{ServiceName: "uvi", DialTimeout: 5 * time.Second}
}

func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// FromEnv overlays the UVI_TRACE_OTEL_* variables on Default. Values that
// do not parse are ignored.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()
	if getenv == nil {
		return cfg
	}
	get := func(key string) string { return strings.TrimSpace(getenv(key)) }

	if v := get(envEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := get(envService); v != "" {
		cfg.ServiceName = v
	}
	if on, ok := parseSwitch(get(envInsecure)); ok {
		cfg.Insecure = on
	}
	if d, err := time.ParseDuration(get(envTimeout)); err == nil && d > 0 {
		cfg.DialTimeout = d
	}
	cfg.Headers = ParseHeaders(get(envHeaders))
	return cfg
}

// ParseHeaders reads "k=v,k2=v2". Entries without a key are dropped.
func ParseHeaders(raw string) map[string]string {
	var out map[string]string
	for _, pair := range strings.Split(raw, ",") {
		k, v, _ := strings.Cut(pair, "=")
		if k = strings.TrimSpace(k); k == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}

// parseSwitch accepts the y/n spellings used for template options as well
// as anything strconv.ParseBool understands.
func parseSwitch(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "y", "yes", "on":
		return true, true
	case "n", "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(v)
	return b, err == nil
}
