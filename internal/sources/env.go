package sources

import (
	"os"
	"strings"

	"rigctl/internal/options"
)

// EnvPrefix marks the environment variables rigctl consumes.
const EnvPrefix = "RIGCTL_"

// For mocking in tests
var osEnviron = os.Environ

// Env reads RIGCTL_-prefixed environment variables into an option mapping:
// RIGCTL_FAIL_MODE becomes fail_mode, RIGCTL_TYPE becomes type, and so on.
// Values stay strings; the normalizer handles list and boolean coercion.
type Env struct {
	// Prefix overrides EnvPrefix, mainly for tests.
	Prefix string
}

// Parse implements options.Source.
func (e *Env) Parse() (options.Options, error) {
	prefix := e.Prefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	out := options.Options{}
	for _, kv := range osEnviron() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, prefix))
		if name == "" {
			continue
		}
		out[name] = value
	}
	return out, nil
}
