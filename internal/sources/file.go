package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rigctl/internal/options"
)

// File reads a YAML options file into an option mapping. An empty path
// contributes an empty layer; a path that cannot be read or parsed is an
// error, since the user asked for it explicitly.
type File struct {
	Path string
}

// Parse implements options.Source.
func (f *File) Parse() (options.Options, error) {
	if f.Path == "" {
		return options.Options{}, nil
	}
	out, err := readYAMLMapping(f.Path)
	if err != nil {
		return nil, err
	}
	out["options_file"] = f.Path
	return out, nil
}

func readYAMLMapping(path string) (options.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing config from %s: %w", path, err)
	}
	out := options.Options{}
	for k, v := range raw {
		out[k] = v
	}
	return out, nil
}
