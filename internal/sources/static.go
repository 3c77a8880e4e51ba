package sources

import "rigctl/internal/options"

// Static wraps an already-assembled mapping as a source. The cmd layer uses
// it for the command-line layer: only flags the user actually set are put in
// the mapping, so unset flags never clobber lower layers.
type Static struct {
	Values options.Options
}

// Parse implements options.Source.
func (s *Static) Parse() (options.Options, error) {
	if s.Values == nil {
		return options.Options{}, nil
	}
	return s.Values, nil
}
