package options

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rigctl/internal/validate"
)

// FileList expands a sequence of filesystem paths into the concrete list of
// test files to run. Regular files are kept as-is; directories are searched
// recursively for *.rb files, ordered shallowest-first (path depth, then
// full path). A directory that yields nothing, a path that is neither file
// nor directory, and an empty final list are all terminal errors.
func FileList(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, validate.Resourcef(p, "is neither a file nor a directory that can be read")
		}
		switch {
		case info.Mode().IsRegular():
			files = append(files, p)
		case info.IsDir():
			found, err := rubyFilesUnder(p)
			if err != nil {
				return nil, err
			}
			if len(found) == 0 {
				return nil, validate.Resourcef(p, "no .rb files found in directory")
			}
			files = append(files, found...)
		default:
			return nil, validate.Resourcef(p, "is neither a file nor a directory that can be read")
		}
	}
	if len(files) == 0 {
		return nil, validate.Resourcef(strings.Join(paths, ","), "no test files found")
	}
	return files, nil
}

// rubyFilesUnder collects every regular *.rb file beneath dir, sorted by
// (path depth, full path) ascending so shallower files run first.
func rubyFilesUnder(dir string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.HasSuffix(path, ".rb") {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, validate.Resourcef(dir, "error while searching directory: %v", err)
	}
	sep := string(os.PathSeparator)
	sort.SliceStable(found, func(i, j int) bool {
		di, dj := strings.Count(found[i], sep), strings.Count(found[j], sep)
		if di != dj {
			return di < dj
		}
		return found[i] < found[j]
	})
	return found, nil
}
