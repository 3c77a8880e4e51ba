package options

import (
	"fmt"
	"strings"
)

// gitRepoKeywords are the project names recognized as shorthand in the
// install option. "PUPPET/3.1" expands to "<repo>/puppet.git#3.1".
var gitRepoKeywords = []string{"PUPPET", "FACTER", "HIERA", "HIERA-PUPPET"}

// ParseGitRepos rewrites recognized KEYWORD/<ref> entries into fully
// qualified git URLs under baseRepo, with the ref carried in the URL
// fragment. Entries that match no keyword pass through unchanged.
func ParseGitRepos(entries []string, baseRepo string) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry
		for _, kw := range gitRepoKeywords {
			rest, ok := strings.CutPrefix(entry, kw+"/")
			if !ok {
				continue
			}
			out[i] = fmt.Sprintf("%s/%s.git#%s", baseRepo, strings.ToLower(kw), rest)
			break
		}
	}
	return out
}
