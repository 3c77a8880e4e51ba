package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigctl/internal/validate"
)

func TestSplitArg(t *testing.T) {
	assert.Equal(t, []string{}, SplitArg(nil))
	assert.Equal(t, []string{"a", "b"}, SplitArg([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, SplitArg("a,b"))
	assert.Equal(t, []string{"a"}, SplitArg("a"))
}

func TestSplitArgDoesNotTrim(t *testing.T) {
	assert.Equal(t, []string{"a", " b"}, SplitArg("a, b"))
}

func TestSplitArgIdempotent(t *testing.T) {
	for _, input := range []any{nil, "a", "a,b", []string{"a,b"}, true, []any{"x"}} {
		once := SplitArg(input)
		assert.Equal(t, once, SplitArg(once), "SplitArg(SplitArg(%v))", input)
	}
}

func TestNormalizeInitializesListKeys(t *testing.T) {
	normalized, err := Normalize(Options{
		"fail_mode":      "slow",
		"preserve_hosts": "never",
	})
	require.NoError(t, err)

	for _, k := range ListKeys {
		assert.Equal(t, []string{}, normalized[k], "list key %s must be initialized, not left unset", k)
	}
}

func TestNormalizeCoercesListKeys(t *testing.T) {
	normalized, err := Normalize(Options{
		"fail_mode":      "slow",
		"preserve_hosts": "never",
		"modules":        "one,two",
		"helper":         "lib/helper.rb",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, normalized["modules"])
	assert.Equal(t, []string{"lib/helper.rb"}, normalized["helper"])
}

func TestNormalizeRejectsBadFailMode(t *testing.T) {
	_, err := Normalize(Options{
		"fail_mode":      "sideways",
		"preserve_hosts": "never",
	})
	require.Error(t, err)

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validate.KindMalformed, verr.Kind)
	assert.Equal(t, "fail_mode", verr.Subject)
}

func TestNormalizeRejectsBadPreserveHosts(t *testing.T) {
	_, err := Normalize(Options{
		"fail_mode":      "slow",
		"preserve_hosts": "sometimes",
	})
	require.Error(t, err)
}

func TestNormalizeExpandsInstallKeywords(t *testing.T) {
	normalized, err := Normalize(Options{
		"fail_mode":      "slow",
		"preserve_hosts": "never",
		"repo":           "https://github.com/puppetlabs",
		"install":        "PUPPET/3.1,https://example.com/custom.git#main",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://github.com/puppetlabs/puppet.git#3.1",
		"https://example.com/custom.git#main",
	}, normalized["install"])
}

func TestNormalizeTags(t *testing.T) {
	normalized, err := Normalize(Options{
		"fail_mode":      "slow",
		"preserve_hosts": "never",
		"tag_includes":   "Smoke,NIGHTLY",
		"tag_excludes":   "broken",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"smoke", "nightly"}, normalized["tag_includes"])
	assert.Equal(t, []string{"broken"}, normalized["tag_excludes"])
}

func TestNormalizeUnsetTagsBecomeEmpty(t *testing.T) {
	normalized, err := Normalize(Options{
		"fail_mode":      "slow",
		"preserve_hosts": "never",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{}, normalized["tag_includes"])
	assert.Equal(t, []string{}, normalized["tag_excludes"])
}

func TestNormalizeConflictingTags(t *testing.T) {
	_, err := Normalize(Options{
		"fail_mode":      "slow",
		"preserve_hosts": "never",
		"tag_includes":   "smoke",
		"tag_excludes":   "SMOKE",
	})
	require.Error(t, err)

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validate.KindInvariant, verr.Kind)
}
