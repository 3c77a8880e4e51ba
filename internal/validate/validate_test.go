package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailMode(t *testing.T) {
	for _, mode := range []string{"fast", "slow", "stop"} {
		assert.NoError(t, FailMode(mode), mode)
	}
	err := FailMode("sideways")
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindMalformed, verr.Kind)
	assert.Equal(t, "fail_mode", verr.Subject)
}

func TestPreserveHosts(t *testing.T) {
	for _, mode := range []string{"always", "onfail", "onpass", "never"} {
		assert.NoError(t, PreserveHosts(mode), mode)
	}
	assert.Error(t, PreserveHosts("sometimes"))
	assert.Error(t, PreserveHosts(""))
}

func TestAtMostOneDefault(t *testing.T) {
	assert.NoError(t, AtMostOneDefault(nil))
	assert.NoError(t, AtMostOneDefault([]string{"solo"}))

	err := AtMostOneDefault([]string{"one", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one, two")
}

func TestExactlyOneMaster(t *testing.T) {
	assert.NoError(t, ExactlyOneMaster(1))
	assert.Error(t, ExactlyOneMaster(0))
	assert.Error(t, ExactlyOneMaster(2))
}

func TestFrictionlessRoles(t *testing.T) {
	assert.NoError(t, FrictionlessRoles([]string{"agent"}))
	assert.NoError(t, FrictionlessRoles([]string{"frictionless", "agent"}))
	assert.NoError(t, FrictionlessRoles([]string{"master", "database"}))

	err := FrictionlessRoles([]string{"frictionless", "master"})
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindInvariant, verr.Kind)
}

func TestTags(t *testing.T) {
	assert.NoError(t, Tags(nil, nil))
	assert.NoError(t, Tags([]string{"smoke"}, []string{"slow"}))
	assert.Error(t, Tags([]string{"smoke", "ci"}, []string{"ci"}))
}

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.yaml")

	err := RequireFile(path, "blimpy hypervisor")
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, KindResource, verr.Kind)
	assert.Contains(t, err.Error(), "blimpy")

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.NoError(t, RequireFile(path, "blimpy hypervisor"))

	assert.Error(t, RequireFile(dir, "a directory"), "directories do not satisfy file requirements")
}

func TestResolveSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.yaml")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(target, link))

	resolved := ResolveSymlink(link)
	// EvalSymlinks may also canonicalize the temp dir itself; compare the
	// final element.
	assert.Equal(t, "real.yaml", filepath.Base(resolved))

	missing := filepath.Join(dir, "missing.yaml")
	assert.Equal(t, missing, ResolveSymlink(missing), "unresolvable paths pass through unchanged")
}

func TestErrorFormatting(t *testing.T) {
	err := Invariantf("host1", "role %q is not supported", "master")
	assert.Equal(t, `host1: role "master" is not supported`, err.Error())
	assert.Equal(t, "invariant", err.Kind.String())

	bare := &Error{Kind: KindResource, Message: "no files"}
	assert.Equal(t, "no files", bare.Error())
}
