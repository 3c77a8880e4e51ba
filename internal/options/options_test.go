package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMergeOverlayWins(t *testing.T) {
	base := Options{"fail_mode": "slow", "type": "pe"}
	overlay := Options{"fail_mode": "fast"}

	merged := base.Merge(overlay)

	assert.Equal(t, "fast", merged["fail_mode"])
	assert.Equal(t, "pe", merged["type"], "keys absent from the overlay must survive")
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Options{"fail_mode": "slow"}
	overlay := Options{"fail_mode": "fast"}

	_ = base.Merge(overlay)

	assert.Equal(t, "slow", base["fail_mode"])
}

func TestMergeIsShallowForNestedMappings(t *testing.T) {
	base := Options{"ssh": Options{"port": 22, "forward_agent": true}}
	overlay := Options{"ssh": Options{"port": 2222}}

	merged := base.Merge(overlay)

	// A later mapping's value replaces, not deep-merges, the earlier one.
	want := Options{"port": 2222}
	if diff := cmp.Diff(want, AsMapping(merged["ssh"])); diff != "" {
		t.Errorf("ssh mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeHostsByName(t *testing.T) {
	base := Options{KeyHosts: Options{
		"alpha": Options{"platform": "el-6-x86_64"},
		"beta":  Options{"platform": "el-6-x86_64"},
	}}
	overlay := Options{KeyHosts: Options{
		"beta":  Options{"platform": "el-7-x86_64"},
		"gamma": Options{"platform": "ubuntu-14.04-amd64"},
	}}

	merged := base.Merge(overlay)
	hosts := AsMapping(merged[KeyHosts])

	assert.Len(t, hosts, 3)
	assert.Equal(t, "el-6-x86_64", AsString(AsMapping(hosts["alpha"])["platform"]))
	assert.Equal(t, "el-7-x86_64", AsString(AsMapping(hosts["beta"])["platform"]),
		"an overlay entry must wholly replace the base entry of the same name")
	assert.Equal(t, "ubuntu-14.04-amd64", AsString(AsMapping(hosts["gamma"])["platform"]))
}

func TestMergeNeverOverridesCommandLine(t *testing.T) {
	base := Options{KeyCommandLine: "rigctl run --hosts hosts.yaml"}
	overlay := Options{KeyCommandLine: "something else entirely"}

	merged := base.Merge(overlay)

	assert.Equal(t, "rigctl run --hosts hosts.yaml", merged[KeyCommandLine])
}

func TestMergeUnknownKeysPassThrough(t *testing.T) {
	base := Options{}
	overlay := Options{"my_custom_key": 42}

	merged := base.Merge(overlay)

	assert.Equal(t, 42, merged["my_custom_key"])
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "", AsString(nil))
	assert.Equal(t, "fast", AsString("fast"))
	assert.Equal(t, "true", AsString(true))
	assert.Equal(t, "22", AsString(22))
	assert.Equal(t, "", AsString([]string{"a"}), "sequences have no scalar form")
}

func TestAsBool(t *testing.T) {
	assert.True(t, AsBool(true))
	assert.True(t, AsBool("true"))
	assert.True(t, AsBool("yes"))
	assert.False(t, AsBool("no"))
	assert.False(t, AsBool(nil))
	assert.False(t, AsBool("banana"))
}

func TestAsStringListHandlesYAMLSequences(t *testing.T) {
	// yaml.v3 decodes sequences as []any.
	got := AsStringList([]any{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, got)

	assert.Equal(t, []string{"a"}, AsStringList("a"))
	assert.Nil(t, AsStringList(nil))
}

func TestAsMapping(t *testing.T) {
	m := map[string]any{"user": "root"}
	assert.Equal(t, Options(m), AsMapping(m))
	assert.Nil(t, AsMapping("not a mapping"))
	assert.Nil(t, AsMapping(nil))
}
