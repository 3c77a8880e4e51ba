package sources

import (
	"rigctl/internal/options"
)

// HostsFile reads a YAML hosts-definition file. The file owns host topology
// under its HOSTS key and may carry an embedded CONFIG section whose scalar
// keys are folded into the returned mapping alongside it:
//
//	HOSTS:
//	  rig-master:
//	    roles: [master]
//	    platform: el-7-x86_64
//	CONFIG:
//	  type: git
type HostsFile struct {
	Path string
}

// Parse implements options.Source.
func (h *HostsFile) Parse() (options.Options, error) {
	if h.Path == "" {
		return options.Options{}, nil
	}
	raw, err := readYAMLMapping(h.Path)
	if err != nil {
		return nil, err
	}
	out := options.Options{}
	if hostsMap := options.AsMapping(raw[options.KeyHosts]); hostsMap != nil {
		out[options.KeyHosts] = hostsMap
	}
	for k, v := range options.AsMapping(raw["CONFIG"]) {
		out[k] = v
	}
	out["hosts_file"] = h.Path
	return out, nil
}
