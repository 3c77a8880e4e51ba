package options

// Presets returns the built-in defaults that form the lowest layer of every
// resolution. Every list-like key starts as an empty sequence so downstream
// code never has to distinguish "absent" from "empty".
func Presets() Options {
	return Options{
		"fail_mode":      "slow",
		"preserve_hosts": "never",
		"type":           "pe",
		"provision":      true,
		"log_level":      "normal",
		"quiet":          false,
		"color":          true,
		"dry_run":        false,
		"tag_includes":   "",
		"tag_excludes":   "",
		"repo":           "https://github.com/puppetlabs",
		"ec2_yaml":       "config/image_templates/ec2.yaml",
		"dot_fog":        "~/.fog",
		"helper":         []string{},
		"load_path":      []string{},
		"tests":          []string{},
		"pre_suite":      []string{},
		"post_suite":     []string{},
		"install":        []string{},
		"modules":        []string{},
		"host_tags":      Options{},
		"ssh": Options{
			"port":          22,
			"forward_agent": true,
			"keys":          []string{"~/.ssh/id_rsa"},
		},
	}
}
