package config

// FileConfig mirrors the on-disk TOML layout. It is used when generating a
// starter configuration; loading goes through koanf instead so malformed
// sections can degrade per-field.
type FileConfig struct {
	Policies map[string]PolicySpec `toml:"policies"`
}

// PolicySpec is one policy section as written to disk.
type PolicySpec struct {
	Whitelist []string `toml:"whitelist"`
	Blacklist []string `toml:"blacklist"`
	Include   string   `toml:"include,omitempty"`
	Exclude   string   `toml:"exclude,omitempty"`
}

// Starter returns an example configuration demonstrating each pattern
// mode: globs and regexes in whitelist/blacklist sets, and a glob include
// with an E@ regex exclude for path filtering.
func Starter() FileConfig {
	return FileConfig{
		Policies: map[string]PolicySpec{
			"default": {
				Whitelist: []string{},
				Blacklist: []string{},
			},
			"minions": {
				Whitelist: []string{"web*", "db0[1-5]", "ldap-[0-9]+"},
				Blacklist: []string{"*-staging"},
			},
			"paths": {
				Include: "/etc/*",
				Exclude: "E@secret",
			},
		},
	}
}
