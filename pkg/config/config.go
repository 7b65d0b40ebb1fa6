// Package config loads admission policies from layered configuration:
// embedded defaults, then an optional admit.toml / admit.yaml, then
// ADMIT_-prefixed environment variables, each layer overriding the last.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/admit/pkg/errors"
	"github.com/arthur-debert/admit/pkg/logging"
	"github.com/arthur-debert/admit/pkg/policy"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// ADMIT_POLICIES_TEAM_EXCLUDE maps to policies.team.exclude.
const envPrefix = "ADMIT_"

// configFileNames are tried in order in the working directory when no
// explicit path is given.
var configFileNames = []string{".admit.toml", "admit.toml", "admit.yaml", "admit.yml"}

// Config is the fully loaded configuration.
type Config struct {
	Policies map[string]*policy.Policy
}

// Policy returns the named policy, or nil when it is not defined.
func (c *Config) Policy(name string) *policy.Policy {
	return c.Policies[name]
}

// Load reads configuration from all layers. path may be empty, in which
// case ADMIT_CONFIG and then the working directory are consulted; a
// missing user config is not an error, only an unreadable or unparsable
// one is.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("loaded config file")
	}

	if overrides := envOverrides(); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	cfg := &Config{Policies: make(map[string]*policy.Policy)}

	raw, ok := k.Get("policies").(map[string]interface{})
	if !ok {
		if k.Exists("policies") {
			logger.Error().Interface("value", k.Get("policies")).Msg("policies section is not a table, ignoring")
		}
		return cfg, nil
	}

	for name, section := range raw {
		m, ok := section.(map[string]interface{})
		if !ok {
			logger.Error().Str("policy", name).Interface("value", section).Msg("policy definition is not a table, skipping")
			continue
		}
		cfg.Policies[name] = policy.FromMap(name, m)
	}

	logger.Debug().Int("policyCount", len(cfg.Policies)).Msg("configuration loaded")
	return cfg, nil
}

// findConfigFile returns the ADMIT_CONFIG path when set, otherwise the
// first existing candidate config file in the working directory.
func findConfigFile() string {
	if p := os.Getenv("ADMIT_CONFIG"); p != "" {
		return p
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envOverrides collects ADMIT_-prefixed variables as dotted config keys,
// so ADMIT_POLICIES_TEAM_EXCLUDE overrides policies.team.exclude.
func envOverrides() map[string]interface{} {
	overrides := make(map[string]interface{})
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "ADMIT_CONFIG" {
			continue
		}
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(parts[0], envPrefix)), "_", ".")
		overrides[key] = parts[1]
	}
	return overrides
}

// parserFor picks the koanf parser from the file extension, defaulting to
// TOML.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
