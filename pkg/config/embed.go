package config

import (
	_ "embed"
	"errors"
)

// defaultConfig is the built-in configuration, always loaded first so a
// missing or partial user config still yields a usable default policy.
//
//go:embed admit.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
