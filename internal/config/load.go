package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/weget/internal/messages"
)

// defaultsSource names the embedded settings document in error messages.
const defaultsSource = "defaults.toml"

//go:embed defaults.toml
var defaultsTOML []byte

// ErrConfigValidation wraps validation failures, as opposed to TOML syntax errors.
var ErrConfigValidation = errors.New("config validation failed")

// Default returns the settings compiled into the binary.
func Default() (*Config, error) {
	return Parse(defaultsTOML, defaultsSource)
}

// Parse decodes and validates a settings document.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes data rejecting keys that toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}
