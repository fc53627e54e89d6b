package logsetup

import (
	stderrs "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-yaml"
)

// fileTokens holds the enumerated options as written in a config file, so
// they can be checked before decoding into Config.
type fileTokens struct {
	Rolling string `toml:"rolling" yaml:"rolling"`
	Format  string `toml:"format" yaml:"format"`
}

// LoadConfig reads options from a .toml, .yaml, .yml or .json file. Keys that
// are absent keep their DefaultConfig values. The result is validated.
func LoadConfig(path string) (Config, error) {
	const op errors.Op = "logsetup.LoadConfig"
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.New(op).Err(err).Msg(errMsgReadConfig)
	}

	var decode func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decode = toml.Unmarshal
	case ".yaml", ".yml", ".json":
		decode = yaml.Unmarshal
	default:
		return cfg, errors.New(op).Msg(errMsgUnknownExt + " " + path)
	}

	// The toml decoder flattens UnmarshalText errors into its own ParseError,
	// so unknown rolling and format tokens are reported from here instead.
	var tokens fileTokens
	if decode(data, &tokens) == nil {
		if err = tokens.check(); err != nil {
			return cfg, err
		}
	}

	if err = decode(data, &cfg); err != nil {
		var cerr *ConfigError
		if stderrs.As(err, &cerr) {
			return cfg, cerr
		}
		return cfg, errors.New(op).Err(err).Msg(errMsgReadConfig)
	}

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (t fileTokens) check() error {
	if t.Rolling != emptyString {
		if _, err := ParseRotation(t.Rolling); err != nil {
			return err
		}
	}
	if t.Format != emptyString {
		if _, err := ParseFormat(t.Format); err != nil {
			return err
		}
	}
	return nil
}
