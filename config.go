package logsetup

import (
	"github.com/Station-Manager/utils"
)

// Config holds every logging option. Build one with DefaultConfig or the
// Builder, adjust fields, then pass it to Init.
type Config struct {
	// FilterLevel is a level such as "info" or a scoped expression such as
	// "warn,db=trace". LOG_FILTER overrides it when set and well-formed.
	FilterLevel string `toml:"filter_level" yaml:"filter_level" validate:"required,logfilter"`
	WithANSI    bool   `toml:"with_ansi" yaml:"with_ansi"`
	// ToStdout adds standard output next to the log file; it never replaces it.
	ToStdout  bool     `toml:"to_stdout" yaml:"to_stdout"`
	Directory string   `toml:"directory" yaml:"directory"`
	FileName  string   `toml:"file_name" yaml:"file_name" validate:"required"`
	Rolling   Rotation `toml:"rolling" yaml:"rolling" validate:"oneof=minutely hourly daily never"`
	Format    Format   `toml:"format" yaml:"format" validate:"oneof=pretty compact json full"`

	WithLevel          bool `toml:"with_level" yaml:"with_level"`
	WithTarget         bool `toml:"with_target" yaml:"with_target"`
	WithThreadIDs      bool `toml:"with_thread_ids" yaml:"with_thread_ids"`
	WithThreadNames    bool `toml:"with_thread_names" yaml:"with_thread_names"`
	WithSourceLocation bool `toml:"with_source_location" yaml:"with_source_location"`

	// Target is attached to records logged through the global logger.
	Target string `toml:"target" yaml:"target"`

	// Passed through to lumberjack; zero keeps its defaults.
	MaxSizeMB  int  `toml:"max_size_mb" yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int  `toml:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int  `toml:"max_age_days" yaml:"max_age_days" validate:"gte=0"`
	Compress   bool `toml:"compress" yaml:"compress"`

	// BufferSize is the capacity of the non-blocking file queue, in records.
	BufferSize int `toml:"buffer_size" yaml:"buffer_size" validate:"gte=0"`
}

// DefaultConfig returns info level, colors on, file only output to
// ./logs/my-service.log, daily rotation, pretty format and every field included.
func DefaultConfig() Config {
	cfg := Config{
		FilterLevel:        defaultFilterLevel,
		WithANSI:           true,
		ToStdout:           false,
		Directory:          defaultDirectory,
		FileName:           defaultFileName,
		Rolling:            RotationDaily,
		Format:             FormatPretty,
		WithLevel:          true,
		WithTarget:         true,
		WithThreadIDs:      true,
		WithThreadNames:    true,
		WithSourceLocation: true,
		Target:             defaultTarget,
		BufferSize:         defaultBufferSize,
	}
	if name, err := utils.ExecName(true); err == nil && name != emptyString {
		cfg.Target = name
	}
	return cfg
}

// Validate reports the first invalid option as a *ConfigError.
func (c Config) Validate() error {
	return validateConfig(&c)
}

func (c Config) bufferSize() int {
	if c.BufferSize <= 0 {
		return defaultBufferSize
	}
	return c.BufferSize
}

func (c Config) target() string {
	if c.Target == emptyString {
		return defaultTarget
	}
	return c.Target
}
