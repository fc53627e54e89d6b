package logsetup

import (
	"testing"

	"github.com/Station-Manager/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.FilterLevel)
	assert.True(t, cfg.WithANSI)
	assert.False(t, cfg.ToStdout)
	assert.Equal(t, "./logs", cfg.Directory)
	assert.Equal(t, "my-service.log", cfg.FileName)
	assert.Equal(t, RotationDaily, cfg.Rolling)
	assert.Equal(t, FormatPretty, cfg.Format)
	assert.True(t, cfg.WithLevel)
	assert.True(t, cfg.WithTarget)
	assert.True(t, cfg.WithThreadIDs)
	assert.True(t, cfg.WithThreadNames)
	assert.True(t, cfg.WithSourceLocation)
	assert.NotEmpty(t, cfg.Target)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_TargetIsExecutableName(t *testing.T) {
	name, err := utils.ExecName(true)
	require.NoError(t, err)
	assert.Equal(t, name, DefaultConfig().Target)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		option  string
		wantErr error
	}{
		{name: "unknown rotation", mutate: func(c *Config) { c.Rolling = "weekly" }, option: "rolling", wantErr: ErrUnknownRotation},
		{name: "empty rotation", mutate: func(c *Config) { c.Rolling = "" }, option: "rolling", wantErr: ErrUnknownRotation},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, option: "format", wantErr: ErrUnknownFormat},
		{name: "empty filter", mutate: func(c *Config) { c.FilterLevel = "" }, option: "filter_level", wantErr: ErrInvalidFilter},
		{name: "bad filter", mutate: func(c *Config) { c.FilterLevel = "loud" }, option: "filter_level", wantErr: ErrInvalidFilter},
		{name: "empty file name", mutate: func(c *Config) { c.FileName = "" }, option: "file_name", wantErr: ErrInvalidOption},
		{name: "negative backups", mutate: func(c *Config) { c.MaxBackups = -1 }, option: "max_backups", wantErr: ErrInvalidOption},
		{name: "negative buffer", mutate: func(c *Config) { c.BufferSize = -5 }, option: "buffer_size", wantErr: ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.option, cerr.Option)
			assert.Contains(t, err.Error(), tt.option)
		})
	}
}

func TestConfig_ScopedFilterIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilterLevel = "mycrate=trace"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	assert.Equal(t, defaultBufferSize, cfg.bufferSize())
	assert.Equal(t, defaultTarget, cfg.target())

	cfg.BufferSize = 10
	cfg.Target = "worker"
	assert.Equal(t, 10, cfg.bufferSize())
	assert.Equal(t, "worker", cfg.target())
}
