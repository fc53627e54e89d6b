package logsetup

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.RegisterFlags(fs)
	return fs
}

func TestRegisterFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := newFlagSet(&cfg)

	require.NoError(t, fs.Parse([]string{
		"--log-filter=warn,db=debug",
		"--log-ansi=false",
		"--log-stdout",
		"--log-dir=/tmp/x",
		"--log-file=svc.log",
		"--log-rolling=hourly",
		"--log-format=json",
		"--log-with-thread-ids=false",
		"--log-max-backups=4",
	}))

	assert.Equal(t, "warn,db=debug", cfg.FilterLevel)
	assert.False(t, cfg.WithANSI)
	assert.True(t, cfg.ToStdout)
	assert.Equal(t, "/tmp/x", cfg.Directory)
	assert.Equal(t, "svc.log", cfg.FileName)
	assert.Equal(t, RotationHourly, cfg.Rolling)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.False(t, cfg.WithThreadIDs)
	assert.True(t, cfg.WithThreadNames)
	assert.Equal(t, 4, cfg.MaxBackups)
	assert.NoError(t, cfg.Validate())
}

func TestRegisterFlags_DefaultsKept(t *testing.T) {
	cfg := DefaultConfig()
	fs := newFlagSet(&cfg)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, DefaultConfig(), cfg)

	assert.Equal(t, "daily", fs.Lookup("log-rolling").DefValue)
	assert.Equal(t, "pretty", fs.Lookup("log-format").DefValue)
}

func TestRegisterFlags_RejectsUnknownTokens(t *testing.T) {
	cfg := DefaultConfig()
	err := newFlagSet(&cfg).Parse([]string{"--log-rolling=weekly"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rolling")

	cfg = DefaultConfig()
	err = newFlagSet(&cfg).Parse([]string{"--log-format=xml"})
	require.Error(t, err)
	assert.Equal(t, FormatPretty, cfg.Format)
}
