package logsetup

import (
	"github.com/spf13/pflag"
)

// RegisterFlags binds the options to --log-* flags on fs. Current field values
// become the flag defaults. Rolling and format are rejected while parsing.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.FilterLevel, "log-filter", c.FilterLevel, `log filter, e.g. "info" or "warn,db=debug" (`+EnvFilter+` overrides)`)
	fs.BoolVar(&c.WithANSI, "log-ansi", c.WithANSI, "colorize log output")
	fs.BoolVar(&c.ToStdout, "log-stdout", c.ToStdout, "also write logs to standard output")
	fs.StringVar(&c.Directory, "log-dir", c.Directory, "log file directory")
	fs.StringVar(&c.FileName, "log-file", c.FileName, "log file base name")
	fs.Var(&c.Rolling, "log-rolling", "log rotation: minutely | hourly | daily | never")
	fs.Var(&c.Format, "log-format", "log format: pretty | compact | json | full")
	fs.BoolVar(&c.WithLevel, "log-with-level", c.WithLevel, "include the level")
	fs.BoolVar(&c.WithTarget, "log-with-target", c.WithTarget, "include the target")
	fs.BoolVar(&c.WithThreadIDs, "log-with-thread-ids", c.WithThreadIDs, "include the goroutine id")
	fs.BoolVar(&c.WithThreadNames, "log-with-thread-names", c.WithThreadNames, "include the goroutine name")
	fs.BoolVar(&c.WithSourceLocation, "log-with-source", c.WithSourceLocation, "include file:line of the call site")
	fs.StringVar(&c.Target, "log-target", c.Target, "target attached to records of the global logger")
	fs.IntVar(&c.MaxSizeMB, "log-max-size", c.MaxSizeMB, "max size in MB before a log file is rotated by size")
	fs.IntVar(&c.MaxBackups, "log-max-backups", c.MaxBackups, "max number of size-rotated backups kept")
	fs.IntVar(&c.MaxAgeDays, "log-max-age", c.MaxAgeDays, "max days size-rotated backups are kept")
	fs.BoolVar(&c.Compress, "log-compress", c.Compress, "gzip size-rotated backups")
	fs.IntVar(&c.BufferSize, "log-buffer", c.BufferSize, "records queued for the file writer")
}
