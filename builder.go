package logsetup

// Builder accumulates options through chained setters. Every setter returns
// an updated copy. FilterLevel, Rolling and Format are checked when called;
// the first rejected value is kept and returned by Err, Config and Init.
//
//	guard, err := logsetup.Build().
//		FilterLevel("info").
//		ToStdout(true).
//		Rolling("hourly").
//		Format("json").
//		Init()
type Builder struct {
	cfg Config
	err error
}

// Build starts from DefaultConfig.
func Build() Builder {
	return Builder{cfg: DefaultConfig()}
}

// FromConfig starts from an existing Config, for example one loaded with LoadConfig.
func FromConfig(cfg Config) Builder {
	return Builder{cfg: cfg}
}

func (b Builder) fail(err error) Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// FilterLevel accepts "info" style levels and scoped expressions such as
// "mycrate=trace". LOG_FILTER still takes precedence at Init time.
func (b Builder) FilterLevel(expr string) Builder {
	if _, err := ParseFilter(expr); err != nil {
		return b.fail(err)
	}
	b.cfg.FilterLevel = expr
	return b
}

// WithANSI turns colored output on or off.
func (b Builder) WithANSI(on bool) Builder {
	b.cfg.WithANSI = on
	return b
}

// ToStdout also writes every record to standard output.
func (b Builder) ToStdout(on bool) Builder {
	b.cfg.ToStdout = on
	return b
}

func (b Builder) Directory(dir string) Builder {
	b.cfg.Directory = dir
	return b
}

func (b Builder) FileName(name string) Builder {
	b.cfg.FileName = name
	return b
}

// Rolling takes minutely, hourly, daily or never.
func (b Builder) Rolling(rolling string) Builder {
	r, err := ParseRotation(rolling)
	if err != nil {
		return b.fail(err)
	}
	b.cfg.Rolling = r
	return b
}

// Format takes pretty, compact, json or full.
func (b Builder) Format(format string) Builder {
	f, err := ParseFormat(format)
	if err != nil {
		return b.fail(err)
	}
	b.cfg.Format = f
	return b
}

func (b Builder) WithLevel(on bool) Builder {
	b.cfg.WithLevel = on
	return b
}

func (b Builder) WithTarget(on bool) Builder {
	b.cfg.WithTarget = on
	return b
}

func (b Builder) WithThreadIDs(on bool) Builder {
	b.cfg.WithThreadIDs = on
	return b
}

func (b Builder) WithThreadNames(on bool) Builder {
	b.cfg.WithThreadNames = on
	return b
}

func (b Builder) WithSourceLocation(on bool) Builder {
	b.cfg.WithSourceLocation = on
	return b
}

func (b Builder) Target(name string) Builder {
	b.cfg.Target = name
	return b
}

func (b Builder) MaxSizeMB(mb int) Builder {
	b.cfg.MaxSizeMB = mb
	return b
}

func (b Builder) MaxBackups(n int) Builder {
	b.cfg.MaxBackups = n
	return b
}

func (b Builder) MaxAgeDays(days int) Builder {
	b.cfg.MaxAgeDays = days
	return b
}

func (b Builder) Compress(on bool) Builder {
	b.cfg.Compress = on
	return b
}

func (b Builder) BufferSize(records int) Builder {
	b.cfg.BufferSize = records
	return b
}

// Err returns the first rejected option, if any.
func (b Builder) Err() error {
	return b.err
}

// Config returns the accumulated options after validating them.
func (b Builder) Config() (Config, error) {
	if b.err != nil {
		return b.cfg, b.err
	}
	return b.cfg, b.cfg.Validate()
}

// Init installs the global logger; see Init.
func (b Builder) Init() (*Guard, error) {
	cfg, err := b.Config()
	if err != nil {
		return nil, err
	}
	return Init(cfg)
}

// MustInit panics instead of returning an error.
func (b Builder) MustInit() *Guard {
	g, err := b.Init()
	if err != nil {
		panic(err)
	}
	return g
}
