package logsetup

import (
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

// installation is the state behind the process-wide logger while a Guard is live.
type installation struct {
	base       zerolog.Logger
	filter     Filter
	withTarget bool
}

var (
	active  atomic.Bool
	current atomic.Pointer[installation]

	// stdout is the console destination used when Config.ToStdout is set.
	stdout io.Writer = os.Stdout
)

// Init validates cfg, installs the process-wide logger and returns the Guard
// owning the background file writer. Keep the Guard until shutdown and Close
// it to flush; records still queued when the process exits are lost.
//
// Only one installation may be live at a time. A second Init before the
// previous Guard is closed returns ErrAlreadyInitialized.
func Init(cfg Config) (*Guard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !active.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	g, err := install(cfg)
	if err != nil {
		active.Store(false)
		return nil, err
	}
	return g, nil
}

// MustInit is Init for bootstrap code that cannot continue without logging.
func MustInit(cfg Config) *Guard {
	g, err := Init(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

func install(cfg Config) (*Guard, error) {
	const op errors.Op = "logsetup.Init"

	offset, err := localOffset()
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgLocalOffset)
	}
	loc := fixedZone(offset)

	file := newRollingFile(cfg, loc)
	if err = file.open(); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgOpenAppender)
	}

	filter, expr, err := resolveFilter(cfg.FilterLevel)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	dropped := atomic.NewInt64(0)
	nonBlocking := diode.NewWriter(newRenderer(file, cfg), cfg.bufferSize(), diodePollInterval, func(missed int) {
		dropped.Add(int64(missed))
	})

	var out io.Writer = nonBlocking
	if cfg.ToStdout {
		out = zerolog.MultiLevelWriter(newRenderer(stdout, cfg), nonBlocking)
	}

	base := zerolog.New(out).Hook(timestampHook{loc: loc})
	if cfg.WithThreadIDs || cfg.WithThreadNames {
		base = base.Hook(threadHook{ids: cfg.WithThreadIDs, names: cfg.WithThreadNames})
	}
	if cfg.WithSourceLocation {
		base = base.With().Caller().Logger()
	}

	root := base
	if cfg.WithTarget {
		root = root.With().Str(TargetFieldName, cfg.target()).Logger()
	}
	root = root.Level(filter.LevelFor(cfg.target()))

	g := &Guard{
		writer:  nonBlocking,
		file:    file,
		dropped: dropped,
		filter:  filter,
		expr:    expr,
		prev:    captureGlobals(),
	}

	current.Store(&installation{base: base, filter: filter, withTarget: cfg.WithTarget})
	log.Logger = root
	ctxLogger := root
	zerolog.DefaultContextLogger = &ctxLogger
	stdlog.SetFlags(0)
	stdlog.SetPrefix(emptyString)
	stdlog.SetOutput(stdlogWriter{l: root})

	return g, nil
}

// Target returns a logger for one component. Its records carry target=name
// and are filtered by the directive matching name.
func Target(name string) zerolog.Logger {
	inst := current.Load()
	if inst == nil {
		return log.Logger.With().Str(TargetFieldName, name).Logger()
	}
	l := inst.base
	if inst.withTarget {
		l = l.With().Str(TargetFieldName, name).Logger()
	}
	return l.Level(inst.filter.LevelFor(name))
}

// stdlogWriter forwards the standard library logger at info level.
type stdlogWriter struct {
	l zerolog.Logger
}

// stdlogCallerSkip skips Write, log.(*Logger).output and the log.Print* wrapper.
const stdlogCallerSkip = 3

func (w stdlogWriter) Write(p []byte) (int, error) {
	w.l.Info().CallerSkipFrame(stdlogCallerSkip).Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

type globals struct {
	logger    zerolog.Logger
	ctxLogger *zerolog.Logger
	stdOut    io.Writer
	stdFlags  int
	stdPrefix string
}

func captureGlobals() globals {
	return globals{
		logger:    log.Logger,
		ctxLogger: zerolog.DefaultContextLogger,
		stdOut:    stdlog.Writer(),
		stdFlags:  stdlog.Flags(),
		stdPrefix: stdlog.Prefix(),
	}
}

func (g globals) restore() {
	log.Logger = g.logger
	zerolog.DefaultContextLogger = g.ctxLogger
	stdlog.SetOutput(g.stdOut)
	stdlog.SetFlags(g.stdFlags)
	stdlog.SetPrefix(g.stdPrefix)
}
