package logsetup

import (
	"sort"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog"
)

// Directive sets the minimum level for one target and everything nested under it.
type Directive struct {
	Target string
	Level  zerolog.Level
}

// Filter is a parsed filter expression such as "info" or "warn,db=debug,http/api=trace".
type Filter struct {
	Default    zerolog.Level
	Directives []Directive
}

// ParseFilter parses a comma separated list of directives. Each directive is
// either a bare level, which becomes the default, or target=level. Levels are
// trace, debug, info, warn, error and off. Without a bare level the default is error.
func ParseFilter(expr string) (Filter, error) {
	f := Filter{Default: zerolog.ErrorLevel}
	seen := 0
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == emptyString {
			continue
		}
		seen++
		target, level, scoped := strings.Cut(part, "=")
		if !scoped {
			lvl, err := parseLevel(part)
			if err != nil {
				return Filter{}, newConfigError("filter_level", expr, ErrInvalidFilter)
			}
			f.Default = lvl
			continue
		}
		target = strings.TrimSpace(target)
		lvl, err := parseLevel(strings.TrimSpace(level))
		if target == emptyString || err != nil {
			return Filter{}, newConfigError("filter_level", expr, ErrInvalidFilter)
		}
		f.Directives = append(f.Directives, Directive{Target: target, Level: lvl})
	}

	if seen == 0 {
		return Filter{}, newConfigError("filter_level", expr, ErrInvalidFilter)
	}

	// Longest target first; LevelFor stops at the first match.
	sort.SliceStable(f.Directives, func(i, j int) bool {
		return len(f.Directives[i].Target) > len(f.Directives[j].Target)
	})
	return f, nil
}

// LevelFor returns the minimum level for target.
func (f Filter) LevelFor(target string) zerolog.Level {
	for _, d := range f.Directives {
		if matchTarget(d.Target, target) {
			return d.Level
		}
	}
	return f.Default
}

func (f Filter) String() string {
	parts := make([]string, 0, len(f.Directives)+1)
	parts = append(parts, levelName(f.Default))
	for _, d := range f.Directives {
		parts = append(parts, d.Target+"="+levelName(d.Level))
	}
	return strings.Join(parts, ",")
}

func matchTarget(prefix, target string) bool {
	if !strings.HasPrefix(target, prefix) {
		return false
	}
	if len(target) == len(prefix) {
		return true
	}
	switch target[len(prefix)] {
	case '/', '.':
		return true
	}
	return false
}

// parseLevel accepts the filter level vocabulary only; zerolog.ParseLevel alone
// would also let "fatal", "panic" and the empty string through.
func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "off":
		return zerolog.Disabled, nil
	case "trace", "debug", "info", "warn", "error":
		return zerolog.ParseLevel(strings.ToLower(level))
	}
	return zerolog.NoLevel, ErrInvalidFilter
}

func levelName(l zerolog.Level) string {
	if l == zerolog.Disabled {
		return "off"
	}
	return l.String()
}

type filterEnv struct {
	Filter string `env:"LOG_FILTER"`
}

// resolveFilter prefers a well-formed LOG_FILTER over the configured
// expression. The returned string is the expression that was used.
func resolveFilter(configured string) (Filter, string, error) {
	var fe filterEnv
	if err := env.Parse(&fe); err == nil && fe.Filter != emptyString {
		if f, perr := ParseFilter(fe.Filter); perr == nil {
			return f, fe.Filter, nil
		}
	}
	f, err := ParseFilter(configured)
	return f, configured, err
}
