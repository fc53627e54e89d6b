package logsetup

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35
	colorCyan    = 36
	colorBold    = 1
	colorDim     = 2

	prettyIndent = "\n    "
)

// newRenderer wraps out so that zerolog's JSON records are rendered in the
// configured style. JSON records pass through untouched unless the level is
// excluded.
func newRenderer(out io.Writer, cfg Config) io.Writer {
	if cfg.Format == FormatJSON {
		if !cfg.WithLevel {
			return levelStripWriter{w: out}
		}
		return out
	}
	return newConsoleWriter(out, cfg)
}

func newConsoleWriter(out io.Writer, cfg Config) zerolog.ConsoleWriter {
	noColor := !cfg.WithANSI
	cw := zerolog.ConsoleWriter{
		Out:              lineTrimWriter{w: out},
		NoColor:          noColor,
		FormatTimestamp:  formatTimestamp(noColor),
		FormatFieldValue: formatValue,
		FieldsExclude:    []string{TargetFieldName},
	}

	switch cfg.Format {
	case FormatPretty:
		cw.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			TargetFieldName,
			zerolog.MessageFieldName,
			zerolog.CallerFieldName,
		}
		cw.FormatLevel = formatLevel(noColor, false)
		cw.FormatMessage = formatMessage(noColor)
		cw.FormatCaller = func(i interface{}) string {
			if c := formatValue(i); c != emptyString {
				return prettyIndent + colorize("at", colorDim, noColor) + " " + c
			}
			return emptyString
		}
		cw.FormatFieldName = func(i interface{}) string {
			return prettyIndent + colorize(fmt.Sprint(i)+":", colorDim, noColor) + " "
		}
	case FormatCompact:
		cw.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			ThreadNameFieldName,
			ThreadIDFieldName,
			TargetFieldName,
			zerolog.MessageFieldName,
			zerolog.CallerFieldName,
		}
		cw.FieldsExclude = append(cw.FieldsExclude, ThreadNameFieldName, ThreadIDFieldName)
		cw.FormatLevel = formatLevel(noColor, true)
		cw.FormatCaller = func(i interface{}) string {
			if c := formatValue(i); c != emptyString {
				return colorize(filepath.Base(c), colorDim, noColor)
			}
			return emptyString
		}
		cw.FormatFieldName = func(i interface{}) string {
			return colorize(fmt.Sprint(i)+"=", colorDim, noColor)
		}
	case FormatFull:
		cw.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			ThreadNameFieldName,
			ThreadIDFieldName,
			TargetFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
		cw.FieldsExclude = append(cw.FieldsExclude, ThreadNameFieldName, ThreadIDFieldName)
		cw.FormatLevel = formatLevel(noColor, false)
		cw.FormatCaller = func(i interface{}) string {
			if c := formatValue(i); c != emptyString {
				return colorize(c+":", colorDim, noColor)
			}
			return emptyString
		}
		cw.FormatFieldName = func(i interface{}) string {
			return colorize(fmt.Sprint(i)+"=", colorDim, noColor)
		}
	}

	if !cfg.WithLevel {
		cw.PartsExclude = append(cw.PartsExclude, zerolog.LevelFieldName)
	}
	return cw
}

func formatValue(i interface{}) string {
	if i == nil {
		return emptyString
	}
	return fmt.Sprint(i)
}

func formatTimestamp(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		return colorize(formatValue(i), colorDim, noColor)
	}
}

func formatMessage(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		return colorize(formatValue(i), colorBold, noColor)
	}
}

// formatLevel renders "INFO " style levels, or "INF" when short is set.
func formatLevel(noColor, short bool) zerolog.Formatter {
	return func(i interface{}) string {
		name, ok := i.(string)
		if !ok || name == emptyString {
			return emptyString
		}
		lvl, err := zerolog.ParseLevel(name)
		if err != nil {
			return strings.ToUpper(name)
		}
		var text string
		if short {
			text = shortLevels[lvl]
		}
		if text == emptyString {
			text = fmt.Sprintf("%-5s", strings.ToUpper(lvl.String()))
		}
		return colorize(text, levelColor(lvl), noColor)
	}
}

var shortLevels = map[zerolog.Level]string{
	zerolog.TraceLevel: "TRC",
	zerolog.DebugLevel: "DBG",
	zerolog.InfoLevel:  "INF",
	zerolog.WarnLevel:  "WRN",
	zerolog.ErrorLevel: "ERR",
	zerolog.FatalLevel: "FTL",
	zerolog.PanicLevel: "PNC",
}

func levelColor(lvl zerolog.Level) int {
	switch lvl {
	case zerolog.TraceLevel:
		return colorMagenta
	case zerolog.DebugLevel:
		return colorBlue
	case zerolog.InfoLevel:
		return colorGreen
	case zerolog.WarnLevel:
		return colorYellow
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return colorRed
	}
	return colorCyan
}

func colorize(s string, c int, disabled bool) string {
	if disabled || s == emptyString {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
}

// lineTrimWriter removes the blanks ConsoleWriter leaves at the end of a line
// when a part that starts a new line, or the last part, follows a separator.
// ConsoleWriter hands over one complete record per Write.
type lineTrimWriter struct {
	w io.Writer
}

var (
	newline       = []byte("\n")
	trailingBlank = []byte(" \n")
)

func (t lineTrimWriter) Write(p []byte) (int, error) {
	if !bytes.Contains(p, trailingBlank) {
		return t.w.Write(p)
	}
	lines := bytes.Split(p, newline)
	for i := range lines {
		lines[i] = bytes.TrimRight(lines[i], " ")
	}
	if _, err := t.w.Write(bytes.Join(lines, newline)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// levelStripWriter drops the leading level key zerolog writes first in every
// JSON record: {"level":"info",... becomes {...
type levelStripWriter struct {
	w io.Writer
}

var levelKeyPrefix = []byte(`{"` + zerolog.LevelFieldName + `":"`)

func (s levelStripWriter) Write(p []byte) (int, error) {
	if !bytes.HasPrefix(p, levelKeyPrefix) {
		return s.w.Write(p)
	}
	rest := p[len(levelKeyPrefix):]
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		return s.w.Write(p)
	}
	rest = rest[end+1:]

	out := make([]byte, 0, len(rest)+1)
	out = append(out, '{')
	out = append(out, bytes.TrimPrefix(rest, []byte(","))...)
	if _, err := s.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
