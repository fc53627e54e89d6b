package logsetup

import (
	"time"
)

// Rotation is the schedule on which the active log file is closed and a new
// one opened. The zero value is invalid; use one of the Rotation constants.
type Rotation string

const (
	RotationMinutely Rotation = "minutely"
	RotationHourly   Rotation = "hourly"
	RotationDaily    Rotation = "daily"
	RotationNever    Rotation = "never"
)

// ParseRotation accepts exactly one of the four rotation tokens.
func ParseRotation(s string) (Rotation, error) {
	switch r := Rotation(s); r {
	case RotationMinutely, RotationHourly, RotationDaily, RotationNever:
		return r, nil
	}
	return emptyString, newConfigError("rolling", s, ErrUnknownRotation)
}

// layout is the time layout appended to the base file name, empty for never.
func (r Rotation) layout() string {
	switch r {
	case RotationMinutely:
		return "2006-01-02-15-04"
	case RotationHourly:
		return "2006-01-02-15"
	case RotationDaily:
		return "2006-01-02"
	}
	return emptyString
}

// fileName returns the name of the file active at t.
func (r Rotation) fileName(base string, t time.Time) string {
	layout := r.layout()
	if layout == emptyString {
		return base
	}
	return base + "." + t.Format(layout)
}

func (r Rotation) String() string { return string(r) }

// Set implements pflag.Value.
func (r *Rotation) Set(s string) error {
	v, err := ParseRotation(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Type implements pflag.Value.
func (r *Rotation) Type() string { return "rotation" }

func (r *Rotation) UnmarshalText(text []byte) error { return r.Set(string(text)) }

func (r Rotation) MarshalText() ([]byte, error) { return []byte(r), nil }

// Format selects how records are rendered.
type Format string

const (
	FormatPretty  Format = "pretty"
	FormatCompact Format = "compact"
	FormatJSON    Format = "json"
	FormatFull    Format = "full"
)

// ParseFormat accepts exactly one of the four output style tokens.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPretty, FormatCompact, FormatJSON, FormatFull:
		return f, nil
	}
	return emptyString, newConfigError("format", s, ErrUnknownFormat)
}

func (f Format) String() string { return string(f) }

func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string { return "format" }

func (f *Format) UnmarshalText(text []byte) error { return f.Set(string(text)) }

func (f Format) MarshalText() ([]byte, error) { return []byte(f), nil }
