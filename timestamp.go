package logsetup

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const maxOffsetSeconds = 24 * 60 * 60

// now is the clock behind timestamps and rotation periods. localOffset is the
// only source of the UTC offset Init pins; tests swap it to exercise the
// failure path.
var (
	now         = time.Now
	localOffset = func() (int, error) { return offsetIn(time.Local) }
)

// offsetIn returns the UTC offset of loc at this instant, in seconds.
func offsetIn(loc *time.Location) (int, error) {
	_, offset := now().In(loc).Zone()
	if offset <= -maxOffsetSeconds || offset >= maxOffsetSeconds {
		return 0, fmt.Errorf("local offset %ds out of range", offset)
	}
	return offset, nil
}

// fixedZone pins offset for the lifetime of the sink; later DST changes are
// not followed.
func fixedZone(offset int) *time.Location {
	sign := '+'
	abs := offset
	if offset < 0 {
		sign = '-'
		abs = -offset
	}
	name := fmt.Sprintf("%c%02d:%02d", sign, abs/3600, (abs%3600)/60)
	return time.FixedZone(name, offset)
}

// timestampHook stamps every record with the wall clock in a fixed zone.
type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(zerolog.TimestampFieldName, now().In(h.loc).Format(TimestampLayout))
}
