package logsetup

import (
	"bytes"
	"context"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"
)

type threadNameKey struct{}

// WithThreadName names the current unit of work. Records logged with
// .Ctx(ctx) carry the name in the thread_name field.
func WithThreadName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, threadNameKey{}, name)
}

// ThreadName returns the name stored by WithThreadName.
func ThreadName(ctx context.Context) (string, bool) {
	if ctx == nil {
		return emptyString, false
	}
	name, ok := ctx.Value(threadNameKey{}).(string)
	return name, ok && name != emptyString
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the id from the first line of the current stack,
// "goroutine 18 [running]:". It returns 0 if the line is not recognised.
func goroutineID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// threadHook attaches the goroutine id and name, each behind its own flag.
type threadHook struct {
	ids   bool
	names bool
}

func (h threadHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	id := goroutineID()
	if h.names {
		if name, ok := ThreadName(e.GetCtx()); ok {
			e.Str(ThreadNameFieldName, name)
		} else if id == 1 {
			e.Str(ThreadNameFieldName, "main")
		}
	}
	if h.ids {
		e.Uint64(ThreadIDFieldName, id)
	}
}
