package logsetup

import (
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// rollingFile switches to a new lumberjack file whenever the rotation period
// of the wall clock changes. lumberjack still applies its size limit, backups
// and compression within a period.
type rollingFile struct {
	mu       sync.Mutex
	dir      string
	base     string
	rotation Rotation
	loc      *time.Location
	cfg      Config
	period   string
	file     *lumberjack.Logger
}

func newRollingFile(cfg Config, loc *time.Location) *rollingFile {
	return &rollingFile{
		dir:      cfg.Directory,
		base:     cfg.FileName,
		rotation: cfg.Rolling,
		loc:      loc,
		cfg:      cfg,
	}
}

// open creates the directory and the current file up front so that path
// errors surface from Init rather than from the first write.
func (w *rollingFile) open() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.rollLocked(now()); err != nil {
		return err
	}
	_, err := w.file.Write(nil)
	return err
}

func (w *rollingFile) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.rollLocked(now()); err != nil {
		return 0, err
	}
	return w.file.Write(p)
}

func (w *rollingFile) rollLocked(t time.Time) error {
	name := w.rotation.fileName(w.base, t.In(w.loc))
	if w.file != nil && name == w.period {
		return nil
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return err
		}
	}
	w.period = name
	w.file = &lumberjack.Logger{
		Filename:   filepath.Join(w.dir, name),
		MaxSize:    w.cfg.MaxSizeMB,
		MaxBackups: w.cfg.MaxBackups,
		MaxAge:     w.cfg.MaxAgeDays,
		Compress:   w.cfg.Compress,
		LocalTime:  true,
	}
	return nil
}

// Filename is the path of the file currently written to.
func (w *rollingFile) Filename() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return filepath.Join(w.dir, w.rotation.fileName(w.base, now().In(w.loc)))
	}
	return w.file.Filename
}

// Close is safe to call more than once.
func (w *rollingFile) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}
