package logsetup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock pins now for the duration of a test.
func fakeClock(t *testing.T, start time.Time) *time.Time {
	t.Helper()
	at := start
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
	return &at
}

func TestRotation_FileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 0, 0, time.UTC)
	tests := []struct {
		rotation Rotation
		want     string
	}{
		{RotationMinutely, "my-service.log.2024-03-09-07-05"},
		{RotationHourly, "my-service.log.2024-03-09-07"},
		{RotationDaily, "my-service.log.2024-03-09"},
		{RotationNever, "my-service.log"},
	}
	for _, tt := range tests {
		t.Run(tt.rotation.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rotation.fileName("my-service.log", at))
		})
	}
}

func TestParseRotation(t *testing.T) {
	r, err := ParseRotation("minutely")
	require.NoError(t, err)
	assert.Equal(t, RotationMinutely, r)

	_, err = ParseRotation("monthly")
	assert.ErrorIs(t, err, ErrUnknownRotation)

	var v Rotation
	require.NoError(t, v.UnmarshalText([]byte("never")))
	assert.Equal(t, RotationNever, v)
	assert.Error(t, v.UnmarshalText([]byte("sometimes")))
	assert.Equal(t, RotationNever, v, "failed parse must not clobber the value")
}

func TestRollingFile_SwitchesOnPeriodChange(t *testing.T) {
	clock := fakeClock(t, time.Date(2024, 3, 9, 7, 5, 30, 0, time.UTC))
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	cfg := DefaultConfig()
	cfg.Directory = dir
	cfg.FileName = "app.log"
	cfg.Rolling = RotationMinutely

	w := newRollingFile(cfg, time.UTC)
	require.NoError(t, w.open())
	first := w.Filename()
	assert.Equal(t, filepath.Join(dir, "app.log.2024-03-09-07-05"), first)
	assert.FileExists(t, first, "open must create the directory and file")

	_, err := w.Write([]byte("one\n"))
	require.NoError(t, err)

	*clock = clock.Add(10 * time.Second)
	_, err = w.Write([]byte("two\n"))
	require.NoError(t, err)
	assert.Equal(t, first, w.Filename())

	*clock = clock.Add(time.Minute)
	_, err = w.Write([]byte("three\n"))
	require.NoError(t, err)
	second := w.Filename()
	assert.Equal(t, filepath.Join(dir, "app.log.2024-03-09-07-06"), second)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "three\n", string(data))
}

func TestRollingFile_UsesZone(t *testing.T) {
	// 23:30 UTC is already the next day at +02:00.
	fakeClock(t, time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC))

	cfg := DefaultConfig()
	cfg.Directory = t.TempDir()
	w := newRollingFile(cfg, fixedZone(2*3600))
	require.NoError(t, w.open())
	defer w.Close()

	assert.Equal(t, "my-service.log.2024-03-10", filepath.Base(w.Filename()))
}

func TestRollingFile_Never(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directory = t.TempDir()
	cfg.Rolling = RotationNever

	w := newRollingFile(cfg, time.UTC)
	require.NoError(t, w.open())
	defer w.Close()
	assert.Equal(t, filepath.Join(cfg.Directory, "my-service.log"), w.Filename())
}

func TestRollingFile_OpenFailure(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg := DefaultConfig()
	cfg.Directory = filepath.Join(blocker, "logs")
	w := newRollingFile(cfg, time.UTC)
	assert.Error(t, w.open())
}
