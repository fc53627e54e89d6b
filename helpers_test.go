package logsetup

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testConfig returns defaults pointed at a temp dir, without colors and
// with a fixed target. LOG_FILTER is cleared for the test.
func testConfig(t *testing.T) Config {
	t.Helper()
	t.Setenv(EnvFilter, "")
	cfg := DefaultConfig()
	cfg.Directory = t.TempDir()
	cfg.WithANSI = false
	cfg.Target = "svc"
	return cfg
}

func initForTest(t *testing.T, cfg Config) *Guard {
	t.Helper()
	g, err := Init(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

// closeAndRead releases the guard and returns the lines of the active file.
func closeAndRead(t *testing.T, g *Guard) []string {
	t.Helper()
	require.NoError(t, g.Close())
	data, err := os.ReadFile(g.Filename())
	require.NoError(t, err)
	return splitLines(data)
}

func splitLines(data []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != emptyString {
			lines = append(lines, line)
		}
	}
	return lines
}

type logEntry map[string]any

func decodeLines(t *testing.T, lines []string) []logEntry {
	t.Helper()
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		var e logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		entries = append(entries, e)
	}
	return entries
}

func findEntry(entries []logEntry, msg string) (logEntry, bool) {
	for _, e := range entries {
		if e["message"] == msg {
			return e, true
		}
	}
	return nil, false
}

func countContaining(lines []string, s string) int {
	n := 0
	for _, line := range lines {
		if strings.Contains(line, s) {
			n++
		}
	}
	return n
}
