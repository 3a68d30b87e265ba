package logs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEvent_WritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Event("save.success", map[string]any{"file": "a.txt", "lines": 3})
	l.Event("run.end", nil)

	out := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(out), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out[0]), &rec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec["event"] != "save.success" || rec["file"] != "a.txt" || rec["lines"] != float64(3) {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["time"] != "2024-01-02T03:04:05Z" {
		t.Fatalf("unexpected time: %v", rec["time"])
	}
}

func TestDisabledAndNilLoggerAreNoops(t *testing.T) {
	var nilLogger *Logger
	nilLogger.Event("x", nil)
	nilLogger.Close()
	if nilLogger.Enabled() {
		t.Fatalf("nil logger must not be enabled")
	}
	l := &Logger{}
	l.Event("x", map[string]any{"a": 1})
	l.Close()
}

func TestNewFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ste.log")
	t.Setenv("STE_LOG", "")
	t.Setenv("STE_LOG_FILE", "")
	if NewFromEnv().Enabled() {
		t.Fatalf("expected disabled logger without env")
	}

	t.Setenv("STE_LOG_FILE", path)
	l := NewFromEnv()
	if !l.Enabled() {
		t.Fatalf("expected enabled logger with STE_LOG_FILE")
	}
	l.Event("run.start", map[string]any{"file": "x"})
	l.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"event":"run.start"`) {
		t.Fatalf("expected run.start event, got %q", data)
	}
}

func TestFromLookup(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		env     map[string]string
		enabled bool
	}{
		{"unset", nil, false},
		{"zero", map[string]string{EnvEnable: "0"}, false},
		{"false", map[string]string{EnvEnable: "false"}, false},
		{"file wins", map[string]string{EnvEnable: "0", EnvFile: filepath.Join(dir, "a.log")}, true},
		{"unwritable file", map[string]string{EnvFile: filepath.Join(dir, "missing", "a.log")}, false},
	}
	for _, c := range cases {
		l := fromLookup(func(k string) string { return c.env[k] })
		if l.Enabled() != c.enabled {
			t.Fatalf("%s: expected enabled=%v", c.name, c.enabled)
		}
		l.Close()
	}
}
