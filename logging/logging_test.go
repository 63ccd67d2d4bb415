package logging

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

// TestScopedFormat tests line layout and level gating
func TestScopedFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug, "core")

	l.Trace("hidden")
	l.Debug("layer pushed", "id", 3, "name", "example")
	l.Error("surface failed")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} DEBUG \[CORE\] layer pushed id=3 name=example$`)
	if !pattern.MatchString(lines[0]) {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "ERROR [CORE] surface failed") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no colour codes for non-terminal writer")
	}
}

// TestScopedEnabled tests threshold and Off handling
func TestScopedEnabled(t *testing.T) {
	l := New(&bytes.Buffer{}, LevelWarn, "app")
	if l.Enabled(LevelInfo) {
		t.Errorf("info should be disabled at warn")
	}
	if !l.Enabled(LevelError) {
		t.Errorf("error should be enabled at warn")
	}

	off := New(&bytes.Buffer{}, LevelOff, "app")
	if off.Enabled(LevelError) {
		t.Errorf("nothing should be enabled at off")
	}
}

// TestTraceLevel tests that trace passes through slog below its debug level
func TestTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelTrace, "core")
	l.Trace("tick")
	if !strings.Contains(buf.String(), "TRACE [CORE] tick") {
		t.Errorf("expected trace line, got %q", buf.String())
	}
}

// TestParseLevel tests level name parsing
func TestParseLevel(t *testing.T) {
	for _, lvl := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelOff} {
		got, err := ParseLevel(strings.ToLower(lvl.String()))
		if err != nil || got != lvl {
			t.Errorf("ParseLevel(%q) = %v, %v", lvl.String(), got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

// TestDefaultsAndInit tests the Nop defaults and single initialization
func TestDefaultsAndInit(t *testing.T) {
	if Core().Enabled(LevelError) || App().Enabled(LevelError) {
		t.Fatalf("defaults should be Nop")
	}

	var first, second bytes.Buffer
	Init(New(&first, LevelInfo, "core"), nil)
	Init(New(&second, LevelInfo, "core"), New(&second, LevelInfo, "app"))

	Core().Log(LevelInfo, "hello")
	App().Log(LevelError, "dropped")

	if !strings.Contains(first.String(), "hello") {
		t.Errorf("first Init should win, got %q", first.String())
	}
	if second.Len() != 0 {
		t.Errorf("second Init should be ignored, got %q", second.String())
	}
}
