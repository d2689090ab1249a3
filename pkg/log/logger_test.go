package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Notice("visible notice")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("Expected debug and info to be filtered, got %q", output)
	}
	if !strings.Contains(output, "visible notice") {
		t.Errorf("Expected notice in output, got %q", output)
	}
	if !strings.Contains(output, "[test]") {
		t.Errorf("Expected module name in output, got %q", output)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("shown %d", 42)
	if !strings.Contains(buf.String(), "shown 42") {
		t.Errorf("Expected debug output after raising verbosity, got %q", buf.String())
	}
}

func TestSetSink_KeepsLevel(t *testing.T) {
	SetLevel(Warning)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	if CurrentLevel() != Warning {
		t.Errorf("Expected level to survive a sink change, got %v", CurrentLevel())
	}

	New("test").Notice("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected notice to be filtered at warning level, got %q", buf.String())
	}
}
