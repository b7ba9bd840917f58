package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("file", "a.pdf").Msg("processed statement")

	out := buf.String()
	if !strings.Contains(out, `"file":"a.pdf"`) {
		t.Errorf("missing structured field in output: %s", out)
	}
	if !strings.Contains(out, "processed statement") {
		t.Errorf("missing message in output: %s", out)
	}
}

func TestVerboseLevels(t *testing.T) {
	if lvl := New(false).GetLevel(); lvl.String() != "info" {
		t.Errorf("default level = %s, want info", lvl)
	}
	if lvl := New(true).GetLevel(); lvl.String() != "debug" {
		t.Errorf("verbose level = %s, want debug", lvl)
	}
}
