package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	log.Info("intake complete", "inmate", "Riddler")
	out := buf.String()
	if !strings.Contains(out, "intake complete") || !strings.Contains(out, "inmate=Riddler") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	log.Info("intake complete", "inmate", "Riddler")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %q", buf.String())
	}
	if entry["msg"] != "intake complete" || entry["inmate"] != "Riddler" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	log.Info("too quiet to hear")
	if buf.Len() != 0 {
		t.Errorf("info logged below warn level: %q", buf.String())
	}
	log.Warn("alarm raised")
	if !strings.Contains(buf.String(), "alarm raised") {
		t.Errorf("warn not logged: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"whisper", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("json not recognized")
	}
	if ParseFormat("text") != FormatText {
		t.Error("text not recognized")
	}
	if ParseFormat("xml") != FormatText {
		t.Error("unknown format should fall back to text")
	}
}
