package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestRedactsSecrets(t *testing.T) {
	l, logs := observed()
	l.Info("request",
		"api_key", "plain-secret",
		"x-goog-api-key", "abc",
		"Gemini-API-Key", "s2",
		"model", "gemini-2.5-flash",
	)

	fields := logs.All()[0].ContextMap()
	for _, k := range []string{"api_key", "x-goog-api-key", "Gemini-API-Key"} {
		if fields[k] != "[REDACTED]" {
			t.Errorf("%s leaked: %v", k, fields)
		}
	}
	if fields["model"] != "gemini-2.5-flash" {
		t.Errorf("expected model to pass through, got %v", fields["model"])
	}
}

func TestRedactsKeyShapedValues(t *testing.T) {
	l, logs := observed()
	key := "AIza" + strings.Repeat("x", 35)
	l.Warn("odd field", "value", key)

	if got := logs.All()[0].ContextMap()["value"]; got != "[REDACTED]" {
		t.Errorf("expected key-shaped value redacted, got %v", got)
	}
}

func TestHashesSessionID(t *testing.T) {
	l, logs := observed()
	l.With("session_id", "3f1c").Debug("turn")

	got, _ := logs.All()[0].ContextMap()["session_id"].(string)
	if !strings.HasPrefix(got, "hash:") || len(got) != len("hash:")+12 {
		t.Errorf("expected hashed id, got %q", got)
	}
	if strings.Contains(got, "3f1c") {
		t.Errorf("raw id leaked: %q", got)
	}
}

func TestTruncatesBodies(t *testing.T) {
	l, logs := observed()
	l.Debug("prompt composed", "prompt", strings.Repeat("圆", 300))

	got := logs.All()[0].ContextMap()["prompt"].(string)
	if !strings.HasSuffix(got, "…(+60)") {
		t.Errorf("expected truncation marker, got suffix %q", got[len(got)-10:])
	}
}

func TestOddKeyValues(t *testing.T) {
	l, logs := observed()
	l.Error("dangling", "topic", "ellipse", "orphan")
	if logs.Len() != 1 {
		t.Fatalf("expected one entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["topic"] != "ellipse" || fields["orphan"] != missingValue {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestHashesHyphenatedSessionID(t *testing.T) {
	l, logs := observed()
	l.Info("turn", "Session-ID", "3f1c")
	if got, _ := logs.All()[0].ContextMap()["Session-ID"].(string); !strings.HasPrefix(got, "hash:") {
		t.Errorf("expected hashed id, got %q", got)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conics.log")
	l, err := New("production", path)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("started", "topic", "circle")
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"topic":"circle"`) {
		t.Errorf("expected JSON entry in log file, got %s", data)
	}
}

func TestNop(t *testing.T) {
	Nop().Info("discarded", "api_key", "x")
}
