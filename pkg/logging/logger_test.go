package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewLogger_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("expected default level to be info, got %s", cfg.Level)
	}
	if cfg.ServiceName != "digest" {
		t.Errorf("expected default service name to be 'digest', got %s", cfg.ServiceName)
	}
	if cfg.JSONFormat {
		t.Error("expected default JSONFormat to be false")
	}
}

func TestNewLogger_NilConfig(t *testing.T) {
	log := NewLogger(nil)
	if log == nil {
		t.Error("expected non-nil logger with nil config")
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &Config{
		Level:       LevelDebug,
		ServiceName: "test-service",
		JSONFormat:  true,
		Output:      buf,
	}

	log := NewLogger(cfg)
	log.Info("test message", F("key", "value"))

	// Parse the JSON output
	var output map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if output["message"] != "test message" {
		t.Errorf("expected message 'test message', got %v", output["message"])
	}
	if output["service_name"] != "test-service" {
		t.Errorf("expected service_name 'test-service', got %v", output["service_name"])
	}
	if output["key"] != "value" {
		t.Errorf("expected key 'value', got %v", output["key"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := &Config{
		Level:      LevelWarn,
		JSONFormat: true,
		Output:     buf,
	}

	log := NewLogger(cfg)
	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message should be logged at warn level")
	}
}

func TestLogger_FieldTypes(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(&Config{Level: LevelDebug, JSONFormat: true, Output: buf})

	log.Info("typed fields",
		F("str", "s"),
		F("int", 42),
		F("int64", int64(7)),
		F("float", 0.85),
		F("bool", true),
		F("dur", 2*time.Second),
		Err(errors.New("boom")),
	)

	var output map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if output["str"] != "s" {
		t.Errorf("expected str field 's', got %v", output["str"])
	}
	if output["int"] != float64(42) {
		t.Errorf("expected int field 42, got %v", output["int"])
	}
	if output["float"] != 0.85 {
		t.Errorf("expected float field 0.85, got %v", output["float"])
	}
	if output["bool"] != true {
		t.Errorf("expected bool field true, got %v", output["bool"])
	}
	if output["error"] != "boom" {
		t.Errorf("expected error field 'boom', got %v", output["error"])
	}
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLogger(&Config{Level: LevelDebug, JSONFormat: true, Output: buf})

	child := log.With(F("run_id", "abc-123"))
	child.Info("stage complete")

	var output map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if output["run_id"] != "abc-123" {
		t.Errorf("expected run_id 'abc-123', got %v", output["run_id"])
	}
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	// Must not panic or emit anything.
	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")
}
