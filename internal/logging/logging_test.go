package logging

import "testing"

func TestInitializeConsole(t *testing.T) {
	// Smoke test: should not error or panic.
	cfg := DefaultConfig()
	if err := Initialize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Info("console logger initialized")
}

func TestInitializeJSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = "debug"
	if err := Initialize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Debug("json logger initialized")
}

func TestInitializeBadLevelFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "chatty"
	if err := Initialize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
