package tui

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNewSSHServerUnknownVariant(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Variant = "tetris"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	_, err := NewSSHServer(cfg, nil)
	if err == nil {
		t.Fatal("expected error for unknown variant")
	}
	if !strings.Contains(err.Error(), "tetris") {
		t.Errorf("error %q should name the variant", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.Variant != "snake" {
		t.Errorf("Variant = %q, expected snake", cfg.Variant)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
}
