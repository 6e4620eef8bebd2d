package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "ws://localhost:5000/ws" {
		t.Fatalf("server url = %q", cfg.Server.URL)
	}
	if cfg.Server.DialTimeout != 10*time.Second {
		t.Fatalf("dial timeout = %v, want 10s", cfg.Server.DialTimeout)
	}
	if cfg.Player.Name != "Player" {
		t.Fatalf("player name = %q, want %q", cfg.Player.Name, "Player")
	}
	if cfg.Log.Path != "" || cfg.Log.Level != "info" {
		t.Fatalf("log config = %+v", cfg.Log)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WORDGRID_SERVER_URL", "ws://game.example:9000/ws")
	t.Setenv("WORDGRID_PLAYER_NAME", "Jask")
	t.Setenv("WORDGRID_SERVER_DIAL_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "ws://game.example:9000/ws" {
		t.Fatalf("server url = %q", cfg.Server.URL)
	}
	if cfg.Player.Name != "Jask" {
		t.Fatalf("player name = %q", cfg.Player.Name)
	}
	if cfg.Server.DialTimeout != 3*time.Second {
		t.Fatalf("dial timeout = %v, want 3s", cfg.Server.DialTimeout)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "wordgrid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	toml := "[server]\nurl = \"ws://lan-host:5000/ws\"\n\n[player]\nname = \"Couch\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "ws://lan-host:5000/ws" {
		t.Fatalf("server url = %q", cfg.Server.URL)
	}
	if cfg.Player.Name != "Couch" {
		t.Fatalf("player name = %q", cfg.Player.Name)
	}
}
