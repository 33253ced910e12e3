package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("http:\n  addr: \":8080\"\nremote:\n  base_url: \"http://localhost:1234/api\"\n  timeout_seconds: 3\norders:\n  history_refresh_delay_ms: 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Remote.BaseURL != "http://localhost:1234/api" {
		t.Fatalf("base url: %s", cfg.Remote.BaseURL)
	}
	if cfg.RemoteTimeout() != 3*time.Second {
		t.Fatalf("timeout: %v", cfg.RemoteTimeout())
	}
	if cfg.HistoryRefreshDelay() != 250*time.Millisecond {
		t.Fatalf("delay: %v", cfg.HistoryRefreshDelay())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9091" || cfg.Remote.TimeoutSeconds != 10 {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("http: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
