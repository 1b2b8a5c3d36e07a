package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		c, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c != (Config{}) {
			t.Fatalf("expected zero config, got %+v", c)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		body := "out_dir: models\nprefix: scene\nlog_level: debug\nlog_format: json\nserver_address: 0.0.0.0:9000\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		c, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		want := Config{OutDir: "models", Prefix: "scene", LogLevel: "debug", LogFormat: "json", ServerAddress: "0.0.0.0:9000"}
		if c != want {
			t.Fatalf("got %+v want %+v", c, want)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("out_dir: [unterminated\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected a parse error")
		}
	})
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv(envVoxConfig, "/tmp/custom.yaml")
	if got := configPath(); got != "/tmp/custom.yaml" {
		t.Fatalf("got %q", got)
	}
}
