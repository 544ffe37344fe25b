package config

import (
	"os"
	"path"
	"testing"
)

func TestDataDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("MULTA_DATA_DIR", "")

	cfg := loadConfiguration()
	if cfg.DataDir != "/xdg/data/multa" {
		t.Fatalf("unexpected data dir: %s", cfg.DataDir)
	}
}

func TestDataDirEnvOverride(t *testing.T) {
	t.Setenv("MULTA_DATA_DIR", "/somewhere/else")

	cfg := loadConfiguration()
	if cfg.DataDir != "/somewhere/else" {
		t.Fatalf("unexpected data dir: %s", cfg.DataDir)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MULTA_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	configDir := path.Join(dir, "multa")
	if err := os.MkdirAll(configDir, 0775); err != nil {
		t.Fatal(err)
	}
	content := []byte("data_dir: /from/file\n")
	if err := os.WriteFile(path.Join(configDir, "config.yaml"), content, 0664); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfiguration()
	if cfg.DataDir != "/from/file" {
		t.Fatalf("unexpected data dir: %s", cfg.DataDir)
	}
}
