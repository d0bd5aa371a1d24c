package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `app:
  title: "  Staff Directory "
  default_user_name: Taro

export:
  dir: ./exports/

import:
  start_dir: data
  seed_file: data/employees.csv

logging:
  level: debug
  file: /tmp/directory.log
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Title != "Staff Directory" {
		t.Errorf("unexpected title: %q", cfg.App.Title)
	}
	if cfg.App.DefaultUserName != "Taro" {
		t.Errorf("unexpected default user name: %q", cfg.App.DefaultUserName)
	}
	if cfg.Export.Dir != "exports" {
		t.Errorf("expected export dir to be cleaned, got %s", cfg.Export.Dir)
	}
	if cfg.Import.SeedFile != "data/employees.csv" {
		t.Errorf("unexpected seed file: %s", cfg.Import.SeedFile)
	}
	if cfg.Logging.Level != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.Logging.Level)
	}
	if cfg.Logging.File != "/tmp/directory.log" {
		t.Errorf("unexpected log file: %s", cfg.Logging.File)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Title != "Employee Directory" {
		t.Errorf("unexpected default title: %q", cfg.App.Title)
	}
	if cfg.Export.Dir != "." || cfg.Import.StartDir != "." {
		t.Errorf("expected current directory defaults, got %s and %s", cfg.Export.Dir, cfg.Import.StartDir)
	}
	if cfg.Logging.Level != zapcore.InfoLevel || cfg.Logging.File != "directory.log" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, "logging:\n  level: loud\n")); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "app: [")); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestDefault_MatchesEmptyFile(t *testing.T) {
	t.Parallel()

	loaded, err := Load(writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := Default(); *got != *loaded {
		t.Fatalf("expected Default to match an empty config file, got %+v want %+v", *got, *loaded)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	if got := ResolvePath(""); got != DefaultPath {
		t.Fatalf("expected default path, got %s", got)
	}

	t.Setenv("CONFIG_PATH", "from-env.yaml")
	if got := ResolvePath(""); got != "from-env.yaml" {
		t.Fatalf("expected env path, got %s", got)
	}
	if got := ResolvePath("flag.yaml"); got != "flag.yaml" {
		t.Fatalf("expected flag to win, got %s", got)
	}
}
