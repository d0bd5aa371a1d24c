package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath は CONFIG_PATH が未指定の場合に読み込む設定ファイルです。
const DefaultPath = "assets/local.yaml"

const (
	defaultTitle    = "Employee Directory"
	defaultDir      = "."
	defaultLogLevel = "info"
	defaultLogFile  = "directory.log"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	App     AppConfig     `yaml:"app"`
	Export  ExportConfig  `yaml:"export"`
	Import  ImportConfig  `yaml:"import"`
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig は画面表示に関する設定です。
type AppConfig struct {
	Title string `yaml:"title"`
	// DefaultUserName はログイン画面に初期表示する名前です。
	DefaultUserName string `yaml:"default_user_name"`
}

// ExportConfig は CSV 出力に関する設定です。
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ImportConfig は CSV 取り込みに関する設定です。
type ImportConfig struct {
	StartDir string `yaml:"start_dir"`
	// SeedFile は起動時に読み込む CSV です。空の場合は空の一覧で起動します。
	SeedFile string `yaml:"seed_file"`
}

// LoggingConfig はログ出力に関する設定です。
type LoggingConfig struct {
	Level    zapcore.Level `yaml:"-"`
	LevelRaw string        `yaml:"level"`
	File     string        `yaml:"file"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default は設定ファイルがない場合の既定値を返します。
func Default() *Config {
	return &Config{
		App:    AppConfig{Title: defaultTitle},
		Export: ExportConfig{Dir: defaultDir},
		Import: ImportConfig{StartDir: defaultDir},
		Logging: LoggingConfig{
			Level:    zapcore.InfoLevel,
			LevelRaw: defaultLogLevel,
			File:     defaultLogFile,
		},
	}
}

// ResolvePath は flag、CONFIG_PATH、DefaultPath の順で設定ファイルのパスを決定します。
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return DefaultPath
}

func (c *Config) validateAndNormalize() error {
	c.App.Title = strings.TrimSpace(c.App.Title)
	if c.App.Title == "" {
		c.App.Title = defaultTitle
	}
	c.App.DefaultUserName = strings.TrimSpace(c.App.DefaultUserName)

	if c.Export.Dir == "" {
		c.Export.Dir = defaultDir
	}
	c.Export.Dir = filepath.Clean(c.Export.Dir)

	if c.Import.StartDir == "" {
		c.Import.StartDir = defaultDir
	}
	c.Import.StartDir = filepath.Clean(c.Import.StartDir)

	if err := c.Logging.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (l *LoggingConfig) validateAndNormalize() error {
	raw := strings.TrimSpace(l.LevelRaw)
	if raw == "" {
		raw = defaultLogLevel
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return fmt.Errorf("config: logging.level: %w", err)
	}
	l.Level = level
	l.LevelRaw = raw

	if l.File == "" {
		l.File = defaultLogFile
	}
	return nil
}
