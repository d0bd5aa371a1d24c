// Package logging は zap のロガーを組み立てます。
// 端末は画面描画に使うため、ログはファイルにのみ出力します。
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ogurasousui/employee-directory/internal/platform/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New は設定に従って JSON 形式のファイルロガーを生成します。verbose の場合は Debug レベルにします。
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: create dir %s: %w", dir, err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
