package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ogurasousui/employee-directory/internal/adapters/employeecsv"
	"github.com/ogurasousui/employee-directory/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-directory/internal/adapters/tui"
	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"github.com/ogurasousui/employee-directory/internal/platform/config"
	"github.com/ogurasousui/employee-directory/internal/platform/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "directory",
	Short: "Terminal employee directory",
	Long: `directory manages an in-memory list of employee records.

Run without arguments to start the interactive screen. Records live only for
the lifetime of the process; use CSV export to keep them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $CONFIG_PATH or "+config.DefaultPath+")")

	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig は設定ファイルを読み込みます。既定のパスにファイルがない場合は既定値を使います。
func loadConfig(flagValue string) (*config.Config, error) {
	path := config.ResolvePath(flagValue)
	loaded, err := config.Load(path)
	if err == nil {
		return loaded, nil
	}
	if flagValue == "" && os.Getenv("CONFIG_PATH") == "" && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, fmt.Errorf("failed to load config: %w", err)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newService は空のストアを作り、seedFile があれば取り込みます。
func newService(ctx context.Context, importer *employeecsv.Importer, seedFile string) (*employee.Service, error) {
	svc := employee.NewService(memory.NewEmployeeRepository(nil))
	if seedFile == "" {
		return svc, nil
	}

	records, err := importer.ReadFile(seedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", seedFile, err)
	}
	res, err := svc.ImportEmployees(ctx, employee.ImportEmployeesInput{Employees: records})
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", seedFile, err)
	}
	logger.Info("seed loaded", zap.String("path", seedFile), zap.Int("count", len(res.Imported)))
	return svc, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	importer := employeecsv.NewImporter(nil)

	svc, err := newService(ctx, importer, cfg.Import.SeedFile)
	if err != nil {
		return err
	}

	model := tui.New(ctx, svc, importer, tui.Options{
		Title:           cfg.App.Title,
		DefaultUserName: cfg.App.DefaultUserName,
		ExportDir:       cfg.Export.Dir,
		ImportDir:       cfg.Import.StartDir,
		Logger:          logger,
	})

	logger.Debug("starting interactive session")
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
