package main

import (
	"fmt"
	"os"

	"oceanguard/cmd/oceanguard/app"
	"oceanguard/internal/config"
	"oceanguard/internal/logging"
	"oceanguard/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	userName   string

	// Logger
	logger *zap.Logger

	// Effective configuration, loaded before every command
	appConfig *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "oceanguard",
	Short: "OceanGuard - track your ocean cleanup and share it with friends",
	Long: `OceanGuard records the trash you collect and the calcium bicarbonate you
add to the sea, awards EcoCoins for both, and estimates the CO2 your work
neutralizes. Add friends, see where they are, and post updates to your feed.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init must work even when the existing file is broken.
		if cmd != configInitCmd {
			if err := loadConfig(); err != nil {
				return err
			}
		}

		// The TUI owns the terminal; only headless commands log to stderr.
		if !cmd.HasParent() {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .oceanguard/config.yaml)")
	rootCmd.Flags().StringVarP(&userName, "name", "n", "", "Your name (skips the welcome screen)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, validates it and starts file logging.
func loadConfig() error {
	path := resolveConfigPath()
	_, statErr := os.Stat(path)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	workspace, err := config.FindWorkspaceRoot()
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if err := logging.Initialize(cfg.LogsDir(workspace), cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.BootDebug("Workspace root: %s", workspace)
	if os.IsNotExist(statErr) {
		logging.BootWarn("No config at %s, using defaults", path)
	} else {
		logging.Boot("Config loaded from %s", path)
	}

	appConfig = cfg
	return nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// runInteractive launches the terminal UI.
func runInteractive(cmd *cobra.Command, args []string) error {
	sess := session.New(session.ConfigFrom(appConfig))
	if userName != "" {
		if err := sess.Start(userName); err != nil {
			return fmt.Errorf("invalid --name: %w", err)
		}
	}

	timer := logging.StartTimer(logging.CategoryUI, "interactive session")
	defer timer.Stop()

	if err := app.Run(sess, app.Options{Config: appConfig}); err != nil {
		logging.Get(logging.CategoryUI).Error("Interactive session %s failed: %v", sess.ID(), err)
		return err
	}
	return nil
}
