// internal/cli/root.go

// Package tracelens wires the cobra command tree for the trace analysis
// CLI and materializes the merged file/flag configuration.
package tracelens

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tracelens/tracelens/internal/appconfig"
	"github.com/tracelens/tracelens/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "tracelens",
	Short: "tracelens — batch analyzer for Chrome DevTools performance traces",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		for key, name := range map[string]string{"includeDetails": "details", "debug": "debug"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatBool(viper.GetBool(key)))
			}
		}
		if !cmd.Flags().Changed("format") {
			_ = cmd.Flags().Set("format", viper.GetString("outputFormat"))
		}
		if !cmd.Flags().Changed("threshold") {
			_ = cmd.Flags().Set("threshold", strconv.FormatFloat(viper.GetFloat64("longTaskThreshold"), 'f', -1, 64))
		}
		if !cmd.Flags().Changed("output") {
			_ = cmd.Flags().Set("output", viper.GetString("output"))
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if !appconfig.IsValidFormat(cfg.Format()) {
			return fmt.Errorf("unknown output format %q (valid formats: %s)", cfg.OutputFormat, strings.Join(appconfig.Formats(), ", "))
		}
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("unable to initialize logging: %w", err)
		}
		if cfg.Debug {
			pp.Fprintln(os.Stderr, cfg)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(func() { _ = logging.Close() })

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringP("format", "f", "console", "report format: console, json, or csv")
	rootCmd.PersistentFlags().Float64P("threshold", "t", appconfig.DefaultLongTaskThreshold, "long task threshold in milliseconds")
	rootCmd.PersistentFlags().BoolP("details", "d", false, "include per-event listings in console reports")
	rootCmd.PersistentFlags().StringP("output", "o", "", "write json or csv reports to this file instead of stdout")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("outputFormat", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("longTaskThreshold", rootCmd.PersistentFlags().Lookup("threshold"))
	_ = viper.BindPFlag("includeDetails", rootCmd.PersistentFlags().Lookup("details"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(resolveConfigPath(cfgFile))
	}
}

// resolveConfigPath keeps the legacy root-level config.json working when
// the default path has not been created.
func resolveConfigPath(path string) string {
	if path != appconfig.DefaultConfigPath {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if _, err := os.Stat(appconfig.LegacyConfigPath); err == nil {
		return appconfig.LegacyConfigPath
	}
	return path
}

// ensureConfigLoaded reads the config and sets safe defaults. A missing
// config file is fine; defaults and flags cover every setting.
func ensureConfigLoaded() error {
	viper.SetDefault("outputFormat", "console")
	viper.SetDefault("longTaskThreshold", appconfig.DefaultLongTaskThreshold)
	viper.SetDefault("includeDetails", false)
	viper.SetDefault("confidenceLevel", appconfig.DefaultConfidenceLevel)
	viper.SetDefault("logFile", appconfig.DefaultLogFile)
	viper.SetDefault("debug", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the merged application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}
