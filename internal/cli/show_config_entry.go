package tracelens

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/tracelens/tracelens/internal/appconfig"
)

func runShowConfig() {
	file := viper.ConfigFileUsed()
	appconfig.ShowConfig(os.Stdout, file, GetConfig(), fallbackConfig())

	// Viper tolerates values the stricter loader rejects, so re-check the
	// file itself and surface anything that would bite a later run.
	if file == "" {
		return
	}
	if _, err := appconfig.Load(file); err != nil {
		fmt.Printf("\nConfig file validation: %v\n", err)
		return
	}
	fmt.Println("\nConfig file validation: ok")
}

// fallbackConfig mirrors the merged viper state for the rare case where
// PersistentPreRunE has not materialized a snapshot yet.
func fallbackConfig() appconfig.Config {
	return appconfig.Config{
		OutputFormat:      viper.GetString("outputFormat"),
		LongTaskThreshold: viper.GetFloat64("longTaskThreshold"),
		IncludeDetails:    viper.GetBool("includeDetails"),
		ConfidenceLevel:   viper.GetFloat64("confidenceLevel"),
		LogFile:           viper.GetString("logFile"),
		Output:            viper.GetString("output"),
		Debug:             viper.GetBool("debug"),
	}
}
