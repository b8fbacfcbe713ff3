package cmd

import (
	"fmt"
	"os"

	"github.com/plint-dev/plint/internal"
	tt "github.com/plint-dev/plint/internal/types"
	"github.com/plint-dev/plint/lint"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// initCmd: plint init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		path := cfgFile
		if path == "" {
			path = ".plint.yaml"
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = ".plint.yaml"
	}

	config := lint.DefaultConfig()
	for _, name := range internal.CheckNames() {
		config.Checks[name] = tt.ConfigCheck{Severity: tt.SeverityWarning}
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
