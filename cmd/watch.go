package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/plint-dev/plint/lint"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd: plint watch
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-lint files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths to watch")
			os.Exit(1)
		}

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}
		if err := engine.EnableWatch(args); err != nil {
			logger.Fatal("Failed to enable watch mode", zap.Error(err))
		}
		if err := engine.StartWatching(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer engine.StopWatching()

		fmt.Println("watching for changes, press Ctrl-C to stop")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}
