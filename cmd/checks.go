package cmd

import (
	"fmt"

	"github.com/plint-dev/plint/internal"
	"github.com/spf13/cobra"
)

// checksCmd: plint checks
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the built-in checks",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range internal.CheckNames() {
			fmt.Println(name)
		}
	},
}
