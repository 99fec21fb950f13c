// internals/cli/root.go
package cli

import (
	"github.com/spf13/cobra"

	"nutriwell_backend/internals/configs"
)

var rootCmd = &cobra.Command{
	Use:   "nutriwell",
	Short: "Backend situs & dashboard Nutriwell",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configs.LoadEnv()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
