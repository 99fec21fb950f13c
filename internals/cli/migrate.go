// internals/cli/migrate.go
package cli

import (
	"log"

	"github.com/spf13/cobra"

	database "nutriwell_backend/internals/databases"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Jalankan auto-migration seluruh tabel",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.ConnectDB()
		if err := database.Migrate(database.DB); err != nil {
			return err
		}
		log.Println("✅ Migration selesai.")
		return nil
	},
}
