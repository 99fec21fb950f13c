// internals/cli/seed.go
package cli

import (
	"log"

	"github.com/spf13/cobra"

	database "nutriwell_backend/internals/databases"
	"nutriwell_backend/internals/seeds"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Isi data awal (admin + kategori starter)",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.ConnectDB()
		if err := database.Migrate(database.DB); err != nil {
			return err
		}
		if err := seeds.Run(database.DB); err != nil {
			return err
		}
		log.Println("✅ Seed selesai.")
		return nil
	},
}
