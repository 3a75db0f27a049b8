package commands

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the schema the migrations produce",
	Long: `Run every migration against an in-memory SQLite database and print
the resulting CREATE statements. No configuration or server is needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(verbose))
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}

		var tables []string
		if err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name").Scan(&tables).Error; err != nil {
			return err
		}

		for _, table := range tables {
			var ddl []string
			if err := db.Raw("SELECT sql FROM sqlite_master WHERE tbl_name = ? AND sql IS NOT NULL", table).Scan(&ddl).Error; err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n=== Table: %s ===\n", table)
			for _, stmt := range ddl {
				fmt.Fprintln(cmd.OutOrStdout(), stmt+";")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
