package commands

import (
	"fmt"

	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the built-in document templates",
	Long: `Insert the built-in document templates that are not already present.

Templates are matched by name and category, so running seed again is safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect()
		if err != nil {
			return err
		}
		defer database.Close(db)

		created, err := database.SeedTemplates(cmd.Context(), db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d document template(s)\n", created)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
