package commands

import (
	"encoding/json"
	"fmt"

	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/localnerve/legalaid-api/internal/services"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the database and identity provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := connect()
		if err != nil {
			return err
		}
		defer database.Close(db)

		result := services.HealthCheck(cmd.Context(), cfg, db)
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))

		if result.Status != "healthy" {
			return fmt.Errorf("service is %s", result.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
