package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/localnerve/legalaid-api/internal/testutil"
	"github.com/spf13/cobra"
)

var (
	devDBType  string
	devDBImage string
	devDBSeed  bool
)

var devDBCmd = &cobra.Command{
	Use:   "devdb",
	Short: "Run a disposable, migrated database container",
	Long: `Start a database container for local development, apply migrations and
optionally seed the document templates. The connection settings are printed
in .env format. The container is removed on interrupt.

Requires a running Docker daemon.`,
	Example: `  legalaid-admin devdb --type postgres > .env.dev
  legalaid-admin devdb --type mariadb --image mariadb:10.11 --seed=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
		if devDBType != "" {
			os.Setenv("DB_TYPE", devDBType)
		}
		if devDBImage != "" {
			os.Setenv("DB_IMAGE", devDBImage)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		containers, err := testutil.StartDatabase(ctx, nil)
		if err != nil {
			return err
		}
		defer containers.Terminate(nil)

		cfg := containers.Config
		cfg.DBDebug = verbose
		db, err := database.Connect(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to container database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			database.Close(db)
			return err
		}
		if devDBSeed {
			if _, err := database.SeedTemplates(ctx, db); err != nil {
				database.Close(db)
				return err
			}
		}
		database.Close(db)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\n", cfg.DBType, cfg.DBHost, cfg.DBPort)
		fmt.Fprintf(out, "DB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n", cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)
		fmt.Fprintln(cmd.ErrOrStderr(), "Database ready; press Ctrl-C to remove it")

		<-ctx.Done()
		fmt.Fprintln(cmd.ErrOrStderr(), "Terminating database container")
		return nil
	},
}

func init() {
	devDBCmd.Flags().StringVar(&devDBType, "type", "", "postgres, mysql or mariadb (default from DB_TYPE, else postgres)")
	devDBCmd.Flags().StringVar(&devDBImage, "image", "", "Container image (default from DB_IMAGE)")
	devDBCmd.Flags().BoolVar(&devDBSeed, "seed", true, "Seed the built-in document templates")
	rootCmd.AddCommand(devDBCmd)
}
