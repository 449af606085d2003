package cmd

import (
	"github.com/spf13/cobra"
)

var seedDemo bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		store, err := openStore(cmd.Context(), cfg, seedDemo || cfg.SeedDemo, log)
		if err != nil {
			return err
		}
		return store.Close()
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seedDemo, "seed", false, "also create the demo candidate and employer accounts")
	rootCmd.AddCommand(migrateCmd)
}
