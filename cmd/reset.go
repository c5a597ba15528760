package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/aptiq/internal/store"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all history and adaptive weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, err := resolveDataPath(cmd)
		if err != nil {
			return err
		}

		if !resetYes {
			fmt.Printf("This deletes %s. Re-run with --yes to confirm.\n", dataPath)
			return nil
		}

		if err := store.New(dataPath).Reset(); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
