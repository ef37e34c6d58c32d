package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetIgnoredCmd = &cobra.Command{
	Use:   "reset-ignored",
	Short: "Clear the ignored-tracks list",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openIgnoreStore()
		if err != nil {
			return err
		}
		n := len(store.Paths())
		if err := store.Reset(); err != nil {
			return fmt.Errorf("failed to reset ignored tracks: %w", err)
		}
		fmt.Printf("Cleared %d ignored track(s).\n", n)
		return nil
	},
}
