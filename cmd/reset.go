package cmd

import (
	"github.com/spf13/cobra"

	"github.com/multa-cli/multa/config"
	"github.com/multa-cli/multa/log"
	"github.com/multa-cli/multa/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Args:  cobra.NoArgs,
	Short: "Deletes the saved progress of a profile",
	Long: `Deletes the saved progress of a profile. The next practice session starts
over from a fresh deck.`,
	Run: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) {
	st := store.New(config.GetConfig().DataDir)
	if err := st.Remove(profileName); err != nil {
		log.Fatal("Failed to reset profile '%s': %s.\n", profileName, err)
	}
	log.Success("Profile '%s' reset.\n", profileName)
}
