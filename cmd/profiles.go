package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multa-cli/multa/config"
	"github.com/multa-cli/multa/log"
	"github.com/multa-cli/multa/store"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Args:  cobra.NoArgs,
	Short: "Lists all profiles with saved progress",
	Long:  `Lists all profiles with saved progress.`,
	Run:   runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) {
	st := store.New(config.GetConfig().DataDir)
	profiles, err := st.List()
	if err != nil {
		log.Fatal("Failed to list profiles: %s.\n", err)
	}

	if len(profiles) == 0 {
		log.Log("No saved profiles.\n")
		return
	}
	for _, profile := range profiles {
		fmt.Println(profile)
	}
}
