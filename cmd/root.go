package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/multa-cli/multa/log"
)

var profileName string
var examination bool

var rootCmd = &cobra.Command{
	Use:   "multa",
	Short: "A multiplication tables trainer",
	Long: `multa drills the multiplication tables for factors 2 through 9. Cards
come up according to a spaced repetition schedule, and progress is stored per
profile so a session can be picked up where it left off.

Running multa without a subcommand starts a practice session.`,
	Args: cobra.NoArgs,
	Run:  runRoot,
}

func runRoot(cmd *cobra.Command, args []string) {
	if examination {
		runExam(cmd, args)
		return
	}
	runPractice(cmd, args)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "default", "Profile holding the saved progress")
	rootCmd.Flags().BoolVarP(&examination, "examination", "e", false, "Run an examination over the full deck instead of a practice session")
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}
