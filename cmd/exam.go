package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/multa-cli/multa/card"
	"github.com/multa-cli/multa/log"
	"github.com/multa-cli/multa/session"
	"github.com/multa-cli/multa/terminal"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Args:  cobra.NoArgs,
	Short: "Runs an examination over the full deck",
	Long: `Runs an examination: every fact of the deck is asked exactly once, in random
order. Answers are graded but saved progress is neither read nor written.`,
	Run: runExam,
}

func init() {
	rootCmd.AddCommand(examCmd)
}

func runExam(cmd *cobra.Command, args []string) {
	deck := session.NewDeck()

	term, err := terminal.Open()
	if err != nil {
		log.Fatal("Failed to set up the terminal: %s.\n", err)
	}

	bar := progressbar.NewOptions(len(deck),
		progressbar.OptionSetDescription("exam"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount())

	var summary session.Summary
	for _, f := range deck {
		term.Ask(f)
		answer, quit, err := term.ReadAnswer()
		if err != nil {
			log.Error("Failed to read an answer: %s.\r\n", err)
			break
		}
		if quit {
			break
		}

		term.Clear()
		rating := grade(f, answer)
		if rating == card.Good {
			term.PrintOK(f, answer)
		} else {
			term.PrintKO(f, answer, f.Compute())
		}
		summary.Count(rating)
		bar.Add(1)
		fmt.Fprint(os.Stdout, "\r\n")
	}
	term.Close()

	fmt.Println(summary)
	if total := summary.OK + summary.KO; total > 0 {
		fmt.Printf("Score: %d%%\n", 100*summary.OK/total)
	}
}
