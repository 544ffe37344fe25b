package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/multa-cli/multa/card"
	"github.com/multa-cli/multa/config"
	"github.com/multa-cli/multa/log"
	"github.com/multa-cli/multa/session"
	"github.com/multa-cli/multa/store"
	"github.com/multa-cli/multa/terminal"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Args:  cobra.NoArgs,
	Short: "Runs a practice session (the default command)",
	Long: `Runs a practice session: cards come up by schedule, answers are graded, and
the updated schedule is saved when the session ends with Ctrl-C.`,
	Run: runPractice,
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}

func runPractice(cmd *cobra.Command, args []string) {
	st := store.New(config.GetConfig().DataDir)
	stored, err := st.Load(profileName)
	if err != nil {
		log.Fatal("Failed to load profile '%s': %s.\n", profileName, err)
	}

	sess := session.New()
	sess.ApplyChanges(stored)

	summary := reviewLoop(sess)

	if err := st.Save(profileName, sess.CardsToSave()); err != nil {
		log.Fatal("Failed to save profile '%s': %s.\n", profileName, err)
	}
	log.Debug("Saved profile '%s'.\n", profileName)
	fmt.Println(summary)
}

// reviewLoop asks cards until the user quits and reports the graded answers.
func reviewLoop(sess *session.Session) session.Summary {
	term, err := terminal.Open()
	if err != nil {
		log.Fatal("Failed to set up the terminal: %s.\n", err)
	}
	defer term.Close()

	var summary session.Summary
	for {
		c := sess.Peek()
		if c == nil {
			break
		}
		// Raw mode needs explicit carriage returns.
		log.Debug("Asking %s (tick %d).\r\n", c.Value, sess.Tick)
		term.Ask(c.Value)

		answer, quit, err := term.ReadAnswer()
		if err != nil {
			log.Error("Failed to read an answer: %s.\r\n", err)
			break
		}
		if quit {
			break
		}

		term.Clear()
		rating := grade(c.Value, answer)
		if rating == card.Good {
			term.PrintOK(c.Value, answer)
		} else {
			term.PrintKO(c.Value, answer, c.Value.Compute())
		}
		summary.Count(rating)
		sess.Review(rating)
	}
	return summary
}

// grade checks an answer against the expected product. Input that does not
// parse as a u8 counts as a wrong answer.
func grade(f card.Factors, answer string) card.Rating {
	value, err := strconv.ParseUint(answer, 10, 8)
	if err != nil || uint8(value) != f.Compute() {
		return card.Bad
	}
	return card.Good
}
