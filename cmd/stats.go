package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/multa-cli/multa/card"
	"github.com/multa-cli/multa/config"
	"github.com/multa-cli/multa/log"
	"github.com/multa-cli/multa/session"
	"github.com/multa-cli/multa/store"
	"github.com/multa-cli/multa/util"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Args:  cobra.NoArgs,
	Short: "Shows the progress of a profile",
	Long: `Shows the progress of a profile: how many facts are unseen, in learning, or
learned, and which facts went wrong on their last answer.`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "Output format (text|yaml)")
	rootCmd.AddCommand(statsCmd)
}

type profileStats struct {
	Profile   string   `yaml:"profile"`
	Total     int      `yaml:"total"`
	Unseen    int      `yaml:"unseen"`
	Learning  int      `yaml:"learning"`
	Learned   int      `yaml:"learned"`
	LastWrong []string `yaml:"last_wrong,omitempty"`
}

func runStats(cmd *cobra.Command, args []string) {
	st := store.New(config.GetConfig().DataDir)
	stored, err := st.Load(profileName)
	if err != nil {
		log.Fatal("Failed to load profile '%s': %s.\n", profileName, err)
	}

	sess := session.New()
	sess.ApplyChanges(stored)

	stats := profileStats{Profile: profileName, Total: len(sess.Cards)}
	for _, c := range sess.Cards {
		switch c.Status.Kind {
		case card.Unseen:
			stats.Unseen++
		case card.Learning:
			stats.Learning++
		case card.Learned:
			stats.Learned++
		}
	}
	wrong := util.FilteredSlice(sess.Cards, func(c card.Card) bool {
		return c.LastResult != nil && *c.LastResult == card.Bad
	})
	stats.LastWrong = util.MappedSlice(wrong, func(c card.Card) string {
		return c.Value.String()
	})

	switch statsFormat {
	case "text":
		fmt.Printf("Profile '%s': %d facts; %d unseen, %d learning, %d learned.\n",
			stats.Profile, stats.Total, stats.Unseen, stats.Learning, stats.Learned)
		if len(stats.LastWrong) > 0 {
			fmt.Printf("Last answered wrong: %s.\n", strings.Join(stats.LastWrong, ", "))
		}
	case "yaml":
		out, err := yaml.Marshal(stats)
		if err != nil {
			log.Fatal("Failed to encode stats: %s.\n", err)
		}
		fmt.Print(string(out))
	default:
		log.Fatal("Unknown format '%s'.\n", statsFormat)
	}
}
