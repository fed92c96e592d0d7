package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tavernkit/cardreader/internal/config"
	"github.com/tavernkit/cardreader/internal/trigger"
)

// matchCmd tests the configured trigger words against a message text, so a
// bot operator can check their commands/prefixes setup without a live bot.
var matchCmd = &cobra.Command{
	Use:   "match [text]",
	Short: "Check whether a message text would trigger the card reader",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		if !cfg.Enabled {
			fmt.Println("❌ reader is disabled in the config")
			return nil
		}

		if trigger.Match(args[0], cfg.Prefixes, cfg.Commands) {
			fmt.Printf("✅ %q triggers the reader\n", args[0])
		} else {
			fmt.Printf("❌ %q does not trigger the reader\n", args[0])
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(matchCmd)
}
