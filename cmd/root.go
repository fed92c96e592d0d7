package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardreader",
	Short: "Tool for extracting character cards embedded in PNG images",
	Long: `Cardreader extracts the character-card metadata that authoring tools embed
in PNG images (the "chara" and "ccv3" textual chunks), and exports it as a
raw JSON file plus a readable TXT document.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
