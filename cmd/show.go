package cmd

import (
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tavernkit/cardreader/internal/card"
	"github.com/tavernkit/cardreader/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [image.png]",
	Short: "Display the character card embedded in a PNG",
	Long: `Show extracts the embedded character card and pretty-prints it to the
terminal without writing any files. Long fields are wrapped to the
terminal width.

Examples:
  cardreader show aria.png
  cardreader show --full aria.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading image: %v", err)
		}

		c, err := card.Extract(data)
		if err != nil {
			return readError(err)
		}

		full, _ := cmd.Flags().GetBool("full")
		displayCard(c, full)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("full", false, "Show all long fields, not just the description")
}

// displayCard prints the card with colored labels. Only the description is
// shown by default; full adds the remaining long fields.
func displayCard(c *card.Card, full bool) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	fmt.Println()
	doc := render.Render(c)
	for _, s := range doc.Sections {
		if s.Inline {
			fmt.Printf("  %s %s\n",
				colorize.CyanString("%-9s", s.Label+":"),
				colorize.HiWhiteString("%s", s.Text))
		}
	}

	for _, s := range doc.Sections {
		if s.Inline {
			continue
		}
		if !full && s.Label != "Description" {
			continue
		}
		fmt.Println()
		fmt.Printf("  %s\n", colorize.CyanString("%s:", s.Label))
		for _, line := range strings.Split(s.Text, "\n") {
			for _, wrapped := range wrapText(line, width-4) {
				fmt.Printf("  %s\n", wrapped)
			}
		}
	}
	fmt.Println()
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
