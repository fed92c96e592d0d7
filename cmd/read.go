package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tavernkit/cardreader/internal/card"
	"github.com/tavernkit/cardreader/internal/config"
	"github.com/tavernkit/cardreader/internal/export"
	"github.com/tavernkit/cardreader/internal/png"
	"github.com/tavernkit/cardreader/internal/render"
)

var readCmd = &cobra.Command{
	Use:   "read [image.png]",
	Short: "Extract a character card from a PNG and write the export files",
	Long: `Read extracts the embedded character card from a PNG image and writes two
files next to it (or into --output): the raw card JSON and a readable TXT
rendering of the main fields.

Examples:
  cardreader read aria.png
  cardreader read --output ./exports aria.png
  cardreader read --preview=false aria.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		preview := cfg.TextPreview
		if cmd.Flags().Changed("preview") {
			preview, _ = cmd.Flags().GetBool("preview")
		}

		outDir, _ := cmd.Flags().GetString("output")
		if outDir == "" {
			outDir = filepath.Dir(imagePath)
		}

		data, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("error reading image: %v", err)
		}

		c, err := card.Extract(data)
		if err != nil {
			return readError(err)
		}

		doc := render.Render(c)
		bundle, err := export.Assemble(c, doc)
		if err != nil {
			return err
		}

		jsonName, textName := export.FileNames(c.Name, time.Now())
		jsonPath := filepath.Join(outDir, jsonName)
		textPath := filepath.Join(outDir, textName)

		if err := os.WriteFile(jsonPath, bundle.JSON, 0644); err != nil {
			return fmt.Errorf("error writing JSON export: %v", err)
		}
		if err := os.WriteFile(textPath, []byte(bundle.Text), 0644); err != nil {
			return fmt.Errorf("error writing TXT export: %v", err)
		}

		fmt.Println(jsonPath)
		fmt.Println(textPath)

		if preview {
			creator := c.Creator
			if creator == "" {
				creator = "unknown"
			}
			fmt.Printf("✅ %s %s\n", colorize.CyanString("Card:"), colorize.HiWhiteString(c.Name))
			fmt.Printf("   %s %s\n", colorize.CyanString("Creator:"), colorize.HiWhiteString(creator))
			fmt.Printf("   %s %s (%s)\n",
				colorize.CyanString("Schema:"),
				colorize.HiWhiteString(c.Schema.String()),
				colorize.HiWhiteString("%d chars", utf8.RuneCountInString(bundle.Text)))
		}

		return nil
	},
}

// readError maps the pipeline's typed failures to single user-facing
// messages, as the delivery layer is expected to do.
func readError(err error) error {
	switch {
	case errors.Is(err, png.ErrFormat):
		return fmt.Errorf("not a valid PNG image: %v", err)
	case errors.Is(err, card.ErrNoCardData):
		return fmt.Errorf("no character card found in this image")
	case errors.Is(err, card.ErrDecode):
		return fmt.Errorf("card data is corrupted: %v", err)
	}
	return err
}

func init() {
	RootCmd.AddCommand(readCmd)

	readCmd.Flags().StringP("output", "o", "", "Directory to write the export files into")
	readCmd.Flags().Bool("preview", true, "Print a short card preview after exporting")
}
