package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tavernkit/cardreader/internal/png"
)

// inspectCmd reports the chunk-level structure of a PNG: every chunk with
// its declared length and stored CRC, plus which card keyword (if any) the
// reader would select. Useful when a card refuses to decode.
var inspectCmd = &cobra.Command{
	Use:   "inspect [image.png]",
	Short: "List the PNG chunks of an image and the card metadata verdict",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading image: %v", err)
		}

		s, err := png.NewScanner(data)
		if err != nil {
			return readError(err)
		}

		fmt.Println("Chunks:")
		fmt.Println("-------")
		var keywords []string
		for s.Scan() {
			c := s.Chunk()
			line := fmt.Sprintf("%s  %8d bytes  crc %08x", c.Type, c.Length(), c.CRC)
			if keyword, _, ok := c.Text(); ok {
				line += fmt.Sprintf("  keyword %q", keyword)
				switch strings.ToLower(keyword) {
				case "ccv3", "chara":
					keywords = append(keywords, strings.ToLower(keyword))
				}
			}
			fmt.Println(line)
		}
		if err := s.Err(); err != nil {
			return readError(err)
		}

		fmt.Println()
		switch {
		case contains(keywords, "ccv3"):
			fmt.Println("✅ card metadata present, V3 (ccv3) would be selected")
		case contains(keywords, "chara"):
			fmt.Println("✅ card metadata present, V2 (chara) would be selected")
		default:
			fmt.Println("❌ no character card metadata in this image")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
