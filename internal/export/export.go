// Package export assembles the two export artifacts from a decoded card.
// It performs no I/O; writing or uploading the files is the caller's job.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tavernkit/cardreader/internal/card"
	"github.com/tavernkit/cardreader/internal/render"
)

// Bundle pairs the raw JSON export with the readable text export.
type Bundle struct {
	JSON []byte
	Text string
}

// Assemble serializes the card and flattens the rendered document. V3 cards
// are re-wrapped in their spec envelope so the raw export matches the shape
// the authoring tool embedded; V2 cards export flat.
func Assemble(c *card.Card, doc render.Document) (Bundle, error) {
	var v any = c
	if c.Schema == card.SchemaV3 {
		v = card.Wrapper{Spec: c.Spec, SpecVersion: c.SpecVersion, Data: *c}
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Bundle{}, fmt.Errorf("serializing card: %w", err)
	}
	return Bundle{JSON: raw, Text: doc.String()}, nil
}

// SafeName sanitizes a card name for use as a file name. Path separators
// and other characters that upset common filesystems become underscores;
// a blank name falls back to "character".
func SafeName(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	if strings.TrimSpace(safe) == "" {
		return "character"
	}
	return safe
}

// FileNames derives the two export file names, timestamped to keep
// concurrent exports of same-named cards from colliding.
func FileNames(name string, t time.Time) (jsonName, textName string) {
	base := fmt.Sprintf("%s_%s", SafeName(name), t.Format("150405"))
	return base + ".json", base + "_read.txt"
}
