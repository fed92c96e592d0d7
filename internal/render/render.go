// Package render turns a decoded card into the readable text document that
// accompanies the raw JSON export.
package render

import (
	"fmt"
	"strings"

	"github.com/tavernkit/cardreader/internal/card"
)

const separatorWidth = 40

// Section is one labeled part of the readable document. Inline sections
// render as a single "Label: value" line; block sections get a separator
// line, the label, then the body with its internal line breaks preserved.
type Section struct {
	Label  string
	Text   string
	Inline bool
}

// Document is the ordered readable rendering of a card. It is immutable
// once built.
type Document struct {
	Sections []Section
}

// Render builds the readable document for a card. Field order is fixed;
// absent fields are omitted entirely rather than rendered as empty blocks.
func Render(c *card.Card) Document {
	var d Document

	inline := func(label, value string) {
		if value != "" {
			d.Sections = append(d.Sections, Section{Label: label, Text: value, Inline: true})
		}
	}
	block := func(label, value string) {
		if value != "" {
			d.Sections = append(d.Sections, Section{Label: label, Text: value})
		}
	}

	inline("Name", c.Name)
	inline("Spec", specInfo(c))
	inline("Creator", c.Creator)
	inline("Version", c.CharacterVersion)
	inline("Tags", strings.Join(c.Tags, ", "))

	block("Description", c.Description)
	block("First Message", c.FirstMes)
	block("Personality", c.Personality)
	block("Scenario", c.Scenario)
	block("System Prompt", c.SystemPrompt)
	block("Creator Notes", c.CreatorNotes)

	return d
}

// specInfo folds the V3 envelope identifiers into one line, e.g.
// "chara_card_v3 (3.0)". V2 cards carry neither and get no Spec line.
func specInfo(c *card.Card) string {
	switch {
	case c.Spec != "" && c.SpecVersion != "":
		return fmt.Sprintf("%s (%s)", c.Spec, c.SpecVersion)
	case c.Spec != "":
		return c.Spec
	case c.SpecVersion != "":
		return c.SpecVersion
	}
	return ""
}

// String flattens the document into the readable text export.
func (d Document) String() string {
	var b strings.Builder
	sep := strings.Repeat("-", separatorWidth)

	for _, s := range d.Sections {
		if s.Inline {
			b.WriteString(s.Label)
			b.WriteString(": ")
			b.WriteString(s.Text)
			b.WriteString("\n")
			continue
		}
		b.WriteString("\n")
		b.WriteString(sep)
		b.WriteString("\n")
		b.WriteString(s.Label)
		b.WriteString("\n")
		b.WriteString(s.Text)
		b.WriteString("\n")
	}
	return b.String()
}
