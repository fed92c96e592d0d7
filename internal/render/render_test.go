package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkit/cardreader/internal/card"
	"github.com/tavernkit/cardreader/internal/render"
)

const sep = "----------------------------------------"

func TestRenderMinimalCard(t *testing.T) {
	c := &card.Card{Name: "Aria", Description: "A knight.", Schema: card.SchemaV2}

	doc := render.Render(c)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Name", doc.Sections[0].Label)
	assert.Equal(t, "Description", doc.Sections[1].Label)

	want := "Name: Aria\n" +
		"\n" + sep + "\n" +
		"Description\n" +
		"A knight.\n"
	assert.Equal(t, want, doc.String())
}

func TestRenderFullCard(t *testing.T) {
	c := &card.Card{
		Schema:           card.SchemaV3,
		Spec:             "chara_card_v3",
		SpecVersion:      "3.0",
		Name:             "Rin",
		Creator:          "someone",
		CharacterVersion: "1.2",
		Tags:             []string{"a", "b"},
		Description:      "Line one.\nLine two.",
		FirstMes:         "Hello there.",
		Personality:      "Quiet.",
		Scenario:         "A tavern.",
		SystemPrompt:     "Stay in character.",
		CreatorNotes:     "Be kind.",
	}

	want := strings.Join([]string{
		"Name: Rin",
		"Spec: chara_card_v3 (3.0)",
		"Creator: someone",
		"Version: 1.2",
		"Tags: a, b",
		"",
		sep,
		"Description",
		"Line one.",
		"Line two.",
		"",
		sep,
		"First Message",
		"Hello there.",
		"",
		sep,
		"Personality",
		"Quiet.",
		"",
		sep,
		"Scenario",
		"A tavern.",
		"",
		sep,
		"System Prompt",
		"Stay in character.",
		"",
		sep,
		"Creator Notes",
		"Be kind.",
		"",
	}, "\n")

	got := render.Render(c).String()
	assert.Equal(t, want, got)

	// Re-parsing the document recovers the labels in the fixed order.
	wantLabels := []string{
		"Name", "Spec", "Creator", "Version", "Tags",
		"Description", "First Message", "Personality",
		"Scenario", "System Prompt", "Creator Notes",
	}
	var labels []string
	lines := strings.Split(got, "\n")
	for i, line := range lines {
		if k, _, found := strings.Cut(line, ": "); found && i < 5 {
			labels = append(labels, k)
		}
		if line == sep {
			labels = append(labels, lines[i+1])
		}
	}
	assert.Equal(t, wantLabels, labels)
}

func TestRenderOmitsAbsentFields(t *testing.T) {
	c := &card.Card{Name: "Aria", Schema: card.SchemaV2}

	got := render.Render(c).String()
	for _, label := range []string{
		"Spec:", "Creator:", "Version:", "Tags:",
		"Description", "First Message", "Personality",
		"Scenario", "System Prompt", "Creator Notes",
	} {
		assert.NotContains(t, got, label)
	}
	assert.Equal(t, "Name: Aria\n", got)
}

func TestRenderTagsJoinOnOneLine(t *testing.T) {
	c := &card.Card{Name: "Rin", Tags: []string{"a", "b"}, Schema: card.SchemaV3}

	got := render.Render(c).String()
	assert.Contains(t, got, "Tags: a, b\n")
}

func TestRenderIsDeterministic(t *testing.T) {
	c := &card.Card{Name: "Aria", Description: "A knight.", Tags: []string{"x", "y"}}
	assert.Equal(t, render.Render(c).String(), render.Render(c).String())
}
