package export_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkit/cardreader/internal/card"
	"github.com/tavernkit/cardreader/internal/export"
	"github.com/tavernkit/cardreader/internal/render"
)

func TestAssembleV2(t *testing.T) {
	c := &card.Card{
		Schema:      card.SchemaV2,
		Name:        "Aria",
		Description: "A knight.",
		Extra:       map[string]json.RawMessage{"mood": json.RawMessage(`"stoic"`)},
	}
	doc := render.Render(c)

	bundle, err := export.Assemble(c, doc)
	require.NoError(t, err)

	assert.Equal(t, doc.String(), bundle.Text)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(bundle.JSON, &raw))
	assert.Equal(t, "Aria", raw["name"])
	assert.Equal(t, "A knight.", raw["description"])
	assert.Equal(t, "stoic", raw["mood"])
	assert.NotContains(t, raw, "data")
}

func TestAssembleV3KeepsWrapper(t *testing.T) {
	c := &card.Card{
		Schema:      card.SchemaV3,
		Spec:        "chara_card_v3",
		SpecVersion: "3.0",
		Name:        "Rin",
		Tags:        []string{"a", "b"},
	}

	bundle, err := export.Assemble(c, render.Render(c))
	require.NoError(t, err)

	var raw struct {
		Spec        string `json:"spec"`
		SpecVersion string `json:"spec_version"`
		Data        struct {
			Name string   `json:"name"`
			Tags []string `json:"tags"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(bundle.JSON, &raw))
	assert.Equal(t, "chara_card_v3", raw.Spec)
	assert.Equal(t, "3.0", raw.SpecVersion)
	assert.Equal(t, "Rin", raw.Data.Name)
	assert.Equal(t, []string{"a", "b"}, raw.Data.Tags)
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Aria", "Aria"},
		{"path separators", `a/b\c`, "a_b_c"},
		{"windows specials", `a:b*c?d"e<f>g|h`, "a_b_c_d_e_f_g_h"},
		{"empty", "", "character"},
		{"whitespace only", "   ", "character"},
		{"all stripped", "///", "___"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.SafeName(tt.in))
		})
	}
}

func TestFileNames(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 5, 0, time.UTC)
	jsonName, textName := export.FileNames("Aria", at)
	assert.Equal(t, "Aria_093005.json", jsonName)
	assert.Equal(t, "Aria_093005_read.txt", textName)
}
