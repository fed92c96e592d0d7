package card

import "encoding/json"

// Schema identifies which character-card schema a card was decoded from.
// Exactly one schema is active per card; the two are never merged.
type Schema int

const (
	// SchemaV2 is the flat "chara" object layout.
	SchemaV2 Schema = 2
	// SchemaV3 is the "ccv3" layout wrapping the fields in a data object.
	SchemaV3 Schema = 3
)

func (s Schema) String() string {
	switch s {
	case SchemaV2:
		return "V2"
	case SchemaV3:
		return "V3"
	}
	return "unknown"
}

// Card is the character definition embedded in an image, independent of the
// schema it was encoded with. Every field is optional; cards in the wild
// carry wildly different subsets. Fields not listed here are preserved
// verbatim in Extra so the raw export stays faithful.
type Card struct {
	Name                    string   `json:"name,omitempty"`
	Description             string   `json:"description,omitempty"`
	Personality             string   `json:"personality,omitempty"`
	FirstMes                string   `json:"first_mes,omitempty"`
	Scenario                string   `json:"scenario,omitempty"`
	CreatorNotes            string   `json:"creator_notes,omitempty"`
	SystemPrompt            string   `json:"system_prompt,omitempty"`
	PostHistoryInstructions string   `json:"post_history_instructions,omitempty"`
	AlternateGreetings      []string `json:"alternate_greetings,omitempty"`
	Tags                    []string `json:"tags,omitempty"`
	Creator                 string   `json:"creator,omitempty"`
	CharacterVersion        string   `json:"character_version,omitempty"`

	// Extra holds fields the schema does not name, keyed as they appeared.
	Extra map[string]json.RawMessage `json:"-"`

	// Schema, Spec and SpecVersion come from the envelope, not the data
	// object: Schema from the chunk keyword, Spec/SpecVersion from the V3
	// wrapper. Empty for V2 cards.
	Schema      Schema `json:"-"`
	Spec        string `json:"-"`
	SpecVersion string `json:"-"`
}

// Wrapper is the V3 envelope: spec identifiers around a nested data object.
type Wrapper struct {
	Spec        string `json:"spec"`
	SpecVersion string `json:"spec_version"`
	Data        Card   `json:"data"`
}

// knownKeys mirrors the json tags above; anything else lands in Extra.
var knownKeys = []string{
	"name", "description", "personality", "first_mes", "scenario",
	"creator_notes", "system_prompt", "post_history_instructions",
	"alternate_greetings", "tags", "creator", "character_version",
}

// UnmarshalJSON decodes the known fields and captures the remainder in
// Extra, so no field of the original card is lost.
func (c *Card) UnmarshalJSON(data []byte) error {
	type plain Card
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		p.Extra = raw
	}
	*c = Card(p)
	return nil
}

// MarshalJSON re-emits the known fields merged with the preserved Extra
// fields. Known fields win on a key collision.
func (c Card) MarshalJSON() ([]byte, error) {
	type plain Card
	known, err := json.Marshal(plain(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return known, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
