package card

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tavernkit/cardreader/internal/png"
)

// ErrNoCardData means the image is a well-formed PNG that simply carries no
// character-card metadata. It is the normal outcome for an ordinary picture,
// not a corruption case.
var ErrNoCardData = errors.New("no character card metadata found")

// ErrDecode means a card payload was located but could not be decoded:
// invalid Base64 or malformed JSON.
var ErrDecode = errors.New("corrupted card data")

// Keywords the authoring tools use for the textual metadata chunk, in
// priority order. A ccv3 chunk always wins over chara, regardless of where
// the chunks sit in the file.
const (
	keywordV3 = "ccv3"
	keywordV2 = "chara"
)

// Extract walks the PNG chunks of data, locates the highest-priority card
// metadata chunk and decodes it. Returns png.ErrFormat for a malformed
// container, ErrNoCardData when no known keyword is present, and ErrDecode
// when the located payload will not decode.
func Extract(data []byte) (*Card, error) {
	s, err := png.NewScanner(data)
	if err != nil {
		return nil, err
	}

	var v3, v2 string
	var haveV3, haveV2 bool
	for s.Scan() {
		keyword, value, ok := s.Chunk().Text()
		if !ok {
			continue
		}
		switch strings.ToLower(keyword) {
		case keywordV3:
			if !haveV3 {
				v3, haveV3 = value, true
			}
		case keywordV2:
			if !haveV2 {
				v2, haveV2 = value, true
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	switch {
	case haveV3:
		return Decode(SchemaV3, v3)
	case haveV2:
		return Decode(SchemaV2, v2)
	}
	return nil, ErrNoCardData
}

// Decode turns the Base64 text value of a metadata chunk into a Card,
// dispatching on the schema the chunk keyword announced.
func Decode(schema Schema, payload string) (*Card, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrDecode, err)
	}

	switch schema {
	case SchemaV3:
		var w Wrapper
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("%w: V3 JSON: %v", ErrDecode, err)
		}
		c := w.Data
		c.Schema = SchemaV3
		c.Spec = w.Spec
		c.SpecVersion = w.SpecVersion
		return &c, nil
	case SchemaV2:
		var c Card
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: V2 JSON: %v", ErrDecode, err)
		}
		c.Schema = SchemaV2
		return &c, nil
	}
	return nil, fmt.Errorf("%w: unknown schema %v", ErrDecode, schema)
}
