package builder

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/openccx/fmmseg"
)

// dictDTO is the JSON-exportable shape of one table. JSON object keys
// must be strings, so starter_len_mask here is keyed by the starter's
// one-character string form rather than the CBOR form's native rune —
// this is the "DTO layer with string keys" spec.md §4.H calls for.
type dictDTO struct {
	Map            map[string]string `json:"map"`
	MaxLen         int               `json:"max_len"`
	MinLen         int               `json:"min_len"`
	KeyLengthMask  uint64            `json:"key_length_mask"`
	StarterLenMask map[string]uint64 `json:"starter_len_mask"`
}

type bundleDTO struct {
	Magic   string             `json:"magic"`
	Version uint16             `json:"version"`
	Tables  map[string]dictDTO `json:"tables"`
}

func toDTO(d *fmmseg.DictMaxLen) dictDTO {
	masks := d.StarterLenMasks()
	starter := make(map[string]uint64, len(masks))
	for r, mask := range masks {
		starter[string(r)] = mask
	}
	return dictDTO{
		Map:            d.Entries(),
		MaxLen:         d.MaxLen(),
		MinLen:         d.MinLen(),
		KeyLengthMask:  d.KeyLengthMask(),
		StarterLenMask: starter,
	}
}

// MarshalJSON renders the full bundle as human-readable JSON, for
// inspection/debugging tooling (spec.md §4.H).
func MarshalJSON(b *fmmseg.Bundle) ([]byte, error) {
	dto := bundleDTO{
		Magic:   bundleMagic,
		Version: bundleVersion,
		Tables:  make(map[string]dictDTO, len(fmmseg.LexiconNames())),
	}
	for name, d := range b.Tables() {
		dto.Tables[name] = toDTO(d)
	}
	return json.MarshalIndent(dto, "", "  ")
}

// UnmarshalJSON is the inverse of MarshalJSON, for loading a bundle that
// was hand-edited or produced by another OpenCC tool's JSON export.
// Multi-rune starter keys (anything but exactly one character) are
// rejected: starter_len_mask keys must name a single starter rune.
func UnmarshalJSON(data []byte) (*fmmseg.Bundle, error) {
	var dto bundleDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	tables := make(map[string]*fmmseg.DictMaxLen, len(dto.Tables))
	for name, d := range dto.Tables {
		for k := range d.StarterLenMask {
			if utf8.RuneCountInString(k) != 1 {
				return nil, fmt.Errorf("table %q: starter_len_mask key %q is not a single character", name, k)
			}
		}
		tables[name] = fmmseg.NewDictMaxLen(d.Map)
	}
	return fmmseg.NewBundle(tables)
}
