package builder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/openccx/fmmseg"
)

// bundleMagic/bundleVersion identify the CBOR document's shape, the same
// discipline the teacher's archive.go wire format uses (magic + version
// ahead of the payload) even though the payload framing itself is CBOR
// here rather than hand-rolled length-prefixed stages.
const (
	bundleMagic   = "OCCB"
	bundleVersion = uint16(1)
)

// dictWire is one table's CBOR schema (spec.md §6: "Schema carries map,
// max_len, min_len, key_length_mask, starter_len_mask per table. Dense
// arrays are not serialized"). starterLenMask is keyed by rune directly;
// CBOR preserves that native scalar type (spec.md §6), unlike JSON.
type dictWire struct {
	Map            map[string]string `cbor:"map"`
	MaxLen         int               `cbor:"max_len"`
	MinLen         int               `cbor:"min_len"`
	KeyLengthMask  uint64            `cbor:"key_length_mask"`
	StarterLenMask map[rune]uint64   `cbor:"starter_len_mask"`
}

type bundleWire struct {
	Magic   string              `cbor:"magic"`
	Version uint16              `cbor:"version"`
	Tables  map[string]dictWire `cbor:"tables"`
}

func toWire(d *fmmseg.DictMaxLen) dictWire {
	return dictWire{
		Map:            d.Entries(),
		MaxLen:         d.MaxLen(),
		MinLen:         d.MinLen(),
		KeyLengthMask:  d.KeyLengthMask(),
		StarterLenMask: d.StarterLenMasks(),
	}
}

// WriteBundle CBOR-encodes b and Zstd-frames the result onto w.
func WriteBundle(w io.Writer, b *fmmseg.Bundle) error {
	wire := bundleWire{
		Magic:   bundleMagic,
		Version: bundleVersion,
		Tables:  make(map[string]dictWire, len(fmmseg.LexiconNames())),
	}
	for name, d := range b.Tables() {
		wire.Tables[name] = toWire(d)
	}

	payload, err := cbor.Marshal(wire)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCborParse, err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := enc.Write(payload); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// ReadBundle inflates a Zstd-framed CBOR blob written by WriteBundle and
// rebuilds a Bundle, recomputing every table's dense runtime index from
// its serialized entries (spec.md §3: the sparse map is the
// authoritative serialized form; dense arrays are always rebuilt).
func ReadBundle(r io.Reader) (*fmmseg.Bundle, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	payload, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	var wire bundleWire
	if err := cbor.Unmarshal(payload, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCborParse, err)
	}
	if wire.Magic != bundleMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCborParse, wire.Magic)
	}
	if wire.Version != bundleVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCborParse, wire.Version)
	}

	tables := make(map[string]*fmmseg.DictMaxLen, len(wire.Tables))
	for name, dw := range wire.Tables {
		tables[name] = fmmseg.NewDictMaxLen(dw.Map)
	}
	return fmmseg.NewBundle(tables)
}

// MarshalBlob is a convenience wrapper returning the Zstd-framed CBOR
// bytes directly, for embedding or writing to a single file.
func MarshalBlob(b *fmmseg.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteBundle(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBlob is the inverse of MarshalBlob.
func UnmarshalBlob(blob []byte) (*fmmseg.Bundle, error) {
	return ReadBundle(bytes.NewReader(blob))
}
