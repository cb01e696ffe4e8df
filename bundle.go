package fmmseg

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// lexiconNames lists the 16 fixed OpenCC lexicon files a Bundle loads
// (spec.md §6). Order is not semantically significant; it only fixes an
// iteration order for builder diagnostics.
var lexiconNames = [16]string{
	"STCharacters", "STPhrases",
	"TSCharacters", "TSPhrases",
	"TWPhrases", "TWPhrasesRev",
	"TWVariants", "TWVariantsRev", "TWVariantsRevPhrases",
	"HKVariants", "HKVariantsRev", "HKVariantsRevPhrases",
	"JPShinjitaiCharacters", "JPShinjitaiPhrases",
	"JPVariants", "JPVariantsRev",
}

// Bundle owns the 16 named OpenCC lexicons plus a lazily-populated
// union cache (spec.md §3 "Bundle (B)"). A Bundle is immutable once
// built: every table and every cached union, once written, is never
// replaced.
type Bundle struct {
	STCharacters *DictMaxLen
	STPhrases    *DictMaxLen
	TSCharacters *DictMaxLen
	TSPhrases    *DictMaxLen

	TWPhrases            *DictMaxLen
	TWPhrasesRev         *DictMaxLen
	TWVariants           *DictMaxLen
	TWVariantsRev        *DictMaxLen
	TWVariantsRevPhrases *DictMaxLen

	HKVariants           *DictMaxLen
	HKVariantsRev        *DictMaxLen
	HKVariantsRevPhrases *DictMaxLen

	JPShinjitaiCharacters *DictMaxLen
	JPShinjitaiPhrases    *DictMaxLen
	JPVariants            *DictMaxLen
	JPVariantsRev         *DictMaxLen

	unions *lru.Cache[unionKey, *StarterUnion]
}

// unionKey names one of the fixed table-lists a conversion round can use.
// There are 11 of them across the 16 configs, within the "roughly 10-14"
// spec.md §4.B anticipates.
type unionKey uint8

const (
	unionST unionKey = iota
	unionTS
	unionTWVariants
	unionTWPhrases
	unionTWVariantsRev
	unionTWVariantsRevPhrases
	unionHKVariants
	unionHKVariantsRev
	unionJPShinjitai
	unionJPVariants
	unionJPVariantsRev

	unionKeyCount // sentinel: number of distinct keys, used to size the LRU
)

// NewBundle assembles a Bundle from already-built tables, typically the
// output of internal/builder. The union cache is sized to unionKeyCount
// so the fixed set of rounds this module ever asks for never evicts.
func NewBundle(tables map[string]*DictMaxLen) (*Bundle, error) {
	b := &Bundle{}
	get := func(name string) *DictMaxLen {
		if t, ok := tables[name]; ok && t != nil {
			return t
		}
		return NewDictMaxLen(nil)
	}

	b.STCharacters = get("STCharacters")
	b.STPhrases = get("STPhrases")
	b.TSCharacters = get("TSCharacters")
	b.TSPhrases = get("TSPhrases")
	b.TWPhrases = get("TWPhrases")
	b.TWPhrasesRev = get("TWPhrasesRev")
	b.TWVariants = get("TWVariants")
	b.TWVariantsRev = get("TWVariantsRev")
	b.TWVariantsRevPhrases = get("TWVariantsRevPhrases")
	b.HKVariants = get("HKVariants")
	b.HKVariantsRev = get("HKVariantsRev")
	b.HKVariantsRevPhrases = get("HKVariantsRevPhrases")
	b.JPShinjitaiCharacters = get("JPShinjitaiCharacters")
	b.JPShinjitaiPhrases = get("JPShinjitaiPhrases")
	b.JPVariants = get("JPVariants")
	b.JPVariantsRev = get("JPVariantsRev")

	cache, err := lru.New[unionKey, *StarterUnion](int(unionKeyCount))
	if err != nil {
		return nil, err
	}
	b.unions = cache
	return b, nil
}

// Tables returns every named lexicon in the bundle, keyed by the names
// in spec.md §6. Used by internal/builder for (de)serialization.
func (b *Bundle) Tables() map[string]*DictMaxLen {
	return map[string]*DictMaxLen{
		"STCharacters":          b.STCharacters,
		"STPhrases":             b.STPhrases,
		"TSCharacters":          b.TSCharacters,
		"TSPhrases":             b.TSPhrases,
		"TWPhrases":             b.TWPhrases,
		"TWPhrasesRev":          b.TWPhrasesRev,
		"TWVariants":            b.TWVariants,
		"TWVariantsRev":         b.TWVariantsRev,
		"TWVariantsRevPhrases":  b.TWVariantsRevPhrases,
		"HKVariants":            b.HKVariants,
		"HKVariantsRev":         b.HKVariantsRev,
		"HKVariantsRevPhrases":  b.HKVariantsRevPhrases,
		"JPShinjitaiCharacters": b.JPShinjitaiCharacters,
		"JPShinjitaiPhrases":    b.JPShinjitaiPhrases,
		"JPVariants":            b.JPVariants,
		"JPVariantsRev":         b.JPVariantsRev,
	}
}

// LexiconNames returns the 16 fixed lexicon file names in a stable order.
func LexiconNames() [16]string { return lexiconNames }

// unionFor returns the cached StarterUnion for key, building it on first
// request. Concurrent first-requesters may each build a union, but the
// LRU's PeekOrAdd stores only the first one; later callers get that
// stored value back and never replace it.
func (b *Bundle) unionFor(key unionKey) *StarterUnion {
	if u, ok := b.unions.Get(key); ok {
		return u
	}
	u := NewStarterUnion(b.tablesFor(key))
	if prev, ok, _ := b.unions.PeekOrAdd(key, u); ok {
		return prev
	}
	return u
}

func (b *Bundle) tablesFor(key unionKey) []*DictMaxLen {
	switch key {
	case unionST:
		return []*DictMaxLen{b.STPhrases, b.STCharacters}
	case unionTS:
		return []*DictMaxLen{b.TSPhrases, b.TSCharacters}
	case unionTWVariants:
		return []*DictMaxLen{b.TWVariants}
	case unionTWPhrases:
		return []*DictMaxLen{b.TWPhrases}
	case unionTWVariantsRev:
		return []*DictMaxLen{b.TWVariantsRev}
	case unionTWVariantsRevPhrases:
		return []*DictMaxLen{b.TWVariantsRevPhrases}
	case unionHKVariants:
		return []*DictMaxLen{b.HKVariants}
	case unionHKVariantsRev:
		return []*DictMaxLen{b.HKVariantsRev}
	case unionJPShinjitai:
		return []*DictMaxLen{b.JPShinjitaiPhrases, b.JPShinjitaiCharacters}
	case unionJPVariants:
		return []*DictMaxLen{b.JPVariants}
	case unionJPVariantsRev:
		return []*DictMaxLen{b.JPVariantsRev}
	default:
		return nil
	}
}

// round builds a Round for the given table-list key, using the bundle's
// cached union.
func (b *Bundle) round(key unionKey) Round {
	tables := b.tablesFor(key)
	return NewRound(tables, b.unionFor(key), 0)
}

// Program returns the round sequence for a config id, per spec.md §6's
// fixed id table and §4.E's round composition notes.
func (b *Bundle) Program(id ConfigID) (Program, error) {
	switch id {
	case ConfigS2T:
		return NewProgram(b.round(unionST)), nil
	case ConfigS2TW:
		return NewProgram(b.round(unionST), b.round(unionTWVariants)), nil
	case ConfigS2TWP:
		return NewProgram(b.round(unionST), b.round(unionTWPhrases), b.round(unionTWVariants)), nil
	case ConfigS2HK:
		return NewProgram(b.round(unionST), b.round(unionHKVariants)), nil
	case ConfigT2S:
		return NewProgram(b.round(unionTS)), nil
	case ConfigT2TW:
		return NewProgram(b.round(unionTWVariants)), nil
	case ConfigT2TWP:
		return NewProgram(b.round(unionTWPhrases), b.round(unionTWVariants)), nil
	case ConfigT2HK:
		return NewProgram(b.round(unionHKVariants)), nil
	case ConfigTW2S:
		return NewProgram(b.round(unionTWVariantsRev), b.round(unionTS)), nil
	case ConfigTW2SP:
		return NewProgram(b.round(unionTWVariantsRevPhrases), b.round(unionTWVariantsRev), b.round(unionTS)), nil
	case ConfigTW2T:
		return NewProgram(b.round(unionTWVariantsRev)), nil
	case ConfigTW2TP:
		return NewProgram(b.round(unionTWVariantsRevPhrases), b.round(unionTWVariantsRev)), nil
	case ConfigHK2S:
		return NewProgram(b.round(unionHKVariantsRev), b.round(unionTS)), nil
	case ConfigHK2T:
		return NewProgram(b.round(unionHKVariantsRev)), nil
	case ConfigJP2T:
		return NewProgram(b.round(unionJPVariantsRev)), nil
	case ConfigT2JP:
		return NewProgram(b.round(unionJPShinjitai), b.round(unionJPVariants)), nil
	default:
		return Program{}, &InvalidConfigError{Value: id.String()}
	}
}
