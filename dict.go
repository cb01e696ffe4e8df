package fmmseg

// DictMaxLen is a single OpenCC lexicon: an exact phrase map plus the
// precomputed length indexes that let the FMM engine skip impossible
// match lengths without touching the map.
//
// A DictMaxLen is immutable once returned by the builder; there is no
// exported mutator.
type DictMaxLen struct {
	entries map[string]string

	maxLen int // longest key, in characters
	minLen int // shortest key, in characters

	keyLengthMask uint64 // bit n-1 set iff a key of length n exists (bit 63: "n >= 64")

	// starterLenMask/starterMaxLen are the dense BMP fast path.
	// Index is the starter rune's code point (always < 0x10000 here).
	starterLenMask []uint64
	starterMaxLen  []uint8

	// Sparse fallback for astral starters (code point >= 0x10000).
	astralLenMask map[rune]uint64
	astralMaxLen  map[rune]uint8
}

const maskOverflowBit = 63 // bit 63 means "length >= 64"

// NewDictMaxLen builds a DictMaxLen from phrase pairs. The input is a map,
// so each key appears once; duplicate source lines are resolved
// last-one-wins earlier, by the builder's lexicon parser.
func NewDictMaxLen(entries map[string]string) *DictMaxLen {
	d := &DictMaxLen{
		entries:        make(map[string]string, len(entries)),
		minLen:         1,
		maxLen:         1,
		starterLenMask: make([]uint64, 0x10000),
		starterMaxLen:  make([]uint8, 0x10000),
		astralLenMask:  make(map[rune]uint64),
		astralMaxLen:   make(map[rune]uint8),
	}
	if len(entries) == 0 {
		return d
	}

	first := true
	for k, v := range entries {
		d.entries[k] = v

		n := runeLen(k)
		if first {
			d.minLen, d.maxLen = n, n
			first = false
		} else {
			if n < d.minLen {
				d.minLen = n
			}
			if n > d.maxLen {
				d.maxLen = n
			}
		}

		bit := n - 1
		if bit > maskOverflowBit {
			bit = maskOverflowBit
		}
		d.keyLengthMask |= 1 << uint(bit)

		starter, _ := firstRune(k)
		d.setStarterBit(starter, bit)
		d.raiseStarterMax(starter, n)
	}
	return d
}

func (d *DictMaxLen) setStarterBit(starter rune, bit int) {
	if isBMP(starter) {
		d.starterLenMask[starter] |= 1 << uint(bit)
		return
	}
	d.astralLenMask[starter] |= 1 << uint(bit)
}

func (d *DictMaxLen) raiseStarterMax(starter rune, n int) {
	clamped := uint8(255)
	if n < 255 {
		clamped = uint8(n)
	}
	if isBMP(starter) {
		if clamped > d.starterMaxLen[starter] {
			d.starterMaxLen[starter] = clamped
		}
		return
	}
	if clamped > d.astralMaxLen[starter] {
		d.astralMaxLen[starter] = clamped
	}
}

// Entries returns a copy of the table's phrase map, for serialization
// (spec.md §3: "sparse map is the authoritative serialized form").
func (d *DictMaxLen) Entries() map[string]string {
	out := make(map[string]string, len(d.entries))
	for k, v := range d.entries {
		out[k] = v
	}
	return out
}

// KeyLengthMask returns the table's global length-presence bitmask.
func (d *DictMaxLen) KeyLengthMask() uint64 { return d.keyLengthMask }

// StarterLenMasks returns the sparse starter-rune -> length-mask map,
// merging the dense BMP fast path and the astral fallback back into one
// map for serialization. On load the runtime dense/sparse split is
// rebuilt from Entries alone; it is never itself the wire form.
func (d *DictMaxLen) StarterLenMasks() map[rune]uint64 {
	out := make(map[rune]uint64)
	for r, mask := range d.astralLenMask {
		if mask != 0 {
			out[r] = mask
		}
	}
	for i, mask := range d.starterLenMask {
		if mask != 0 {
			out[rune(i)] = mask
		}
	}
	return out
}

// Get performs an exact phrase lookup.
func (d *DictMaxLen) Get(phrase string) (string, bool) {
	v, ok := d.entries[phrase]
	return v, ok
}

// Len reports the number of entries in the table.
func (d *DictMaxLen) Len() int { return len(d.entries) }

// MaxLen/MinLen report the extremal key lengths in characters.
func (d *DictMaxLen) MaxLen() int { return d.maxLen }
func (d *DictMaxLen) MinLen() int { return d.minLen }

// HasKeyLen reports whether the table contains any key of exactly n
// characters (n >= 64 is folded onto the overflow bit).
func (d *DictMaxLen) HasKeyLen(n int) bool {
	return testLenBit(d.keyLengthMask, n)
}

// StarterAllows reports whether some key starting with c has length n.
func (d *DictMaxLen) StarterAllows(c rune, n int) bool {
	if isBMP(c) {
		if n > 64 {
			return capAllows(d.starterMaxLen[c], n)
		}
		return testLenBit(d.starterLenMask[c], n)
	}
	if n > 64 {
		return capAllows(d.astralMaxLen[c], n)
	}
	mask, ok := d.astralLenMask[c]
	if !ok {
		return false
	}
	return testLenBit(mask, n)
}

// PerStarterMaxLen returns the longest key starting with c, or 0 if none.
func (d *DictMaxLen) PerStarterMaxLen(c rune) int {
	if isBMP(c) {
		return int(d.starterMaxLen[c])
	}
	return int(d.astralMaxLen[c])
}

func testLenBit(mask uint64, n int) bool {
	if n <= 0 {
		return false
	}
	if n >= 64 {
		return mask&(1<<maskOverflowBit) != 0
	}
	return mask&(1<<uint(n-1)) != 0
}

// capAllows handles the n > 64 case: bit 63 plus the saturating per-starter
// max length stand in for exact length presence once a key is that long.
func capAllows(max uint8, n int) bool {
	if max == 255 {
		return true // saturated: the true max could be >= n
	}
	return int(max) >= n
}

func isBMP(r rune) bool { return r >= 0 && r < 0x10000 }

// runeLen returns the character count of s.
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// firstRune returns the first rune of s and its byte width.
func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}
