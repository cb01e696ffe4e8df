package fmmseg

// StarterUnion aggregates length masks and per-starter caps across every
// table consulted in one round, so the FMM engine can rule out a match
// length before touching any individual table's map.
type StarterUnion struct {
	anyLenMask uint64 // OR of every member's keyLengthMask
	anyMaxLen  int    // max of every member's maxLen

	starterLenMask []uint64 // dense BMP fast path, OR across members
	starterMaxLen  []uint8  // dense BMP fast path, max across members

	astralLenMask map[rune]uint64
	astralMaxLen  map[rune]uint8
}

// NewStarterUnion builds the union of the given tables. An empty slice
// produces a union that allows nothing.
func NewStarterUnion(tables []*DictMaxLen) *StarterUnion {
	u := &StarterUnion{
		starterLenMask: make([]uint64, 0x10000),
		starterMaxLen:  make([]uint8, 0x10000),
		astralLenMask:  make(map[rune]uint64),
		astralMaxLen:   make(map[rune]uint8),
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		u.anyLenMask |= t.keyLengthMask
		if t.maxLen > u.anyMaxLen {
			u.anyMaxLen = t.maxLen
		}
		for i := range u.starterLenMask {
			u.starterLenMask[i] |= t.starterLenMask[i]
			if t.starterMaxLen[i] > u.starterMaxLen[i] {
				u.starterMaxLen[i] = t.starterMaxLen[i]
			}
		}
		for r, mask := range t.astralLenMask {
			u.astralLenMask[r] |= mask
		}
		for r, max := range t.astralMaxLen {
			if max > u.astralMaxLen[r] {
				u.astralMaxLen[r] = max
			}
		}
	}
	return u
}

// StarterAllows reports whether some member table has a key starting
// with c of length n.
func (u *StarterUnion) StarterAllows(c rune, n int) bool {
	if isBMP(c) {
		if n > 64 {
			return capAllows(u.starterMaxLen[c], n)
		}
		return testLenBit(u.starterLenMask[c], n)
	}
	if n > 64 {
		return capAllows(u.astralMaxLen[c], n)
	}
	mask, ok := u.astralLenMask[c]
	if !ok {
		return false
	}
	return testLenBit(mask, n)
}

// HasKeyLen reports whether any member table has a key of length n,
// ignoring which character starts it.
func (u *StarterUnion) HasKeyLen(n int) bool {
	return testLenBit(u.anyLenMask, n)
}

// PerStarterMaxLen returns the longest key starting with c across every
// member table, or 0 if no member has one.
func (u *StarterUnion) PerStarterMaxLen(c rune) int {
	if isBMP(c) {
		return int(u.starterMaxLen[c])
	}
	return int(u.astralMaxLen[c])
}

// AnyMaxLen returns the longest key length across every member table.
func (u *StarterUnion) AnyMaxLen() int { return u.anyMaxLen }

// forEachLenDec calls fn for each character length from hi down to lo
// (inclusive) that the union's starter mask permits for c, stopping
// early if fn returns false. Lengths 0/1 are never yielded; callers
// handle the single-character case separately per spec.md §4.D step 6.
func (u *StarterUnion) forEachLenDec(c rune, hi, lo int, fn func(n int) bool) {
	if lo < 2 {
		lo = 2
	}
	for n := hi; n >= lo; n-- {
		if !u.StarterAllows(c, n) {
			continue
		}
		if !fn(n) {
			return
		}
	}
}
