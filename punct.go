package fmmseg

// punctS2T and its inverse are the single-character punctuation
// substitution tables spec.md §4.G describes ("two tiny tables: s->t
// curly/angle quotes etc., and its inverse"). Applied as a final pass
// over Convert's output when punct=true; direction depends on whether
// the chosen config converts toward or away from Simplified.
var punctS2T = map[rune]rune{
	'“': '「',
	'”': '」',
	'‘': '『',
	'’': '』',
}

var punctT2S = invertPunct(punctS2T)

func invertPunct(m map[rune]rune) map[rune]rune {
	inv := make(map[rune]rune, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}

// applyPunct rewrites every rune in s found in table, leaving everything
// else untouched. Output length in runes is unchanged (spec.md §1: "same
// character count, modulo minor punctuation substitutions").
func applyPunct(s string, table map[rune]rune) string {
	if len(table) == 0 {
		return s
	}
	hasAny := false
	for _, r := range s {
		if _, ok := table[r]; ok {
			hasAny = true
			break
		}
	}
	if !hasAny {
		return s
	}

	out := make([]rune, 0, len(s))
	for _, r := range s {
		if mapped, ok := table[r]; ok {
			out = append(out, mapped)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// punctTableFor picks the substitution direction for a config: configs
// that convert *from* Simplified use the s->t table on their output;
// everything else (t2s, tw2s, hk2s, jp2t, t2jp, and the t2*/tw2*/hk2*
// traditional-to-traditional configs) uses the inverse.
func punctTableFor(id ConfigID) map[rune]rune {
	switch id {
	case ConfigS2T, ConfigS2TW, ConfigS2TWP, ConfigS2HK:
		return punctS2T
	default:
		return punctT2S
	}
}
