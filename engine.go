package fmmseg

import "strings"

// convertByUnion runs one forward-maximum-matching pass over s, probing
// tables in order (first hit wins) and using u to gate candidate match
// lengths before any substring is built or hashed. This is the hot path
// described in spec.md §4.D.
func convertByUnion(s string, tables []*DictMaxLen, u *StarterUnion, maxLen int) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var out strings.Builder
	out.Grow(len(s) + len(s)/10 + 16)

	n := len(runes)
	for p := 0; p < n; {
		c := runes[p]
		remaining := n - p

		if u.PerStarterMaxLen(c) == 0 && !hasSingleCharKey(tables, c) {
			out.WriteRune(c)
			p++
			continue
		}

		probeCap := remaining
		if m := u.PerStarterMaxLen(c); m < probeCap {
			probeCap = m
		}
		if maxLen < probeCap {
			probeCap = maxLen
		}

		matched := false
		u.forEachLenDec(c, probeCap, 2, func(ln int) bool {
			candidate := string(runes[p : p+ln])
			for _, t := range tables {
				if v, ok := t.Get(candidate); ok {
					out.WriteString(v)
					p += ln
					matched = true
					return false
				}
			}
			return true
		})
		if matched {
			continue
		}

		// Single-character fallback (step 6).
		single := string(c)
		wrote := false
		for _, t := range tables {
			if v, ok := t.Get(single); ok {
				out.WriteString(v)
				wrote = true
				break
			}
		}
		if !wrote {
			out.WriteRune(c)
		}
		p++
	}
	return out.String()
}

func hasSingleCharKey(tables []*DictMaxLen, c rune) bool {
	single := string(c)
	for _, t := range tables {
		if _, ok := t.Get(single); ok {
			return true
		}
	}
	return false
}
