package fmmseg

// Round is one full FMM pass: a fixed list of tables probed in order,
// the round's precomputed union, and the round's hard length cap.
type Round struct {
	Tables []*DictMaxLen
	Union  *StarterUnion
	MaxLen int
}

// NewRound builds a Round from a table list, deriving MaxLen from the
// tables themselves unless maxLen overrides it (0 means "derive").
func NewRound(tables []*DictMaxLen, union *StarterUnion, maxLen int) Round {
	if maxLen == 0 {
		for _, t := range tables {
			if t.MaxLen() > maxLen {
				maxLen = t.MaxLen()
			}
		}
		if maxLen == 0 {
			maxLen = 1
		}
	}
	return Round{Tables: tables, Union: union, MaxLen: maxLen}
}

// apply runs one round over s.
func (r Round) apply(s string) string {
	return convertByUnion(s, r.Tables, r.Union, r.MaxLen)
}

// Program is spec.md's DictRefs: 1-3 rounds applied in sequence, each
// round's output feeding the next round's input.
type Program struct {
	Rounds []Round
}

// NewProgram builds a Program from 1-3 rounds.
func NewProgram(rounds ...Round) Program {
	return Program{Rounds: rounds}
}

// Apply runs every round over s in order.
func (p Program) Apply(s string) string {
	for _, r := range p.Rounds {
		s = r.apply(s)
	}
	return s
}
