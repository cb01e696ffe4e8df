package fmmseg

import "testing"

func testBundle() *Bundle {
	b, err := NewBundle(map[string]*DictMaxLen{
		"STCharacters": NewDictMaxLen(map[string]string{"汉": "漢", "字": "字"}),
		"STPhrases":    NewDictMaxLen(map[string]string{"汉字": "漢字"}),
		"TSCharacters": NewDictMaxLen(map[string]string{"漢": "汉"}),
		"TSPhrases":    NewDictMaxLen(map[string]string{"漢字": "汉字"}),
		"TWVariants":   NewDictMaxLen(map[string]string{"漢字": "繁體漢字"}),
	})
	if err != nil {
		panic(err)
	}
	return b
}

func TestNewBundleFillsMissingTablesWithEmpty(t *testing.T) {
	b, err := NewBundle(nil)
	if err != nil {
		t.Fatalf("NewBundle(nil) error: %v", err)
	}
	if b.STCharacters == nil || b.STCharacters.Len() != 0 {
		t.Fatal("missing table should default to an empty, non-nil DictMaxLen")
	}
}

func TestBundleProgramS2T(t *testing.T) {
	b := testBundle()
	prog, err := b.Program(ConfigS2T)
	if err != nil {
		t.Fatalf("Program(ConfigS2T) error: %v", err)
	}
	if got := prog.Apply("汉字"); got != "漢字" {
		t.Fatalf("got %q, want %q", got, "漢字")
	}
}

func TestBundleProgramT2S(t *testing.T) {
	b := testBundle()
	prog, err := b.Program(ConfigT2S)
	if err != nil {
		t.Fatalf("Program(ConfigT2S) error: %v", err)
	}
	if got := prog.Apply("漢字"); got != "汉字" {
		t.Fatalf("got %q, want %q", got, "汉字")
	}
}

func TestBundleProgramS2TWChainsRounds(t *testing.T) {
	b := testBundle()
	prog, err := b.Program(ConfigS2TW)
	if err != nil {
		t.Fatalf("Program(ConfigS2TW) error: %v", err)
	}
	// 汉字 -(ST)-> 漢字 -(TWVariants)-> 繁體漢字
	if got := prog.Apply("汉字"); got != "繁體漢字" {
		t.Fatalf("got %q, want %q", got, "繁體漢字")
	}
}

func TestBundleProgramUnknownID(t *testing.T) {
	b := testBundle()
	if _, err := b.Program(ConfigID(99)); err == nil {
		t.Fatal("expected an error for an out-of-range config id")
	}
}

func TestBundleProgramAllValidIDsSucceed(t *testing.T) {
	b := testBundle()
	for id := ConfigS2T; id <= ConfigT2JP; id++ {
		if _, err := b.Program(id); err != nil {
			t.Errorf("Program(%v) unexpected error: %v", id, err)
		}
	}
}

func TestBundleUnionCacheIsSetOnce(t *testing.T) {
	b := testBundle()
	u1 := b.unionFor(unionST)
	u2 := b.unionFor(unionST)
	if u1 != u2 {
		t.Fatal("unionFor should return the same cached *StarterUnion on repeated calls")
	}
}

func TestBundleTablesRoundTripsAllNames(t *testing.T) {
	b := testBundle()
	tables := b.Tables()
	for _, name := range LexiconNames() {
		if _, ok := tables[name]; !ok {
			t.Errorf("Tables() missing entry for %q", name)
		}
	}
	if len(tables) != len(LexiconNames()) {
		t.Fatalf("Tables() has %d entries, want %d", len(tables), len(LexiconNames()))
	}
}

func TestLexiconNamesFixedCount(t *testing.T) {
	if n := len(LexiconNames()); n != 16 {
		t.Fatalf("LexiconNames() has %d entries, want 16", n)
	}
}
