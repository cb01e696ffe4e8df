package fmmseg

import "testing"

func TestConvertByUnionEmpty(t *testing.T) {
	d := NewDictMaxLen(map[string]string{"一": "壹"})
	u := NewStarterUnion([]*DictMaxLen{d})
	if got := convertByUnion("", []*DictMaxLen{d}, u, d.MaxLen()); got != "" {
		t.Fatalf("convertByUnion(\"\") = %q, want empty", got)
	}
}

func TestConvertByUnionLongestMatchWins(t *testing.T) {
	d := NewDictMaxLen(map[string]string{
		"一二":  "short",
		"一二三": "long",
	})
	u := NewStarterUnion([]*DictMaxLen{d})
	got := convertByUnion("一二三四", []*DictMaxLen{d}, u, d.MaxLen())
	if got != "long四" {
		t.Fatalf("got %q, want %q", got, "long四")
	}
}

func TestConvertByUnionFirstTableWinsOnTie(t *testing.T) {
	d1 := NewDictMaxLen(map[string]string{"一二": "from-d1"})
	d2 := NewDictMaxLen(map[string]string{"一二": "from-d2"})
	u := NewStarterUnion([]*DictMaxLen{d1, d2})
	got := convertByUnion("一二", []*DictMaxLen{d1, d2}, u, 2)
	if got != "from-d1" {
		t.Fatalf("got %q, want the first table's mapping", got)
	}
}

func TestConvertByUnionVerbatimPassthrough(t *testing.T) {
	d := NewDictMaxLen(map[string]string{"一": "壹"})
	u := NewStarterUnion([]*DictMaxLen{d})
	got := convertByUnion("Hello, world! 一", []*DictMaxLen{d}, u, d.MaxLen())
	if got != "Hello, world! 壹" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertByUnionSingleCharFallback(t *testing.T) {
	d := NewDictMaxLen(map[string]string{"甲": "A"})
	u := NewStarterUnion([]*DictMaxLen{d})
	got := convertByUnion("甲乙", []*DictMaxLen{d}, u, d.MaxLen())
	if got != "A乙" {
		t.Fatalf("got %q, want %q", got, "A乙")
	}
}

func TestConvertByUnionRoundMaxLenCaps(t *testing.T) {
	d := NewDictMaxLen(map[string]string{"一二三": "long"})
	u := NewStarterUnion([]*DictMaxLen{d})
	// A round max length of 2 should prevent the 3-character match.
	got := convertByUnion("一二三", []*DictMaxLen{d}, u, 2)
	if got != "一二三" {
		t.Fatalf("got %q, want input unchanged when capped below the key length", got)
	}
}

func TestConvertByUnionAstral(t *testing.T) {
	astral := "\U0001F600"
	d := NewDictMaxLen(map[string]string{astral: "FACE"})
	u := NewStarterUnion([]*DictMaxLen{d})
	got := convertByUnion(astral+"x", []*DictMaxLen{d}, u, d.MaxLen())
	if got != "FACEx" {
		t.Fatalf("got %q, want %q", got, "FACEx")
	}
}
