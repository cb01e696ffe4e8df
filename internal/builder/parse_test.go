package builder

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLexiconBasic(t *testing.T) {
	src := "汉\t漢\n字\t字\n"
	got, err := ParseLexicon("test.txt", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"汉": "漢", "字": "字"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("entries[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestParseLexiconSkipsBlankLinesAndComments(t *testing.T) {
	src := "# a comment\n\n汉\t漢\n   \n# another\n字\t字\n"
	got, err := ParseLexicon("test.txt", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
}

func TestParseLexiconExtraColumnsIgnored(t *testing.T) {
	src := "汉\t漢\textra\tcolumns\n"
	got, err := ParseLexicon("test.txt", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["汉"] != "漢" {
		t.Fatalf("got %q, want %q", got["汉"], "漢")
	}
}

func TestParseLexiconLastLineWins(t *testing.T) {
	src := "汉\t漢\n汉\t異體\n"
	got, err := ParseLexicon("test.txt", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["汉"] != "異體" {
		t.Fatalf("got %q, want the later line's mapping %q", got["汉"], "異體")
	}
}

func TestParseLexiconMalformedLineReturnsLoadError(t *testing.T) {
	src := "汉\t漢\nmalformed-single-column\n"
	_, err := ParseLexicon("test.txt", strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for a single-column line")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error is %T, want *LoadError", err)
	}
	if loadErr.Line != 2 {
		t.Fatalf("LoadError.Line = %d, want 2", loadErr.Line)
	}
	if loadErr.Path != "test.txt" {
		t.Fatalf("LoadError.Path = %q, want %q", loadErr.Path, "test.txt")
	}
}

func TestParseLexiconEmptyInput(t *testing.T) {
	got, err := ParseLexicon("test.txt", strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}
