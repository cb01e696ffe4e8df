package builder

import (
	"os"
	"path/filepath"

	"github.com/openccx/fmmseg"
)

// BuildFromDir reads all 16 fixed OpenCC lexicon files (spec.md §6) from
// dir, named "<LexiconName>.txt", and assembles a Bundle. This is the
// generator path described in spec.md §3 "Lifecycle" / §4.B.
func BuildFromDir(dir string) (*fmmseg.Bundle, error) {
	tables := make(map[string]*fmmseg.DictMaxLen, len(fmmseg.LexiconNames()))
	for _, name := range fmmseg.LexiconNames() {
		path := filepath.Join(dir, name+".txt")
		f, err := os.Open(path)
		if err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
		entries, err := ParseLexicon(path, f)
		closeErr := f.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, &IOError{Path: path, Err: closeErr}
		}
		tables[name] = fmmseg.NewDictMaxLen(entries)
	}
	return fmmseg.NewBundle(tables)
}
