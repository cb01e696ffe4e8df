package builder

import (
	"bufio"
	"io"
	"strings"
)

// ParseLexicon reads one OpenCC text lexicon: whitespace-separated
// columns, first column the source phrase, second the target. Extra
// columns are ignored (the second column always wins); blank lines and
// lines starting with '#' are skipped; duplicate source phrases across
// lines follow last-one-wins (spec.md §4.A step 1, §4.H).
func ParseLexicon(path string, r io.Reader) (map[string]string, error) {
	entries := make(map[string]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			return nil, &LoadError{Path: path, Line: lineno, Msg: "expected at least two whitespace-separated columns"}
		}
		entries[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return entries, nil
}
