package fmmseg

import (
	"strconv"
	"sync/atomic"
)

// zhoCheckPrefixBytes bounds zho_check's scan to the input's first bytes,
// per spec.md §4.G / §9.
const zhoCheckPrefixBytes = 1000

// ConverterOption configures an OpenCC converter at construction time.
type ConverterOption func(*openCCConfig)

type openCCConfig struct {
	parallel bool
}

// WithParallel sets the converter's initial parallel flag (default true,
// per spec.md §3 "Converter (G)").
func WithParallel(enabled bool) ConverterOption {
	return func(c *openCCConfig) {
		c.parallel = enabled
	}
}

// OpenCC is the public conversion façade (spec.md §4.G, component G): a
// shared Bundle, the parallel flag, and a per-converter last-error slot.
//
// Go has no thread-local storage, so unlike the reference implementation
// the error slot here is scoped per *OpenCC instance* rather than per
// calling thread — see DESIGN.md's Open Question notes. Construction is
// cheap (spec.md §3 "Converter instances are cheap"), so callers needing
// per-goroutine isolation should hold one OpenCC per goroutine.
type OpenCC struct {
	bundle    *Bundle
	parallel  atomic.Bool
	lastError atomic.Pointer[string]
}

// New creates a converter sharing the given bundle.
func New(bundle *Bundle, opts ...ConverterOption) *OpenCC {
	cfg := openCCConfig{parallel: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	o := &OpenCC{bundle: bundle}
	o.parallel.Store(cfg.parallel)
	return o
}

// Convert converts text under the named or numeric config, per spec.md
// §4.G. An unrecognized config never errors out of band: it records
// "Invalid config: <value>" in the last-error slot and returns that same
// string as the result, matching the reference's self-protecting
// behavior so callers scanning output text for errors and callers
// polling LastError both see the same information.
func (o *OpenCC) Convert(text string, config string, punct bool) string {
	id, ok := resolveConfig(config)
	if !ok {
		msg := (&InvalidConfigError{Value: config}).Error()
		o.setLastError(msg)
		return msg
	}
	return o.ConvertID(text, id, punct)
}

// ConvertID converts text under a numeric config id directly (the
// convert_cfg entry point in spec.md §6's C ABI, exposed here as plain
// Go rather than behind a C-callable surface).
func (o *OpenCC) ConvertID(text string, id ConfigID, punct bool) string {
	prog, err := o.bundle.Program(id)
	if err != nil {
		msg := err.Error()
		o.setLastError(msg)
		return msg
	}

	result := segmentReplace(text, prog, o.GetParallel())
	if punct {
		result = applyPunct(result, punctTableFor(id))
	}
	o.clearLastErrorOnSuccess()
	return result
}

func resolveConfig(config string) (ConfigID, bool) {
	if id, ok := ConfigNameToID(config); ok {
		return id, true
	}
	if n, err := strconv.Atoi(config); err == nil {
		id := ConfigID(n)
		if id.Valid() {
			return id, true
		}
	}
	return 0, false
}

// ZhoCheck scans the first zhoCheckPrefixBytes bytes of text and reports
// 1 if t2s changes it (traditional characters present), 2 if s2t changes
// it (simplified characters present, no traditional ones), or 0 if
// neither changes it (e.g. Latin-only text); see DESIGN.md.
func (o *OpenCC) ZhoCheck(text string) int {
	if text == "" {
		return 0
	}
	prefix := text
	if len(prefix) > zhoCheckPrefixBytes {
		prefix = truncateToValidPrefix(prefix, zhoCheckPrefixBytes)
	}

	if prog, err := o.bundle.Program(ConfigT2S); err == nil {
		if segmentReplace(prefix, prog, false) != prefix {
			return 1
		}
	}
	if prog, err := o.bundle.Program(ConfigS2T); err == nil {
		if segmentReplace(prefix, prog, false) != prefix {
			return 2
		}
	}
	return 0
}

// truncateToValidPrefix trims s to at most n bytes without splitting a
// multi-byte rune.
func truncateToValidPrefix(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && isUTF8Continuation(s[n]) {
		n--
	}
	return s[:n]
}

func isUTF8Continuation(b byte) bool { return b&0xC0 == 0x80 }

// SetParallel/GetParallel toggle and query the converter's parallel flag.
func (o *OpenCC) SetParallel(enabled bool) { o.parallel.Store(enabled) }
func (o *OpenCC) GetParallel() bool        { return o.parallel.Load() }

// LastError returns the most recent error text, or ("No error", false)
// if none is set (spec.md §7).
func (o *OpenCC) LastError() (string, bool) {
	p := o.lastError.Load()
	if p == nil {
		return "No error", false
	}
	return *p, true
}

// ClearLastError clears the last-error slot.
func (o *OpenCC) ClearLastError() {
	o.lastError.Store(nil)
}

func (o *OpenCC) setLastError(msg string) {
	o.lastError.Store(&msg)
}

// clearLastErrorOnSuccess implements spec.md §7: "cleared on the next
// successful conversion or explicit clear_last_error."
func (o *OpenCC) clearLastErrorOnSuccess() {
	o.lastError.Store(nil)
}
