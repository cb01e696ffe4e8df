package fmmseg

import "fmt"

// InvalidConfigError reports a config id or name that doesn't match one
// of the 16 fixed configurations (spec.md §7 "InvalidConfig{value}").
//
// Convert never returns this as a Go error: per spec.md §4.G, an invalid
// config makes Convert return the human-readable message as its *result*
// string while also recording it in the last-error slot. InvalidConfigError
// exists so that message is built in one place and so Bundle.Program can
// still participate in ordinary Go error handling for callers that don't
// go through Convert.
type InvalidConfigError struct {
	Value string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("Invalid config: %s", e.Value)
}
