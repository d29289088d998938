package topology

import "fmt"

// ParseError reports configuration text that could not be decoded, either
// because it is malformed or because a field has the wrong type.
type ParseError struct {
	Path string // empty when loaded from a reader
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("topology: parse error: %v", e.Err)
	}
	return fmt.Sprintf("topology: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FieldError reports a required field that is missing, or an optional
// field whose value cannot be used.
type FieldError struct {
	Field string
	Port  int   // index into "Ports", -1 for the top-level object
	Err   error // nil when the field is missing
}

func (e *FieldError) Error() string {
	where := "topology: "
	if e.Port >= 0 {
		where = fmt.Sprintf("topology: port %d: ", e.Port)
	}
	if e.Err == nil {
		return fmt.Sprintf("%smissing required field %q", where, e.Field)
	}
	return fmt.Sprintf("%sfield %q: %v", where, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
