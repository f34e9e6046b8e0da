package geomfile

import "fmt"

// ParseError describes a malformed geometry file. Line is 1-based and is 0
// when the problem is not tied to a single line (for example a premature
// end of file).
type ParseError struct {
	File string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	prefix := e.File
	if prefix == "" {
		prefix = "geometry"
	}
	if e.Line > 0 {
		prefix = fmt.Sprintf("%s:%d", prefix, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
