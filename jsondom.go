// Package jsondom parses and renders JSON text (RFC 7159) as a mutable
// in-memory document tree.
//
// The package performs no I/O. Buffer allocations can be routed through
// user-supplied hooks, process-wide via InstallHooks or per call via
// options.
package jsondom

import (
	"errors"
	"strconv"
)

// SyntaxError reports the byte offset at which parsing detected malformed
// input.
type SyntaxError struct {
	// Offset is the position of the offending byte within the input.
	Offset int
}

func (e *SyntaxError) Error() string {
	return "invalid json at byte " + strconv.Itoa(e.Offset)
}

// ErrorOffset returns the byte offset carried by a parse error, or -1 if
// err holds no position (for example an allocation failure).
func ErrorOffset(err error) int {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Offset
	}
	return -1
}

// Parse parses a single JSON value and returns its document tree.
// Input following the value may only be whitespace; anything else is a
// syntax error.
func Parse(b []byte, opts ...ParserOption) (*Node, error) {
	n, end, err := ParseOne(b, opts...)
	if err != nil {
		return nil, err
	}
	for end < len(b) && b[end] <= ' ' {
		end++
	}
	if end != len(b) {
		return nil, &SyntaxError{Offset: end}
	}
	return n, nil
}

// ParseOne parses the first JSON value in b and returns the tree along
// with the number of bytes consumed, so concatenated documents can be
// parsed value by value. Trailing bytes are not inspected.
func ParseOne(b []byte, opts ...ParserOption) (*Node, int, error) {
	p := parser{
		data:     b,
		maxDepth: maxDepthDefault,
		hooks:    defaultHooks,
	}
	for _, opt := range opts {
		if err := opt(&p); err != nil {
			return nil, 0, err
		}
	}
	p.skipSpace()
	root := &Node{}
	if err := p.parseValue(root); err != nil {
		return nil, 0, err
	}
	return root, p.pos, nil
}
