package jsondom

// maxDepthDefault bounds parser recursion on adversarial input.
const maxDepthDefault = 1000

// ParserOption is a parser option.
type ParserOption func(p *parser) error

// WithMaxDepth limits the nesting depth the parser accepts.
// Parsing deeper input fails with a syntax error at the opening byte.
// Default: 1000.
func WithMaxDepth(n int) ParserOption {
	return func(p *parser) error {
		if n <= 0 {
			n = maxDepthDefault
		}
		p.maxDepth = n
		return nil
	}
}

// WithParseHooks routes the buffer allocations of a single parse through h
// instead of the installed default.
func WithParseHooks(h *Hooks) ParserOption {
	return func(p *parser) error {
		p.hooks = h
		return nil
	}
}

// PrintOption is a printer option.
type PrintOption func(p *printbuffer) error

// WithPrintHooks routes the buffer allocations of a single print call
// through h instead of the installed default.
func WithPrintHooks(h *Hooks) PrintOption {
	return func(p *printbuffer) error {
		p.hooks = h
		return nil
	}
}
