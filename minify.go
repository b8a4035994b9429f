package jsondom

// Minify strips whitespace and comments from JSON text in place and
// returns the shortened slice, aliasing b.
//
// Both // line comments and /* block comments are removed; string
// literals are preserved byte for byte, with a backslash and the byte
// following it treated as a unit so escaped quotes do not end the
// literal. The read cursor never falls behind the write cursor.
func Minify(b []byte) []byte {
	r, w := 0, 0
	for r < len(b) {
		switch c := b[r]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			r++
		case c == '/' && r+1 < len(b) && b[r+1] == '/':
			// Line comment, dropped up to but not including the newline.
			for r < len(b) && b[r] != '\n' {
				r++
			}
		case c == '/' && r+1 < len(b) && b[r+1] == '*':
			r += 2
			for r+1 < len(b) && !(b[r] == '*' && b[r+1] == '/') {
				r++
			}
			if r+1 < len(b) {
				r += 2
			} else {
				r = len(b)
			}
		case c == '"':
			b[w] = c
			w++
			r++
			for r < len(b) && b[r] != '"' {
				if b[r] == '\\' && r+1 < len(b) {
					b[w] = b[r]
					w++
					r++
				}
				b[w] = b[r]
				w++
				r++
			}
			if r < len(b) {
				b[w] = '"'
				w++
				r++
			}
		default:
			b[w] = c
			w++
			r++
		}
	}
	return b[:w]
}
