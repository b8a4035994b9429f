/*
 * MinIO Cloud Storage, (C) 2022 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jsondom

import (
	"errors"
	"fmt"
)

// defaultPrebuffer is the initial output buffer size when the caller did
// not pick one.
const defaultPrebuffer = 256

// Print renders the tree as formatted JSON: object members on their own
// lines, tab-indented, array elements on one line separated by ", ".
func Print(n *Node, opts ...PrintOption) ([]byte, error) {
	return printTree(n, defaultPrebuffer, true, opts)
}

// PrintCompact renders the tree as JSON with minimal whitespace.
func PrintCompact(n *Node, opts ...PrintOption) ([]byte, error) {
	return printTree(n, defaultPrebuffer, false, opts)
}

// PrintBuffered renders the tree starting from an output buffer of
// prebuffer bytes, growing it as needed.
func PrintBuffered(n *Node, prebuffer int, pretty bool, opts ...PrintOption) ([]byte, error) {
	if prebuffer < 0 {
		prebuffer = 0
	}
	return printTree(n, prebuffer, pretty, opts)
}

// PrintPreallocated renders the tree into buf without allocating and
// returns the number of bytes written. ErrBufferFull is returned when buf
// cannot hold the output.
func PrintPreallocated(n *Node, buf []byte, pretty bool) (int, error) {
	p := printbuffer{buf: buf, noalloc: true}
	if err := printValue(&p, n, 0, pretty); err != nil {
		return 0, err
	}
	return p.offset, nil
}

// MarshalJSON renders the tree as compact JSON.
func (n *Node) MarshalJSON() ([]byte, error) {
	return PrintCompact(n)
}

// MarshalJSONBuffer renders the tree as compact JSON appended to dst.
func (n *Node) MarshalJSONBuffer(dst []byte) ([]byte, error) {
	out, err := PrintCompact(n)
	if err != nil {
		return nil, err
	}
	return append(dst, out...), nil
}

func printTree(n *Node, prebuffer int, pretty bool, opts []PrintOption) ([]byte, error) {
	p := printbuffer{hooks: defaultHooks}
	for _, opt := range opts {
		if err := opt(&p); err != nil {
			return nil, err
		}
	}
	p.buf = p.hooks.alloc(prebuffer)
	if p.buf == nil && prebuffer > 0 {
		return nil, ErrNoMemory
	}
	if err := printValue(&p, n, 0, pretty); err != nil {
		p.hooks.release(p.buf)
		return nil, err
	}
	return p.bytes(), nil
}

// printValue dispatches on the node kind. References print their target.
func printValue(p *printbuffer, n *Node, depth int, pretty bool) error {
	if n == nil {
		return errors.New("cannot print nil node")
	}
	n = n.target()
	switch n.kind {
	case Null:
		return p.writeString("null")
	case False:
		return p.writeString("false")
	case True:
		return p.writeString("true")
	case Number:
		var tmp [72]byte
		return p.write(appendNumber(tmp[:0], n.num))
	case String:
		return printString(p, n.str)
	case Raw:
		if n.str == nil {
			return errors.New("raw node has no payload")
		}
		return p.write(n.str)
	case Array:
		return printArray(p, n, depth, pretty)
	case Object:
		return printObject(p, n, depth, pretty)
	}
	return fmt.Errorf("cannot print kind %v", n.kind)
}

var valToHex = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// printString emits s as a quoted JSON string. Bytes below 0x20 and the
// quote and backslash characters are escaped; the forward slash is not.
// The escaped length is computed up front so the buffer grows once.
func printString(p *printbuffer, s []byte) error {
	needed := 2
	for _, c := range s {
		switch c {
		case '"', '\\', '\b', '\f', '\n', '\r', '\t':
			needed += 2
		default:
			if c < 0x20 {
				needed += 6
			} else {
				needed++
			}
		}
	}
	if err := p.ensure(needed); err != nil {
		return err
	}

	buf := p.buf
	off := p.offset
	buf[off] = '"'
	off++
	for _, c := range s {
		switch c {
		case '"':
			buf[off], buf[off+1] = '\\', '"'
			off += 2
		case '\\':
			buf[off], buf[off+1] = '\\', '\\'
			off += 2
		case '\b':
			buf[off], buf[off+1] = '\\', 'b'
			off += 2
		case '\f':
			buf[off], buf[off+1] = '\\', 'f'
			off += 2
		case '\n':
			buf[off], buf[off+1] = '\\', 'n'
			off += 2
		case '\r':
			buf[off], buf[off+1] = '\\', 'r'
			off += 2
		case '\t':
			buf[off], buf[off+1] = '\\', 't'
			off += 2
		default:
			if c < 0x20 {
				buf[off], buf[off+1], buf[off+2], buf[off+3] = '\\', 'u', '0', '0'
				buf[off+4], buf[off+5] = valToHex[c>>4], valToHex[c&0xf]
				off += 6
			} else {
				buf[off] = c
				off++
			}
		}
	}
	buf[off] = '"'
	off++
	p.offset = off
	return nil
}

func printArray(p *printbuffer, n *Node, depth int, pretty bool) error {
	if len(n.children) == 0 {
		return p.writeString("[]")
	}
	if err := p.writeByte('['); err != nil {
		return err
	}
	last := len(n.children) - 1
	for i, c := range n.children {
		if err := printValue(p, c, depth+1, pretty); err != nil {
			return err
		}
		if i != last {
			if err := p.writeByte(','); err != nil {
				return err
			}
			if pretty {
				if err := p.writeByte(' '); err != nil {
					return err
				}
			}
		}
	}
	return p.writeByte(']')
}

func printObject(p *printbuffer, n *Node, depth int, pretty bool) error {
	if len(n.children) == 0 {
		if err := p.writeByte('{'); err != nil {
			return err
		}
		if pretty {
			if err := p.writeByte('\n'); err != nil {
				return err
			}
			if err := p.writeIndent(depth); err != nil {
				return err
			}
		}
		return p.writeByte('}')
	}

	if err := p.writeByte('{'); err != nil {
		return err
	}
	if pretty {
		if err := p.writeByte('\n'); err != nil {
			return err
		}
	}
	depth++
	last := len(n.children) - 1
	for i, c := range n.children {
		if pretty {
			if err := p.writeIndent(depth); err != nil {
				return err
			}
		}
		if err := printString(p, c.key); err != nil {
			return err
		}
		if err := p.writeByte(':'); err != nil {
			return err
		}
		if pretty {
			if err := p.writeByte('\t'); err != nil {
				return err
			}
		}
		if err := printValue(p, c, depth, pretty); err != nil {
			return err
		}
		if i != last {
			if err := p.writeByte(','); err != nil {
				return err
			}
		}
		if pretty {
			if err := p.writeByte('\n'); err != nil {
				return err
			}
		}
	}
	if pretty {
		if err := p.writeIndent(depth - 1); err != nil {
			return err
		}
	}
	return p.writeByte('}')
}
