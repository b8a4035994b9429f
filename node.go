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
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Kind is the JSON value kind of a Node.
type Kind uint8

const (
	// Invalid is the zero Kind. Nodes returned by this package never have it.
	Invalid Kind = iota
	// Null is the JSON null value.
	Null
	// False is the JSON false value.
	False
	// True is the JSON true value.
	True
	// Number is a JSON number, stored as a float64.
	Number
	// String is a JSON string, stored as unescaped UTF-8.
	String
	// Raw is pre-serialized JSON text emitted verbatim by the printer.
	// The parser never produces Raw nodes.
	Raw
	// Array is a JSON array.
	Array
	// Object is a JSON object.
	Object
)

// String returns the kind as a string.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case False:
		return "false"
	case True:
		return "true"
	case Number:
		return "number"
	case String:
		return "string"
	case Raw:
		return "raw"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "(invalid)"
}

// Node is a single JSON value, or an object member, in a document tree.
//
// Array and Object nodes own an ordered list of children. Children of an
// object carry a member key; children of an array do not. A node appears in
// at most one parent. Reference nodes are the exception: they borrow the
// payload of a target node without owning it, see AppendReference.
//
// A Node and its subtree may be read concurrently, but must not be mutated
// while any other goroutine touches the same tree.
type Node struct {
	kind     Kind
	key      []byte
	keyConst bool

	// Borrowed payload. When set, all payload accessors delegate to the
	// target and the children slice below is unused.
	ref *Node

	children []*Node
	str      []byte
	num      float64
}

// target resolves reference chains to the owning node.
func (n *Node) target() *Node {
	for n.ref != nil {
		n = n.ref
	}
	return n
}

// Kind returns the value kind. For reference nodes this is the kind of the
// referenced node.
func (n *Node) Kind() Kind {
	if n == nil {
		return Invalid
	}
	return n.target().kind
}

// IsReference reports whether the node borrows its payload from another node.
func (n *Node) IsReference() bool {
	return n != nil && n.ref != nil
}

// Key returns the object member key, or "" if the node is not an object
// member.
func (n *Node) Key() string {
	return string(n.key)
}

// KeyBytes returns the object member key as bytes. The slice must not be
// modified; it may alias memory supplied through AddConst.
func (n *Node) KeyBytes() []byte {
	return n.key
}

// Float returns the number payload.
func (n *Node) Float() (float64, error) {
	t := n.target()
	if t.kind != Number {
		return 0, fmt.Errorf("cannot convert %v to float", t.kind)
	}
	return t.num, nil
}

// Int returns the number payload converted to an int64.
func (n *Node) Int() (int64, error) {
	t := n.target()
	if t.kind != Number {
		return 0, fmt.Errorf("cannot convert %v to int", t.kind)
	}
	v := t.num
	if v > math.MaxInt64 {
		return 0, errors.New("float value overflows int64")
	}
	if v < math.MinInt64 {
		return 0, errors.New("float value underflows int64")
	}
	return int64(v), nil
}

// Bool returns the boolean payload.
func (n *Node) Bool() (bool, error) {
	switch n.Kind() {
	case True:
		return true, nil
	case False:
		return false, nil
	}
	return false, fmt.Errorf("value is not bool, but %v", n.Kind())
}

// String returns the string payload of a String or Raw node.
func (n *Node) String() (string, error) {
	b, err := n.StringBytes()
	return string(b), err
}

// StringBytes returns the string payload of a String or Raw node without
// copying. The slice must not be modified.
func (n *Node) StringBytes() ([]byte, error) {
	t := n.target()
	if t.kind != String && t.kind != Raw {
		return nil, fmt.Errorf("value is not string, but %v", t.kind)
	}
	return t.str, nil
}

// Interface returns the value converted to plain Go types.
// Objects are returned as map[string]interface{} with later duplicate keys
// winning, arrays as []interface{}, numbers as float64, strings as string,
// booleans as bool, null as nil and raw nodes as json.RawMessage.
func (n *Node) Interface() (interface{}, error) {
	t := n.target()
	switch t.kind {
	case Null:
		return nil, nil
	case True:
		return true, nil
	case False:
		return false, nil
	case Number:
		return t.num, nil
	case String:
		return string(t.str), nil
	case Raw:
		return json.RawMessage(t.str), nil
	case Array:
		dst := make([]interface{}, 0, len(t.children))
		for _, c := range t.children {
			elem, err := c.Interface()
			if err != nil {
				return nil, err
			}
			dst = append(dst, elem)
		}
		return dst, nil
	case Object:
		dst := make(map[string]interface{}, len(t.children))
		for _, c := range t.children {
			elem, err := c.Interface()
			if err != nil {
				return nil, fmt.Errorf("converting element %q: %w", c.Key(), err)
			}
			dst[c.Key()] = elem
		}
		return dst, nil
	}
	return nil, fmt.Errorf("unknown kind: %v", t.kind)
}

// NewNull returns a new null node.
func NewNull() *Node {
	return &Node{kind: Null}
}

// NewTrue returns a new true node.
func NewTrue() *Node {
	return &Node{kind: True}
}

// NewFalse returns a new false node.
func NewFalse() *Node {
	return &Node{kind: False}
}

// NewBool returns a new true or false node.
func NewBool(b bool) *Node {
	if b {
		return NewTrue()
	}
	return NewFalse()
}

// NewNumber returns a new number node.
func NewNumber(num float64) *Node {
	return &Node{kind: Number, num: num}
}

// NewString returns a new string node holding a copy of s.
func NewString(s string) *Node {
	return &Node{kind: String, str: []byte(s)}
}

// NewRaw returns a node holding pre-serialized JSON.
// The text is emitted verbatim by the printer; no validation is performed.
func NewRaw(raw string) *Node {
	return &Node{kind: Raw, str: []byte(raw)}
}

// NewArray returns a new empty array node.
func NewArray() *Node {
	return &Node{kind: Array}
}

// NewObject returns a new empty object node.
func NewObject() *Node {
	return &Node{kind: Object}
}

// NewIntArray returns an array of number nodes.
func NewIntArray(numbers []int) *Node {
	a := NewArray()
	a.children = make([]*Node, 0, len(numbers))
	for _, v := range numbers {
		a.children = append(a.children, NewNumber(float64(v)))
	}
	return a
}

// NewFloatArray returns an array of number nodes.
func NewFloatArray(numbers []float32) *Node {
	a := NewArray()
	a.children = make([]*Node, 0, len(numbers))
	for _, v := range numbers {
		a.children = append(a.children, NewNumber(float64(v)))
	}
	return a
}

// NewDoubleArray returns an array of number nodes.
func NewDoubleArray(numbers []float64) *Node {
	a := NewArray()
	a.children = make([]*Node, 0, len(numbers))
	for _, v := range numbers {
		a.children = append(a.children, NewNumber(v))
	}
	return a
}

// NewStringArray returns an array of string nodes.
func NewStringArray(strings []string) *Node {
	a := NewArray()
	a.children = make([]*Node, 0, len(strings))
	for _, v := range strings {
		a.children = append(a.children, NewString(v))
	}
	return a
}

// Equal reports whether two trees hold the same values.
// Keys compare byte-exact, with no Unicode normalization. References
// compare equal to the node they borrow from.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	at, bt := a.target(), b.target()
	if at.kind != bt.kind {
		return false
	}
	switch at.kind {
	case Number:
		if at.num != bt.num {
			return false
		}
	case String, Raw:
		if string(at.str) != string(bt.str) {
			return false
		}
	case Array, Object:
		if len(at.children) != len(bt.children) {
			return false
		}
		for i := range at.children {
			ac, bc := at.children[i], bt.children[i]
			if string(ac.key) != string(bc.key) {
				return false
			}
			if !Equal(ac, bc) {
				return false
			}
		}
	}
	return true
}
