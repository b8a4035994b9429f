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

// Size returns the number of children of an array or object, zero for
// leaves.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return len(n.target().children)
}

// Index returns the i'th child, or nil when out of range. The walk is
// valid for arrays and objects alike.
func (n *Node) Index(i int) *Node {
	if n == nil {
		return nil
	}
	t := n.target()
	if i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

// Get returns the first member whose key matches name byte for byte, or
// nil. Keys are case sensitive and compare without Unicode normalization.
func (n *Node) Get(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.target().children {
		if string(c.key) == name {
			return c
		}
	}
	return nil
}

// Has reports whether the object has a member with the given key.
func (n *Node) Has(name string) bool {
	return n.Get(name) != nil
}

// Append adds item to the end of an array's child list. The parent takes
// ownership; item must not already live in another tree.
func (n *Node) Append(item *Node) {
	if n == nil || item == nil {
		return
	}
	t := n.target()
	t.children = append(t.children, item)
}

// Add appends item to an object under a copy of name. Any key the item
// already carried is replaced. Duplicate keys are allowed and preserved in
// insertion order.
func (n *Node) Add(name string, item *Node) {
	if n == nil || item == nil {
		return
	}
	item.key = []byte(name)
	item.keyConst = false
	n.Append(item)
}

// AddConst appends item to an object with the key aliasing name directly,
// without a copy. The caller guarantees that name outlives the item and is
// never modified. Duplicate keeps its own copy regardless.
func (n *Node) AddConst(name []byte, item *Node) {
	if n == nil || item == nil {
		return
	}
	item.key = name
	item.keyConst = true
	n.Append(item)
}

// AppendReference adds a shallow borrow of item to an array. The new node
// shares item's payload without owning it; constructing it is O(1) and
// never deep-copies.
func (n *Node) AppendReference(item *Node) {
	if n == nil || item == nil {
		return
	}
	n.Append(&Node{ref: item})
}

// AddReference adds a shallow borrow of item to an object under a copy of
// name.
func (n *Node) AddReference(name string, item *Node) {
	if n == nil || item == nil {
		return
	}
	n.Add(name, &Node{ref: item})
}

// Detach unlinks and returns the i'th child, or nil when out of range.
// The caller owns the returned node; it no longer appears in any child
// list.
func (n *Node) Detach(i int) *Node {
	if n == nil {
		return nil
	}
	t := n.target()
	if i < 0 || i >= len(t.children) {
		return nil
	}
	c := t.children[i]
	t.children = append(t.children[:i], t.children[i+1:]...)
	return c
}

// DetachKey unlinks and returns the first member matching name, or nil.
func (n *Node) DetachKey(name string) *Node {
	if n == nil {
		return nil
	}
	t := n.target()
	for i, c := range t.children {
		if string(c.key) == name {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return c
		}
	}
	return nil
}

// Remove detaches and discards the i'th child.
func (n *Node) Remove(i int) {
	n.Detach(i)
}

// RemoveKey detaches and discards the first member matching name.
func (n *Node) RemoveKey(name string) {
	n.DetachKey(name)
}

// Insert places item before position i, shifting the remaining children.
// A position at or past the end appends.
func (n *Node) Insert(i int, item *Node) {
	if n == nil || item == nil {
		return
	}
	t := n.target()
	if i < 0 {
		i = 0
	}
	if i >= len(t.children) {
		t.children = append(t.children, item)
		return
	}
	t.children = append(t.children, nil)
	copy(t.children[i+1:], t.children[i:])
	t.children[i] = item
}

// Replace splices item in place of the i'th child, discarding the old
// one. Out of range is a no-op.
func (n *Node) Replace(i int, item *Node) {
	if n == nil || item == nil {
		return
	}
	t := n.target()
	if i < 0 || i >= len(t.children) {
		return
	}
	t.children[i] = item
}

// ReplaceKey splices item in place of the first member matching name,
// copying the name onto item. No match is a no-op.
func (n *Node) ReplaceKey(name string, item *Node) {
	if n == nil || item == nil {
		return
	}
	t := n.target()
	for i, c := range t.children {
		if string(c.key) == name {
			item.key = []byte(name)
			item.keyConst = false
			t.children[i] = item
			return
		}
	}
}

// Duplicate returns an owned copy of the node: never a reference, with an
// owned copy of the key even when the original aliased caller memory.
// With recurse the whole subtree is copied; without it container copies
// start out empty.
func (n *Node) Duplicate(recurse bool) *Node {
	if n == nil {
		return nil
	}
	t := n.target()
	d := &Node{kind: t.kind, num: t.num}
	if t.str != nil {
		d.str = append([]byte(nil), t.str...)
	}
	if n.key != nil {
		d.key = append([]byte(nil), n.key...)
	}
	if recurse && len(t.children) > 0 {
		d.children = make([]*Node, 0, len(t.children))
		for _, c := range t.children {
			d.children = append(d.children, c.Duplicate(true))
		}
	}
	return d
}
