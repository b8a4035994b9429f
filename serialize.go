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
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

const serializedVersion = 1

const (
	blockTypeUncompressed byte = iota
	blockTypeS2
	blockTypeZstd
)

// CompressMode controls how serialized trees are compressed.
type CompressMode uint8

const (
	// CompressNone no compression whatsoever.
	CompressNone CompressMode = iota

	// CompressFast will apply light compression.
	CompressFast

	// CompressDefault applies normal compression.
	CompressDefault

	// CompressBest favors size over speed.
	CompressBest
)

// Serializer converts document trees to and from a compact binary
// representation. References are materialized as owned values on the way
// out, so deserialized trees never borrow.
// A Serializer can be reused, but not used concurrently.
type Serializer struct {
	comp       byte
	fasterComp bool

	payload []byte
}

// NewSerializer will create and initialize a Serializer.
func NewSerializer() *Serializer {
	initSerializerOnce.Do(initSerializer)
	var s Serializer
	s.CompressMode(CompressDefault)
	return &s
}

// CompressMode sets the compression applied by subsequent Serialize calls.
func (s *Serializer) CompressMode(c CompressMode) {
	switch c {
	case CompressNone:
		s.comp = blockTypeUncompressed
	case CompressFast:
		s.comp = blockTypeS2
		s.fasterComp = true
	case CompressDefault:
		s.comp = blockTypeS2
		s.fasterComp = false
	case CompressBest:
		s.comp = blockTypeZstd
	default:
		panic("unknown compression mode")
	}
}

var (
	zEnc *zstd.Encoder
	zDec *zstd.Decoder

	initSerializerOnce sync.Once
)

func initSerializer() {
	zEnc, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest), zstd.WithEncoderCRC(false))
	zDec, _ = zstd.NewReader(nil)
}

// Serialize the tree rooted at n and append the result to dst.
func (s *Serializer) Serialize(dst []byte, n *Node) ([]byte, error) {
	if n == nil {
		return nil, errors.New("cannot serialize nil node")
	}
	payload, err := appendSerialized(s.payload[:0], n)
	if err != nil {
		return nil, err
	}
	s.payload = payload

	dst = append(dst, serializedVersion, s.comp)
	var tmp [binary.MaxVarintLen64]byte
	dst = append(dst, tmp[:binary.PutUvarint(tmp[:], uint64(len(payload)))]...)

	switch s.comp {
	case blockTypeUncompressed:
		dst = append(dst, payload...)
	case blockTypeS2:
		if s.fasterComp {
			dst = append(dst, s2.Encode(nil, payload)...)
		} else {
			dst = append(dst, s2.EncodeBetter(nil, payload)...)
		}
	case blockTypeZstd:
		dst = zEnc.EncodeAll(payload, dst)
	}
	return dst, nil
}

// Deserialize a tree produced by Serialize.
func (s *Serializer) Deserialize(b []byte) (*Node, error) {
	if len(b) < 3 {
		return nil, errors.New("serialized block too short")
	}
	if b[0] != serializedVersion {
		return nil, fmt.Errorf("unknown serialized version %d", b[0])
	}
	comp := b[1]
	rawLen, off := binary.Uvarint(b[2:])
	if off <= 0 {
		return nil, errors.New("corrupt serialized block: bad length")
	}
	block := b[2+off:]

	var payload []byte
	var err error
	switch comp {
	case blockTypeUncompressed:
		payload = block
	case blockTypeS2:
		payload, err = s2.Decode(make([]byte, 0, rawLen), block)
		if err != nil {
			return nil, fmt.Errorf("decompressing serialized block: %w", err)
		}
	case blockTypeZstd:
		initSerializerOnce.Do(initSerializer)
		payload, err = zDec.DecodeAll(block, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("decompressing serialized block: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown compression type %d", comp)
	}
	if uint64(len(payload)) != rawLen {
		return nil, fmt.Errorf("unexpected payload length %d, want %d", len(payload), rawLen)
	}

	n, rest, err := decodeSerialized(payload, 0)
	if err != nil {
		return nil, err
	}
	if rest != len(payload) {
		return nil, fmt.Errorf("%d trailing bytes after tree", len(payload)-rest)
	}
	return n, nil
}

// appendSerialized encodes one node record: kind byte, key marker (zero
// for none, length+1 otherwise), then the kind-specific payload.
func appendSerialized(dst []byte, n *Node) ([]byte, error) {
	key := n.key
	n = n.target()
	var tmp [binary.MaxVarintLen64]byte

	dst = append(dst, byte(n.kind))
	if key == nil {
		dst = append(dst, 0)
	} else {
		dst = append(dst, tmp[:binary.PutUvarint(tmp[:], uint64(len(key))+1)]...)
		dst = append(dst, key...)
	}

	switch n.kind {
	case Null, True, False:
	case Number:
		binary.LittleEndian.PutUint64(tmp[:8], math.Float64bits(n.num))
		dst = append(dst, tmp[:8]...)
	case String, Raw:
		dst = append(dst, tmp[:binary.PutUvarint(tmp[:], uint64(len(n.str)))]...)
		dst = append(dst, n.str...)
	case Array, Object:
		dst = append(dst, tmp[:binary.PutUvarint(tmp[:], uint64(len(n.children)))]...)
		for _, c := range n.children {
			var err error
			dst, err = appendSerialized(dst, c)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("cannot serialize kind %v", n.kind)
	}
	return dst, nil
}

func decodeSerialized(b []byte, depth int) (*Node, int, error) {
	if depth >= maxDepthDefault {
		return nil, 0, errors.New("serialized tree exceeds maximum depth")
	}
	if len(b) < 2 {
		return nil, 0, errors.New("corrupt serialized block: truncated node")
	}
	n := &Node{kind: Kind(b[0])}
	pos := 1

	keyMark, off := binary.Uvarint(b[pos:])
	if off <= 0 {
		return nil, 0, errors.New("corrupt serialized block: bad key marker")
	}
	pos += off
	if keyMark > 0 {
		keyLen := int(keyMark - 1)
		if keyLen < 0 || pos+keyLen > len(b) {
			return nil, 0, errors.New("corrupt serialized block: key extends beyond block")
		}
		n.key = append([]byte(nil), b[pos:pos+keyLen]...)
		pos += keyLen
	}

	switch n.kind {
	case Null, True, False:
	case Number:
		if pos+8 > len(b) {
			return nil, 0, errors.New("corrupt serialized block: truncated number")
		}
		n.num = math.Float64frombits(binary.LittleEndian.Uint64(b[pos:]))
		pos += 8
	case String, Raw:
		length, off := binary.Uvarint(b[pos:])
		if off <= 0 {
			return nil, 0, errors.New("corrupt serialized block: bad string length")
		}
		pos += off
		if uint64(len(b)-pos) < length {
			return nil, 0, errors.New("corrupt serialized block: string extends beyond block")
		}
		n.str = append([]byte(nil), b[pos:pos+int(length)]...)
		pos += int(length)
	case Array, Object:
		count, off := binary.Uvarint(b[pos:])
		if off <= 0 {
			return nil, 0, errors.New("corrupt serialized block: bad child count")
		}
		pos += off
		if count > uint64(len(b)-pos) {
			// Each child record takes at least two bytes.
			return nil, 0, errors.New("corrupt serialized block: impossible child count")
		}
		for i := uint64(0); i < count; i++ {
			c, next, err := decodeSerialized(b[pos:], depth+1)
			if err != nil {
				return nil, 0, err
			}
			n.children = append(n.children, c)
			pos += next
		}
	default:
		return nil, 0, fmt.Errorf("corrupt serialized block: unknown kind %d", b[0])
	}
	return n, pos, nil
}
