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
	"strconv"
)

// parseNumber scans the longest strict-JSON number token at p.pos and
// stores its value as a float64. Hex floats, leading plus signs, bare
// leading dots and redundant leading zeros are not part of the token, so
// inputs like "0x1A" or "01" stop after the first digit and the leftover
// byte fails in the surrounding context.
func (p *parser) parseNumber(n *Node) error {
	data := p.data
	start := p.pos
	i := start
	if i < len(data) && data[i] == '-' {
		i++
	}

	ds := i
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		i++
	}
	if i == ds {
		return p.syntaxErr(start)
	}
	if data[ds] == '0' && i > ds+1 {
		// "01" and friends: keep the single zero, the rest is garbage.
		i = ds + 1
	}

	if i+1 < len(data) && data[i] == '.' && data[i+1] >= '0' && data[i+1] <= '9' {
		i += 2
		for i < len(data) && data[i] >= '0' && data[i] <= '9' {
			i++
		}
	}

	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		if j < len(data) && data[j] >= '0' && data[j] <= '9' {
			for j < len(data) && data[j] >= '0' && data[j] <= '9' {
				j++
			}
			i = j
		}
	}

	f, err := strconv.ParseFloat(string(data[start:i]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return p.syntaxErr(start)
	}
	n.kind = Number
	n.num = f
	p.pos = i
	return nil
}
