//go:build go1.18
// +build go1.18

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
	"bytes"
	"encoding/json"
	"testing"
)

var fuzzSeeds = []string{
	`{}`, `[]`, `null`, `true`, `false`, `""`, `0`, `-1.5e-3`,
	`{"a":1,"b":[true,null],"c":"🐱"}`,
	`[1, 2, 3]`, `"A\n\t"`, `{"":""}`,
	`[[[[[[[[[["deep"]]]]]]]]]]`,
	`{ "a" : 1, "b":"x // y" }`,
	`1e999`, `0.00000001`, `123456789012345678901234567890`,
}

func FuzzParse(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		n, err := Parse(data)
		if err != nil {
			// Malformed input must carry an offset inside the input,
			// except for resource errors which carry none.
			if off := ErrorOffset(err); off < -1 || off > len(data) {
				t.Fatalf("error offset %d outside input of length %d", off, len(data))
			}
			if jErr := json.Unmarshal(data, new(interface{})); jErr == nil {
				// The stdlib is more lenient in spots (for example lone
				// surrogates become U+FFFD instead of failing). Log, don't fail.
				t.Logf("got error %v, but json.Unmarshal accepted the input", err)
			}
			t.Skip()
			return
		}

		out, err := PrintCompact(n)
		if err != nil {
			t.Fatalf("printing parsed tree: %v", err)
		}
		if !json.Valid(out) {
			// Raw control bytes inside strings are escaped on output, so
			// everything we print must validate.
			t.Fatalf("printed output not valid JSON: %q", out)
		}

		// The first print normalizes numeric lexemes and may round a value
		// across a format-selection cutoff; from the second print on the
		// output is a fixpoint of print(parse(.)).
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("reparsing own output %q: %v", out, err)
		}
		out2, err := PrintCompact(back)
		if err != nil {
			t.Fatal(err)
		}
		back2, err := Parse(out2)
		if err != nil {
			t.Fatalf("reparsing normalized output %q: %v", out2, err)
		}
		out3, err := PrintCompact(back2)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out2, out3) {
			t.Fatalf("print not stable: %q vs %q", out2, out3)
		}
	})
}

func FuzzMinify(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add([]byte(seed))
	}
	f.Add([]byte("{ \"a\" : 1, // c\n /* x */ \"b\":\"x // y\" }"))
	f.Add([]byte("/* unterminated"))
	f.Add([]byte("// just a comment"))
	f.Fuzz(func(t *testing.T, data []byte) {
		once := Minify(append([]byte(nil), data...))
		twice := Minify(append([]byte(nil), once...))
		if !bytes.Equal(once, twice) {
			t.Fatalf("minify not idempotent: %q -> %q -> %q", data, once, twice)
		}
		if len(once) > len(data) {
			t.Fatalf("minify grew the input: %d -> %d bytes", len(data), len(once))
		}
	})
}
