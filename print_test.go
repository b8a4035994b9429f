package jsondom

import (
	"bytes"
	"testing"
)

func TestPrintPretty(t *testing.T) {
	tests := []struct {
		name string
		js   string
		want string
	}{
		{
			name: "object",
			js:   `{"a":1,"b":[true,null]}`,
			want: "{\n\t\"a\":\t1,\n\t\"b\":\t[true, null]\n}",
		},
		{
			name: "nested-object",
			js:   `{"o":{"x":"y"}}`,
			want: "{\n\t\"o\":\t{\n\t\t\"x\":\t\"y\"\n\t}\n}",
		},
		{
			name: "empty-object",
			js:   `{}`,
			want: "{\n}",
		},
		{
			name: "empty-object-nested",
			js:   `{"e":{}}`,
			want: "{\n\t\"e\":\t{\n\t}\n}",
		},
		{
			name: "empty-array",
			js:   `[]`,
			want: "[]",
		},
		{
			name: "array-one-line",
			js:   `[1,[2,3],{"k":4}]`,
			want: "[1, [2, 3], {\n\t\t\"k\":\t4\n\t}]",
		},
		{
			name: "scalar",
			js:   `true`,
			want: "true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.js))
			if err != nil {
				t.Fatal(err)
			}
			got, err := Print(n)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
			// Formatted output parses back to the same document.
			back, err := Parse(got)
			if err != nil {
				t.Fatalf("reparsing pretty output: %v", err)
			}
			if !Equal(n, back) {
				t.Error("pretty output is not value-equivalent")
			}
		})
	}
}

func TestPrintEscapes(t *testing.T) {
	n := NewString("ctl:\x01\x1f quote:\" slash:/ back:\\ tab:\t")
	got, err := PrintCompact(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `"ctl:\u0001\u001f quote:\" slash:/ back:\\ tab:\t"`
	if string(got) != want {
		t.Errorf("PrintCompact() = %s, want %s", got, want)
	}
}

// Every control byte escapes on output and parses back to itself.
func TestPrintControlRoundTrip(t *testing.T) {
	for b := 1; b < 0x20; b++ {
		n := NewString(string(rune(b)))
		out, err := PrintCompact(n)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.IndexByte(out, byte(b)) >= 0 {
			t.Errorf("byte %#x not escaped in %s", b, out)
		}
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("reparsing %s: %v", out, err)
		}
		s, _ := back.String()
		if s != string(rune(b)) {
			t.Errorf("byte %#x round-tripped to %q", b, s)
		}
	}
}

func TestPrintRaw(t *testing.T) {
	obj := NewObject()
	obj.Add("pre", NewRaw(`{"x": 00}`))
	got, err := PrintCompact(obj)
	if err != nil {
		t.Fatal(err)
	}
	// Raw payloads are emitted verbatim, no escaping, no validation.
	if want := `{"pre":{"x": 00}}`; string(got) != want {
		t.Errorf("PrintCompact() = %s, want %s", got, want)
	}
}

func TestPrintBuffered(t *testing.T) {
	n, err := Parse([]byte(`{"a":[1,2,3],"b":"text"}`))
	if err != nil {
		t.Fatal(err)
	}
	want, err := PrintCompact(n)
	if err != nil {
		t.Fatal(err)
	}
	// Any starting size must converge on the same output.
	for _, prebuffer := range []int{0, 1, 5, 64, 4096} {
		got, err := PrintBuffered(n, prebuffer, false)
		if err != nil {
			t.Fatalf("PrintBuffered(%d) error = %v", prebuffer, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("PrintBuffered(%d) = %s, want %s", prebuffer, got, want)
		}
	}
}

func TestPrintPreallocated(t *testing.T) {
	n, err := Parse([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 7)
	written, err := PrintPreallocated(n, buf, false)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:written]) != `[1,2,3]` {
		t.Errorf("wrote %s", buf[:written])
	}

	// One byte short must fail without allocating, not truncate.
	if _, err := PrintPreallocated(n, make([]byte, 6), false); err != ErrBufferFull {
		t.Errorf("err = %v, want ErrBufferFull", err)
	}
	if _, err := PrintPreallocated(n, nil, false); err != ErrBufferFull {
		t.Errorf("err = %v, want ErrBufferFull", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	n, err := Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("MarshalJSON() = %s", got)
	}
	buf, err := n.MarshalJSONBuffer([]byte("x: "))
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `x: {"a":1}` {
		t.Errorf("MarshalJSONBuffer() = %s", buf)
	}
}

func TestPrintNilNode(t *testing.T) {
	if _, err := PrintCompact(nil); err == nil {
		t.Error("printing nil should fail")
	}
}
