package internal

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, input string) *Node {
	t.Helper()
	n, err := Parse([]byte(input), ParseOptions{})
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return n
}

func TestMarshalCompact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"null", `null`, `null`},
		{"bool", ` true `, `true`},
		{"integer", `-42`, `-42`},
		{"real", `3.50`, `3.5`},
		{"integral real", `2.0`, `2.0`},
		{"exponent", `1e3`, `1000.0`},
		{"string", `"tab\there"`, `"tab\there"`},
		{"empty array", `[ ]`, `[]`},
		{"empty object", `{ }`, `{}`},
		{"nested", "{\n  \"a\": [1, 2.5, \"x\"],\n  \"b\": {\"c\": null}\n}", `{"a":[1,2.5,"x"],"b":{"c":null}}`},
		{"key order", `{"z":1,"a":2,"m":3}`, `{"z":1,"a":2,"m":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustParse(t, tt.input)
			defer n.Release()

			out, err := Marshal(n, PrintOptions{})
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("Marshal = %s, want %s", out, tt.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	input := `{"s":"line\nbreak \"quoted\" \\ slash","i":9007199254740993,"r":0.1,"a":[true,false,null,[]]}`
	n := mustParse(t, input)
	defer n.Release()

	out, err := Marshal(n, PrintOptions{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != input {
		t.Errorf("Marshal = %s, want %s", out, input)
	}

	again := mustParse(t, string(out))
	defer again.Release()
	if again.Get("i").IntegerValue() != 9007199254740993 {
		t.Error("Integer precision lost in round trip")
	}
}

func TestMarshalEscapeHTML(t *testing.T) {
	n := NewString("<a>&</a>")
	defer n.Release()

	plain, err := Marshal(n, PrintOptions{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(plain) != `"<a>&</a>"` {
		t.Errorf("Marshal = %s", plain)
	}

	escaped, err := Marshal(n, PrintOptions{EscapeHTML: true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(escaped) != `"\u003ca\u003e\u0026\u003c/a\u003e"` {
		t.Errorf("Marshal = %s", escaped)
	}
}

func TestAppendJSON(t *testing.T) {
	n := NewInteger(7)
	defer n.Release()

	out, err := AppendJSON([]byte("x="), n, PrintOptions{})
	if err != nil {
		t.Fatalf("AppendJSON failed: %v", err)
	}
	if string(out) != "x=7" {
		t.Errorf("AppendJSON = %s, want x=7", out)
	}
}

func TestMarshalErrors(t *testing.T) {
	if _, err := Marshal(nil, PrintOptions{}); !errors.Is(err, ErrNilNode) {
		t.Errorf("error = %v, want ErrNilNode", err)
	}

	n := NewObject()
	n.Release()
	if _, err := Marshal(n, PrintOptions{}); !errors.Is(err, ErrReleased) {
		t.Errorf("error = %v, want ErrReleased", err)
	}
}
