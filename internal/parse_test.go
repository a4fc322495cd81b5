package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{`null`, KindNull},
		{`true`, KindBool},
		{`false`, KindBool},
		{`42`, KindInteger},
		{`-7`, KindInteger},
		{`3.5`, KindReal},
		{`1e3`, KindReal},
		{`2.0`, KindReal},
		{`"text"`, KindString},
		{`[]`, KindArray},
		{`{}`, KindObject},
		{" \n\t{\"a\" : [1, 2]}\r\n", KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := Parse([]byte(tt.input), ParseOptions{})
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			defer n.Release()
			if n.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", n.Kind(), tt.kind)
			}
			if n.Refs() != 1 {
				t.Errorf("Refs() = %d, want 1", n.Refs())
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	n, err := Parse([]byte(`{"s":"a\"bé","i":-12,"r":0.25,"b":true,"n":null,"a":[1,"x",{"k":[]}]}`), ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer n.Release()

	if got := n.Get("s").StringValue(); got != "a\"bé" {
		t.Errorf("s = %q", got)
	}
	if got := n.Get("i").IntegerValue(); got != -12 {
		t.Errorf("i = %d", got)
	}
	if got := n.Get("r").RealValue(); got != 0.25 {
		t.Errorf("r = %v", got)
	}
	if !n.Get("b").BoolValue() {
		t.Error("b should be true")
	}
	if !n.Get("n").IsNull() {
		t.Error("n should be null")
	}

	arr := n.Get("a")
	if arr.Len() != 3 {
		t.Fatalf("len(a) = %d, want 3", arr.Len())
	}
	if !arr.Index(2).Get("k").IsArray() {
		t.Error("a[2].k should be an array")
	}

	keys := n.Keys()
	want := []string{"s", "i", "r", "b", "n", "a"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	n, err := Parse([]byte(`{"a":1,"b":2,"a":3}`), ParseOptions{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer n.Release()

	if n.Len() != 2 {
		t.Errorf("Len() = %d, want 2", n.Len())
	}
	if got := n.Get("a").IntegerValue(); got != 3 {
		t.Errorf("a = %d, want last value 3", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", ``, ErrSyntax},
		{"whitespace", `   `, ErrSyntax},
		{"truncated object", `{"a":1`, ErrSyntax},
		{"truncated literal", `tru`, ErrSyntax},
		{"trailing content", `{} {}`, ErrSyntax},
		{"trailing comma", `[1,2,]`, ErrSyntax},
		{"single quotes", `{'a':1}`, ErrSyntax},
		{"comment", `{"a":1 /* c */}`, ErrSyntax},
		{"bare word", `mongo`, ErrSyntax},
		{"integer overflow", `99999999999999999999`, ErrBadNumber},
		{"real overflow", `1e400`, ErrBadNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.input), ParseOptions{})
			if err == nil {
				n.Release()
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if n != nil {
				t.Error("Failed parse should return no node")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseLimits(t *testing.T) {
	t.Run("Size", func(t *testing.T) {
		_, err := Parse([]byte(`{"key":"value"}`), ParseOptions{MaxSize: 4})
		if !errors.Is(err, ErrTooLarge) {
			t.Errorf("error = %v, want ErrTooLarge", err)
		}
	})

	t.Run("Depth", func(t *testing.T) {
		deep := strings.Repeat("[", 6) + strings.Repeat("]", 6)

		if _, err := Parse([]byte(deep), ParseOptions{MaxDepth: 5}); !errors.Is(err, ErrTooDeep) {
			t.Errorf("error = %v, want ErrTooDeep", err)
		}

		n, err := Parse([]byte(deep), ParseOptions{MaxDepth: 6})
		if err != nil {
			t.Fatalf("Parse at the depth limit failed: %v", err)
		}
		n.Release()
	})

	t.Run("DepthInsideObject", func(t *testing.T) {
		input := `{"a":{"b":{"c":1}}}`
		if _, err := Parse([]byte(input), ParseOptions{MaxDepth: 2}); !errors.Is(err, ErrTooDeep) {
			t.Errorf("error = %v, want ErrTooDeep", err)
		}
	})
}
