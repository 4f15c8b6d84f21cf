package trace

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// splitAt cuts s into pages at the given offsets.
func splitAt(s string, offsets ...int) []string {
	var pages []string
	prev := 0
	for _, o := range offsets {
		if o > prev && o < len(s) {
			pages = append(pages, s[prev:o])
			prev = o
		}
	}
	return append(pages, s[prev:])
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`1`, int64(1)},
		{`-42`, int64(-42)},
		{`1.5`, 1.5},
		{`1.0`, 1.0},
		{`2e3`, 2000.0},
		{`true`, true},
		{`false`, false},
		{`null`, nil},
		{`"hi"`, "hi"},
		{`"q\"uote\\"`, `q"uote\`},
		{`"é🐄"`, "é\U0001F404"},
		{`[]`, []any{}},
		{`{}`, map[string]any{}},
		{` [ 1 , "a" , [ ] , { "k" : null } ] `, []any{int64(1), "a", []any{}, map[string]any{"k": nil}}},
		{`{"a":[1,2],"b":{"c":true}}`, map[string]any{"a": []any{int64(1), int64(2)}, "b": map[string]any{"c": true}}},
		{"\n{\n  \"x\": 9007199254740993\n}\n", map[string]any{"x": int64(9007199254740993)}},
	}

	for _, tt := range tests {
		got, err := Parse([]string{tt.in}, nil)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`[1,2`, ErrUnexpectedEOF},
		{`{"a":1`, ErrUnexpectedEOF},
		{`"abc`, ErrUnexpectedEOF},
		{`[1 2]`, ErrSyntax},
		{`[tru]`, ErrSyntax},
		{`{a:1}`, ErrSyntax},
		{`{"a" 1}`, ErrSyntax},
		{`[,]`, ErrSyntax},
		{`[1,]`, ErrSyntax},
		{`1 2`, ErrSyntax},
		{`[1] x`, ErrSyntax},
	}

	for _, tt := range tests {
		if _, err := Parse([]string{tt.in}, nil); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]string{"[\n  1,\n  tru\n]"}, nil)
	if err == nil {
		t.Fatal("Parse() error = nil")
	}
	if !strings.Contains(err.Error(), "3:3") {
		t.Errorf("error %q does not name line 3 col 3", err)
	}
}

func TestParsePageSplitInsensitive(t *testing.T) {
	doc := `{"name": "te\"sté", "nums": [12345, -6.25e-3, true, null], "nested": {"deep": [[], {}, "x"]}}`
	want, err := Parse([]string{doc}, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(doc); i++ {
		got, err := Parse(splitAt(doc, i), nil)
		if err != nil {
			t.Fatalf("split at %d: %v", i, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("split at %d: got %#v", i, got)
		}
	}

	// Every byte on its own page.
	pages := make([]string, len(doc))
	for i := range doc {
		pages[i] = doc[i : i+1]
	}
	got, err := Parse(pages, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("one byte per page: got %#v", got)
	}
}

func TestParseReviveOrder(t *testing.T) {
	var keys []any
	revive := func(key, v any) (any, error) {
		keys = append(keys, key)
		if s, ok := v.(string); ok {
			return strings.ToUpper(s), nil
		}
		return v, nil
	}

	got, err := Parse([]string{`{"a": ["x", ["y"]]}`}, revive)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": []any{"X", []any{"Y"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %#v, want %#v", got, want)
	}
	// Children are revived before the value containing them.
	wantKeys := []any{0, 0, 1, "a"}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("revive keys = %v, want %v", keys, wantKeys)
	}
}

func TestParseReviveError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Parse([]string{`[1]`}, func(_, _ any) (any, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Parse() error = %v, want boom", err)
	}
}
