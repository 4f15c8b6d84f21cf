package trace

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

const whitespace = " \t\r\n"

// ReviveFunc is called for every array element (key is its int index) and
// every object field (key is its string name) when the enclosing container
// closes. The returned value replaces the parsed one.
type ReviveFunc func(key, value any) (any, error)

// Parse decodes one JSON value spread over pages. Strings decode to
// string, integers to int64, other numbers to float64, arrays to []any and
// objects to map[string]any, each passed through revive on the way up.
// A nil revive keeps values as parsed.
func Parse(pages []string, revive ReviveFunc) (any, error) {
	r, err := NewReader(pages)
	if err != nil {
		return nil, err
	}
	if revive == nil {
		revive = func(_, v any) (any, error) { return v, nil }
	}
	p := &parser{r: r, revive: revive}

	v, err := p.value("")
	if err != nil {
		return nil, err
	}
	if c, err := r.Ignore(whitespace); err == nil {
		return nil, fmt.Errorf("%w: unexpected %q after value at %s", ErrSyntax, c, r.Pos())
	}
	return v, nil
}

type parser struct {
	r      *Reader
	revive ReviveFunc
}

// value parses the value at the cursor. terminators ends a primitive; an
// empty set means the primitive runs to the end of input.
func (p *parser) value(terminators string) (any, error) {
	c, err := p.r.Ignore(whitespace)
	if err != nil {
		return nil, err
	}
	switch c {
	case '"':
		return p.str()
	case '[':
		return p.array()
	case '{':
		return p.object()
	case ']', '}', ',', ':':
		return nil, fmt.Errorf("%w: unexpected %q at %s", ErrSyntax, c, p.r.Pos())
	}
	return p.primitive(terminators)
}

// str scans to the closing quote, stepping over escaped characters, and
// hands the literal to the JSON decoder for unescaping.
func (p *parser) str() (string, error) {
	start := p.r.Pos()
	p.r.advance() // opening quote
	for {
		c, err := p.r.Next()
		if err != nil {
			return "", fmt.Errorf("%w: string starting at %s", ErrUnexpectedEOF, start)
		}
		if c == '\\' {
			if _, err := p.r.Next(); err != nil {
				return "", fmt.Errorf("%w: string starting at %s", ErrUnexpectedEOF, start)
			}
			continue
		}
		if c == '"' {
			break
		}
	}

	lit := p.r.Slice(start, p.r.Pos())
	var s string
	if err := json.Unmarshal([]byte(lit), &s); err != nil {
		return "", fmt.Errorf("%w: bad string at %s: %w", ErrSyntax, start, err)
	}
	return s, nil
}

func (p *parser) array() ([]any, error) {
	start := p.r.Pos()
	p.r.advance() // [
	out := []any{}

	c, err := p.r.Ignore(whitespace)
	if err != nil {
		return nil, p.unmatched(start)
	}
	if c == ']' {
		p.r.advance()
		return out, nil
	}

	for {
		v, err := p.value(",]")
		if err != nil {
			return nil, err
		}
		if v, err = p.revive(len(out), v); err != nil {
			return nil, fmt.Errorf("trace: revive [%d] at %s: %w", len(out), p.r.Pos(), err)
		}
		out = append(out, v)

		c, err := p.r.Ignore(whitespace)
		if err != nil {
			return nil, p.unmatched(start)
		}
		p.r.advance()
		switch c {
		case ',':
			continue
		case ']':
			return out, nil
		}
		return nil, fmt.Errorf("%w: expected ',' or ']' at %s, array starts at %s", ErrSyntax, p.r.Pos(), start)
	}
}

func (p *parser) object() (map[string]any, error) {
	start := p.r.Pos()
	p.r.advance() // {
	out := map[string]any{}

	c, err := p.r.Ignore(whitespace)
	if err != nil {
		return nil, p.unmatched(start)
	}
	if c == '}' {
		p.r.advance()
		return out, nil
	}

	for {
		c, err := p.r.Ignore(whitespace)
		if err != nil {
			return nil, p.unmatched(start)
		}
		if c != '"' {
			return nil, fmt.Errorf("%w: expected '\"' at %s", ErrSyntax, p.r.Pos())
		}
		key, err := p.str()
		if err != nil {
			return nil, err
		}

		c, err = p.r.Ignore(whitespace)
		if err != nil {
			return nil, p.unmatched(start)
		}
		if c != ':' {
			return nil, fmt.Errorf("%w: expected ':' at %s", ErrSyntax, p.r.Pos())
		}
		p.r.advance()

		v, err := p.value(",}")
		if err != nil {
			return nil, err
		}
		if v, err = p.revive(key, v); err != nil {
			return nil, fmt.Errorf("trace: revive %q at %s: %w", key, p.r.Pos(), err)
		}
		out[key] = v

		c, err = p.r.Ignore(whitespace)
		if err != nil {
			return nil, p.unmatched(start)
		}
		p.r.advance()
		switch c {
		case ',':
			continue
		case '}':
			return out, nil
		}
		return nil, fmt.Errorf("%w: expected ',' or '}' at %s, object starts at %s", ErrSyntax, p.r.Pos(), start)
	}
}

// primitive scans forward to a terminator and decodes the span as a
// number, true, false or null.
func (p *parser) primitive(terminators string) (any, error) {
	start := p.r.Pos()
	if _, err := p.r.Seek(terminators); err != nil && terminators != "" {
		return nil, fmt.Errorf("%w: parsing primitive from %s", ErrUnexpectedEOF, start)
	}
	span := strings.TrimRight(p.r.Slice(start, p.r.Pos()), whitespace)

	if !json.Valid([]byte(span)) {
		return nil, fmt.Errorf("%w: bad literal %q at %s", ErrSyntax, span, start)
	}
	switch span {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	return number(json.Number(span), start)
}

// number keeps integers as int64 and everything else as float64.
func number(n json.Number, at Pos) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q at %s: %w", ErrSyntax, s, at, err)
	}
	return f, nil
}

func (p *parser) unmatched(start Pos) error {
	return fmt.Errorf("%w: unmatched bracket at %s", ErrUnexpectedEOF, start)
}
