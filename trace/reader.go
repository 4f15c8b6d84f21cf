package trace

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is a cursor into a page sequence. Page and Offset locate the byte;
// Line and Col (both 1-based) are kept for diagnostics.
type Pos struct {
	Page   int
	Offset int
	Line   int
	Col    int
}

// String formats the position as line:col followed by the page location.
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col) +
		" (page " + strconv.Itoa(p.Page) + ", offset " + strconv.Itoa(p.Offset) + ")"
}

// Reader walks a sequence of text pages as one stream without joining
// them. Page boundaries are invisible to callers.
type Reader struct {
	pages []string
	pos   Pos
}

// NewReader creates a Reader positioned at the first byte. Empty pages are
// rejected: they would make two distinct positions denote the same byte.
func NewReader(pages []string) (*Reader, error) {
	for i, p := range pages {
		if p == "" {
			return nil, fmt.Errorf("%w: page %d", ErrEmptyPage, i)
		}
	}
	return &Reader{pages: pages, pos: Pos{Line: 1, Col: 1}}, nil
}

// Pos returns the current cursor.
func (r *Reader) Pos() Pos {
	return r.pos
}

// EOF reports whether every page has been consumed.
func (r *Reader) EOF() bool {
	return r.pos.Page >= len(r.pages)
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, error) {
	if r.EOF() {
		return 0, r.eofError()
	}
	return r.pages[r.pos.Page][r.pos.Offset], nil
}

// Next consumes and returns the next byte, moving to the following page
// when the current one is exhausted.
func (r *Reader) Next() (byte, error) {
	if r.EOF() {
		return 0, r.eofError()
	}
	c := r.pages[r.pos.Page][r.pos.Offset]
	r.pos.Offset++
	if r.pos.Offset >= len(r.pages[r.pos.Page]) {
		r.pos.Page++
		r.pos.Offset = 0
	}
	if c == '\n' {
		r.pos.Line++
		r.pos.Col = 1
	} else {
		r.pos.Col++
	}
	return c, nil
}

// Seek advances until the next byte is one of set and returns it without
// consuming it.
func (r *Reader) Seek(set string) (byte, error) {
	for {
		c, err := r.Peek()
		if err != nil {
			return 0, err
		}
		if strings.IndexByte(set, c) >= 0 {
			return c, nil
		}
		r.advance()
	}
}

// Ignore skips bytes in set and returns the first other byte without
// consuming it.
func (r *Reader) Ignore(set string) (byte, error) {
	for {
		c, err := r.Peek()
		if err != nil {
			return 0, err
		}
		if strings.IndexByte(set, c) < 0 {
			return c, nil
		}
		r.advance()
	}
}

// Slice returns the text between two cursors, start inclusive. Only the
// covered pages are concatenated.
func (r *Reader) Slice(start, end Pos) string {
	if start.Page == end.Page {
		if start.Page >= len(r.pages) {
			return ""
		}
		return r.pages[start.Page][start.Offset:end.Offset]
	}

	var b strings.Builder
	b.WriteString(r.pages[start.Page][start.Offset:])
	for i := start.Page + 1; i < end.Page && i < len(r.pages); i++ {
		b.WriteString(r.pages[i])
	}
	if end.Page < len(r.pages) {
		b.WriteString(r.pages[end.Page][:end.Offset])
	}
	return b.String()
}

func (r *Reader) advance() {
	_, _ = r.Next()
}

func (r *Reader) eofError() error {
	return fmt.Errorf("%w at %s", ErrUnexpectedEOF, r.pos)
}
