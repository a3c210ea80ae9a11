package codereadr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/beevik/etree"
)

// Response is a parsed CodeReadr XML document. The client only interprets
// the status and error children of the root; everything else is left for
// the caller to navigate.
type Response struct {
	doc *etree.Document
}

// ParseResponse parses an XML body into a Response without checking its status.
func ParseResponse(body []byte) (*Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &ParseError{Err: ErrEmptyResponse}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := checkSingleRoot(doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &Response{doc: doc}, nil
}

// checkSingleRoot rejects documents that are not well-formed at the top
// level: exactly one element, with only whitespace text around it.
func checkSingleRoot(doc *etree.Document) error {
	elements := 0
	for _, token := range doc.Child {
		switch t := token.(type) {
		case *etree.Element:
			elements++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return ErrTrailingContent
			}
		}
	}

	switch {
	case elements == 0:
		return ErrEmptyResponse
	case elements > 1:
		return ErrTrailingContent
	}
	return nil
}

// Document returns the underlying etree document
func (r *Response) Document() *etree.Document {
	return r.doc
}

// Root returns the document's root element
func (r *Response) Root() *etree.Element {
	return r.doc.Root()
}

// Status returns the numeric value of the root's status child, or 0 when it
// is missing or not numeric.
func (r *Response) Status() int {
	return parseStatus(r.child("status"))
}

// ErrorMessage returns the text of the root's error child.
func (r *Response) ErrorMessage() string {
	return strings.TrimSpace(r.child("error"))
}

// OK reports whether the document carries a success status.
func (r *Response) OK() bool {
	return r.Status() == statusSuccess
}

// Text returns the text of the first element matching an etree path relative
// to the root, e.g. "data" or "user/username". Missing elements and invalid
// paths yield "".
func (r *Response) Text(path string) string {
	elems, err := r.Find(path)
	if err != nil || len(elems) == 0 {
		return ""
	}
	return elems[0].Text()
}

// Find returns all elements matching an etree path relative to the root.
func (r *Response) Find(path string) ([]*etree.Element, error) {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	return r.doc.Root().FindElementsPath(p), nil
}

// Time parses the timestamp at path in the API time zone.
func (r *Response) Time(path string) (time.Time, error) {
	value := strings.TrimSpace(r.Text(path))
	if value == "" {
		return time.Time{}, fmt.Errorf("no timestamp at %q", path)
	}

	loc, err := Location()
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.ParseInLocation(TimeLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp at %q: %w", path, err)
	}
	return t, nil
}

// Bytes serializes the document, indented by two spaces.
func (r *Response) Bytes() ([]byte, error) {
	doc := r.doc.Copy()
	doc.Indent(2)
	return doc.WriteToBytes()
}

// hasStatus reports whether the root carries a status child at all
func (r *Response) hasStatus() bool {
	return r.doc.Root().SelectElement("status") != nil
}

func (r *Response) child(tag string) string {
	elem := r.doc.Root().SelectElement(tag)
	if elem == nil {
		return ""
	}
	return elem.Text()
}

var (
	locOnce sync.Once
	loc     *time.Location
	locErr  error
)

// Location returns the API time zone, loaded once.
func Location() (*time.Location, error) {
	locOnce.Do(func() {
		loc, locErr = time.LoadLocation(APITimeZone)
	})
	return loc, locErr
}

// parseStatus reads a leading integer the way a loose numeric cast does:
// surrounding whitespace is ignored, trailing garbage is dropped, and
// anything without leading digits is 0.
func parseStatus(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
