package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/etree"

	"github.com/s0up4200/codereadr/codereadr"
)

// Record is the filterable view of one XML element. Attributes and leaf
// children map to their string values, children with their own children to
// nested Records, and repeated tags to []any.
type Record map[string]any

// NewRecord builds a Record from an element
func NewRecord(elem *etree.Element) Record {
	children := elem.ChildElements()
	rec := make(Record, len(elem.Attr)+len(children))

	for _, attr := range elem.Attr {
		rec[attr.Key] = attr.Value
	}

	for _, child := range children {
		var value any
		if len(child.ChildElements()) > 0 {
			value = NewRecord(child)
		} else {
			value = strings.TrimSpace(child.Text())
		}
		rec.add(child.Tag, value)
	}

	if len(children) == 0 {
		if text := strings.TrimSpace(elem.Text()); text != "" {
			rec.add("text", text)
		}
	}

	return rec
}

// RecordsOf returns a Record for every element matching path in the
// response, e.g. "user" or "service/question".
func RecordsOf(resp *codereadr.Response, path string) ([]Record, error) {
	elems, err := resp.Find(path)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(elems))
	for _, elem := range elems {
		records = append(records, NewRecord(elem))
	}
	return records, nil
}

// ID returns the record's id attribute, if any
func (r Record) ID() string {
	if id, ok := r["id"].(string); ok {
		return id
	}
	return ""
}

// Text returns the field value rendered as text
func (r Record) Text(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Keys returns the record's field names in sorted order
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (r Record) add(key string, value any) {
	switch existing := r[key].(type) {
	case nil:
		r[key] = value
	case []any:
		r[key] = append(existing, value)
	default:
		r[key] = []any{existing, value}
	}
}
