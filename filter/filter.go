// Package filter selects records from CodeReadr response documents using
// expr-lang expressions.
//
// Each repeated element of a response (a user, a device, a service) becomes
// a Record whose attributes and child elements are variables in the
// expression:
//
//	username == "alice"
//	contains(devicename, "gate") and num(id) > 300
//	daysSince(parseTime(last_scan)) < 7
//
// Shorthand such as status:"active" or id:>300 is converted to the
// equivalent expression before compiling.
package filter

import (
	"strings"
)

// defaultCompiler caches expressions used repeatedly by the CLI
var defaultCompiler = NewExprCompiler(WithCache(100))

// CompileFilter compiles an expression, converting shorthand syntax first
func CompileFilter(expression string) (CompiledFilter, error) {
	if IsShorthand(expression) {
		expression = ConvertShorthand(expression)
	}
	return defaultCompiler.Compile(expression)
}

// ParseAndCreateFilter parses a filter expression and returns a filter function.
// An empty expression matches everything.
func ParseAndCreateFilter(expression string) (func(Record) bool, error) {
	if strings.TrimSpace(expression) == "" {
		return func(Record) bool { return true }, nil
	}

	filter, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}
	return filter.Evaluate, nil
}

// Apply returns the records matching match, preserving order
func Apply(records []Record, match func(Record) bool) []Record {
	var matched []Record
	for _, record := range records {
		if match(record) {
			matched = append(matched, record)
		}
	}
	return matched
}
