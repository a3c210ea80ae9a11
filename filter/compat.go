package filter

import (
	"fmt"
	"regexp"
	"strings"
)

type shorthandPattern struct {
	re      *regexp.Regexp
	replace func(m []string) string
}

// Shorthand forms accepted on the command line, converted to expr syntax
var shorthandPatterns = []shorthandPattern{
	// field:"value" or field!:"value"
	{
		re: regexp.MustCompile(`\b([A-Za-z_]\w*)(!?):"([^"]*)"`),
		replace: func(m []string) string {
			if m[2] == "!" {
				return fmt.Sprintf(`%s != "%s"`, m[1], m[3])
			}
			return fmt.Sprintf(`%s == "%s"`, m[1], m[3])
		},
	},
	// field:>N, field:<=N, field:=N
	{
		re: regexp.MustCompile(`\b([A-Za-z_]\w*):(>=|<=|>|<|=)(-?\d+(?:\.\d+)?)`),
		replace: func(m []string) string {
			op := m[2]
			if op == "=" {
				op = "=="
			}
			return fmt.Sprintf(`num(%s) %s %s`, m[1], op, m[3])
		},
	},
	// field~"text" for case-insensitive substring match
	{
		re: regexp.MustCompile(`\b([A-Za-z_]\w*)~"([^"]*)"`),
		replace: func(m []string) string {
			return fmt.Sprintf(`contains(%s, "%s")`, m[1], m[2])
		},
	},
}

// ConvertShorthand converts shorthand filter syntax to expr syntax
func ConvertShorthand(filter string) string {
	if strings.TrimSpace(filter) == "" {
		return ""
	}

	// Uppercase logical operators
	filter = strings.ReplaceAll(filter, " AND ", " and ")
	filter = strings.ReplaceAll(filter, " OR ", " or ")
	filter = strings.ReplaceAll(filter, " NOT ", " not ")
	if rest, ok := strings.CutPrefix(filter, "NOT "); ok {
		filter = "not " + rest
	}

	for _, p := range shorthandPatterns {
		filter = p.re.ReplaceAllStringFunc(filter, func(match string) string {
			return p.replace(p.re.FindStringSubmatch(match))
		})
	}

	return filter
}

// IsShorthand checks if a filter uses shorthand syntax
func IsShorthand(filter string) bool {
	for _, p := range shorthandPatterns {
		if p.re.MatchString(filter) {
			return true
		}
	}
	return false
}
