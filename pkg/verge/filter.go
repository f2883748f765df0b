package verge

import (
	"fmt"
	"strings"
	"time"
)

// Filter comparison operators understood by the upstream API.
const (
	OpEquals       = "eq"
	OpContains     = "ct"
	OpGreaterEqual = "ge"
	OpLessEqual    = "le"
	OpLessThan     = "lt"
	OpGreaterThan  = "gt"
)

// Criterion is one structured selection condition, rendered into the
// platform's textual filter grammar. The variant set is closed: use the
// Equals, Contains, Compare, All, Any, and WildcardName constructors.
type Criterion interface {
	render() string
}

type exactMatch struct {
	field string
	value string
}

func (c exactMatch) render() string {
	return fmt.Sprintf("%s %s '%s'", c.field, OpEquals, c.value)
}

type containsMatch struct {
	field     string
	substring string
}

func (c containsMatch) render() string {
	return fmt.Sprintf("%s %s '%s'", c.field, OpContains, c.substring)
}

type comparison struct {
	field string
	op    string
	value interface{}
}

func (c comparison) render() string {
	return fmt.Sprintf("%s %s %s", c.field, c.op, filterLiteral(c.value))
}

type booleanGroup struct {
	op       string
	children []Criterion
}

func (g booleanGroup) render() string {
	parts := make([]string, 0, len(g.children))

	for _, child := range g.children {
		if child == nil {
			continue
		}

		rendered := child.render()
		if rendered != "" {
			parts = append(parts, rendered)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	if len(parts) == 1 {
		return parts[0]
	}

	joined := strings.Join(parts, " "+g.op+" ")
	if g.op == "or" {
		return "(" + joined + ")"
	}

	return joined
}

// Equals matches records whose field equals value exactly. No escaping is
// performed on value; this mirrors the upstream grammar, which has no
// escape syntax for quotes inside literals.
func Equals(field, value string) Criterion {
	return exactMatch{field: field, value: value}
}

// Contains matches records whose field contains substring.
func Contains(field, substring string) Criterion {
	return containsMatch{field: field, substring: substring}
}

// Compare builds a relational criterion. String values render quoted;
// numeric, boolean, and time values render unquoted (times as Unix epoch
// seconds).
func Compare(field, op string, value interface{}) Criterion {
	return comparison{field: field, op: op, value: value}
}

// All groups criteria with "and". Nil and empty members contribute nothing.
func All(children ...Criterion) Criterion {
	return booleanGroup{op: "and", children: children}
}

// Any groups criteria with "or". A multi-member group renders
// parenthesized; a single member renders as itself.
func Any(children ...Criterion) Criterion {
	return booleanGroup{op: "or", children: children}
}

// WildcardName converts a glob-style pattern into a server-side criterion.
// Patterns without wildcard characters become exact matches. Patterns with
// "*" or "?" are reduced to a substring ("ct") match on the literal
// remainder, which over-matches relative to glob semantics; callers apply
// MatchGlob on the result set when exact glob filtering is required. A
// pattern that reduces to nothing (for example "*") returns nil so that no
// filter term is emitted.
func WildcardName(field, pattern string) Criterion {
	if !strings.ContainsAny(pattern, "*?") {
		return Equals(field, pattern)
	}

	stripped := strings.Map(func(r rune) rune {
		if r == '*' || r == '?' {
			return -1
		}

		return r
	}, pattern)

	if stripped == "" {
		return nil
	}

	return Contains(field, stripped)
}

// MatchGlob reports whether name matches a glob pattern where "*" matches
// any run of characters and "?" matches exactly one. Used by callers to
// re-filter "ct" over-matches client side.
func MatchGlob(pattern, name string) bool {
	return matchGlob([]rune(pattern), []rune(name))
}

func matchGlob(pattern, name []rune) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			for i := 0; i <= len(name); i++ {
				if matchGlob(pattern[1:], name[i:]) {
					return true
				}
			}

			return false
		case '?':
			if len(name) == 0 {
				return false
			}
		default:
			if len(name) == 0 || name[0] != pattern[0] {
				return false
			}
		}

		pattern = pattern[1:]
		name = name[1:]
	}

	return len(name) == 0
}

// Render joins independent top-level criteria with "and" and returns the
// complete filter string. An empty or all-empty criteria list renders to
// "" so that no filter parameter is emitted at all.
func Render(criteria ...Criterion) string {
	return booleanGroup{op: "and", children: criteria}.render()
}

// filterLiteral renders a comparison operand. Strings are quoted; numbers
// and booleans pass through; times become Unix epoch seconds, which is the
// wire format for timestamp fields.
func filterLiteral(value interface{}) string {
	switch v := value.(type) {
	case string:
		return "'" + v + "'"
	case time.Time:
		return fmt.Sprintf("%d", v.Unix())
	default:
		return fmt.Sprintf("%v", v)
	}
}
