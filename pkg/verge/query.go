package verge

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SortField is one ordering term. The wire form is "+field" ascending,
// "-field" descending.
type SortField struct {
	Field      string
	Descending bool
}

func (s SortField) String() string {
	if s.Descending {
		return "-" + s.Field
	}

	return "+" + s.Field
}

// Query represents the query-string portion of one API call: the rendered
// filter expression, an ordered field projection, sort terms, and an
// optional row limit. Field order is preserved exactly as supplied.
type Query struct {
	Filter string
	Fields []string
	Sort   []SortField
	Limit  int
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// WithFilter sets the rendered filter expression. Criteria are usually
// rendered with Render before being attached here.
func (q *Query) WithFilter(filter string) *Query {
	q.Filter = filter

	return q
}

// WithCriteria renders criteria and attaches the result as the filter.
func (q *Query) WithCriteria(criteria ...Criterion) *Query {
	q.Filter = Render(criteria...)

	return q
}

// WithFields appends projection expressions. Use Field, FieldAs, and
// FieldVia to build them.
func (q *Query) WithFields(fields ...string) *Query {
	q.Fields = append(q.Fields, fields...)

	return q
}

// WithSort appends an ordering term.
func (q *Query) WithSort(field string, descending bool) *Query {
	q.Sort = append(q.Sort, SortField{Field: field, Descending: descending})

	return q
}

// WithLimit caps the number of returned rows. Non-positive values leave
// the limit unset.
func (q *Query) WithLimit(limit int) *Query {
	q.Limit = limit

	return q
}

// Values renders the query as URL parameters. Keys and values are
// percent-encoded by url.Values.Encode at request time.
func (q *Query) Values() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Filter != "" {
		values.Set("filter", q.Filter)
	}

	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}

	if len(q.Sort) > 0 {
		terms := make([]string, len(q.Sort))
		for i, s := range q.Sort {
			terms[i] = s.String()
		}

		values.Set("sort", strings.Join(terms, ","))
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	return values
}

// FieldAs renders a projection that renames a field in the result set.
func FieldAs(field, alias string) string {
	return fmt.Sprintf("%s as %s", field, alias)
}

// FieldVia renders a relation dereference: the sub-field of a related
// record surfaced under an alias, e.g. "machine#status as status".
func FieldVia(relation, sub, alias string) string {
	return fmt.Sprintf("%s#%s as %s", relation, sub, alias)
}
