package verge_test

import (
	"testing"

	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/stretchr/testify/assert"
)

func TestQueryValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    *verge.Query
		expected map[string]string
	}{
		{
			name:     "nil query",
			query:    nil,
			expected: map[string]string{},
		},
		{
			name:     "empty query",
			query:    verge.NewQuery(),
			expected: map[string]string{},
		},
		{
			name: "filter from criteria",
			query: verge.NewQuery().
				WithCriteria(verge.Equals("name", "web-01")),
			expected: map[string]string{
				"filter": "name eq 'web-01'",
			},
		},
		{
			name: "fields preserve order",
			query: verge.NewQuery().
				WithFields("$key", "name", "status"),
			expected: map[string]string{
				"fields": "$key,name,status",
			},
		},
		{
			name: "sort terms carry direction",
			query: verge.NewQuery().
				WithSort("name", false).
				WithSort("posted", true),
			expected: map[string]string{
				"sort": "+name,-posted",
			},
		},
		{
			name: "limit",
			query: verge.NewQuery().
				WithLimit(50),
			expected: map[string]string{
				"limit": "50",
			},
		},
		{
			name: "non-positive limit omitted",
			query: verge.NewQuery().
				WithLimit(0),
			expected: map[string]string{},
		},
		{
			name: "everything together",
			query: verge.NewQuery().
				WithCriteria(verge.Contains("name", "web")).
				WithFields("$key", verge.FieldVia("machine", "status", "status")).
				WithSort("name", false).
				WithLimit(10),
			expected: map[string]string{
				"filter": "name ct 'web'",
				"fields": "$key,machine#status as status",
				"sort":   "+name",
				"limit":  "10",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values := tt.query.Values()
			assert.Len(t, values, len(tt.expected))

			for key, expected := range tt.expected {
				assert.Equal(t, expected, values.Get(key))
			}
		})
	}
}

func TestFieldProjections(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ram as memory", verge.FieldAs("ram", "memory"))
	assert.Equal(t, "machine#status as status", verge.FieldVia("machine", "status", "status"))
}

func TestSortFieldString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+name", verge.SortField{Field: "name"}.String())
	assert.Equal(t, "-posted", verge.SortField{Field: "posted", Descending: true}.String())
}
