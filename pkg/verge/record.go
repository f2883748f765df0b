package verge

import (
	"encoding/json"
	"fmt"
	"time"
)

// KeyField is the identifying field present on every upstream record.
const KeyField = "$key"

// Record is one normalized row from an API response. Field names are kept
// exactly as the upstream returned them, including the "$key" identifier,
// so callers can apply their own validity filters.
type Record map[string]interface{}

// Key returns the record's "$key" identifier. The second return is false
// when the field is missing or not numeric; callers drop such records
// before surfacing them.
func (r Record) Key() (int, bool) {
	switch v := r[KeyField].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		key, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return int(key), true
	default:
		return 0, false
	}
}

// Name returns the record's "name" field, or "" when absent.
func (r Record) Name() string {
	name, _ := r["name"].(string)

	return name
}

// String returns the record's named field as a string, or "" when absent
// or not textual.
func (r Record) String(field string) string {
	s, _ := r[field].(string)

	return s
}

// Decode reshapes the record into a typed view via JSON round-trip.
func (r Record) Decode(v interface{}) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}

	return nil
}

// NormalizeRecords forces a decoded response body into a uniform ordered
// sequence of records. Arrays pass through in received order, a single
// object becomes a one-element sequence, and null or empty input yields an
// empty sequence. Null and non-object array entries are dropped.
func NormalizeRecords(body []byte) ([]Record, error) {
	if len(body) == 0 {
		return []Record{}, nil
	}

	var decoded interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	switch v := decoded.(type) {
	case nil:
		return []Record{}, nil
	case []interface{}:
		records := make([]Record, 0, len(v))

		for _, entry := range v {
			if obj, ok := entry.(map[string]interface{}); ok {
				records = append(records, Record(obj))
			}
		}

		return records, nil
	case map[string]interface{}:
		return []Record{Record(v)}, nil
	default:
		return []Record{}, nil
	}
}

// DecodeRecords reshapes a normalized sequence into a typed slice.
func DecodeRecords[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))

	for _, record := range records {
		var item T

		err := record.Decode(&item)
		if err != nil {
			return nil, err
		}

		out = append(out, item)
	}

	return out, nil
}

// EpochSeconds renders a timestamp in the wire format used by request
// bodies.
func EpochSeconds(t time.Time) int64 {
	return t.Unix()
}

// EpochMicros renders a timestamp in epoch microseconds, the format the
// log endpoint uses.
func EpochMicros(t time.Time) int64 {
	return t.UnixMicro()
}
