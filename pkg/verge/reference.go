package verge

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Reference identifies one resource instance of any family. The canonical
// textual form is "family/key", e.g. "vms/42", and that literal string is
// the wire form inside JSON request bodies.
type Reference struct {
	Family string
	Key    int
}

// NewReference validates and builds a reference.
func NewReference(family string, key int) (Reference, error) {
	if family == "" {
		return Reference{}, ErrEmptyFamily
	}

	if key <= 0 {
		return Reference{}, fmt.Errorf("%w: %d", ErrNonPositiveKey, key)
	}

	return Reference{Family: family, Key: key}, nil
}

// ParseReference parses the canonical "family/key" form.
func ParseReference(s string) (Reference, error) {
	family, keyText, found := strings.Cut(s, "/")
	if !found || strings.Contains(keyText, "/") {
		return Reference{}, fmt.Errorf("%w: %q", ErrMalformedRef, s)
	}

	key, err := strconv.Atoi(keyText)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q", ErrMalformedRef, s)
	}

	return NewReference(family, key)
}

// String returns the canonical textual form.
func (r Reference) String() string {
	return r.Family + "/" + strconv.Itoa(r.Key)
}

// IsZero reports whether the reference is unset.
func (r Reference) IsZero() bool {
	return r.Family == "" && r.Key == 0
}

// MarshalJSON emits the canonical string form used in request bodies.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON parses the canonical string form.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("unmarshaling reference: %w", err)
	}

	parsed, err := ParseReference(s)
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}

type refInputKind int

const (
	inputEmpty refInputKind = iota
	inputReference
	inputKey
	inputText
)

// ReferenceInput is the closed variant type for the heterogeneous values a
// caller may supply when naming a resource: an explicit reference, a bare
// key, or a string that is either a key in digit form or a display name.
type ReferenceInput struct {
	kind refInputKind
	ref  Reference
	key  int
	text string
}

// InputReference supplies an already-resolved reference.
func InputReference(ref Reference) ReferenceInput {
	return ReferenceInput{kind: inputReference, ref: ref}
}

// InputKey supplies a bare key; the family comes from the resolution hint.
func InputKey(key int) ReferenceInput {
	return ReferenceInput{kind: inputKey, key: key}
}

// InputString supplies either a key in digit form or a display name.
func InputString(text string) ReferenceInput {
	return ReferenceInput{kind: inputText, text: text}
}

// AsReference returns the explicit reference variant, if that is what was
// supplied.
func (in ReferenceInput) AsReference() (Reference, bool) {
	return in.ref, in.kind == inputReference
}

// AsKey returns a usable key: either the bare-key variant or a string
// consisting entirely of digits.
func (in ReferenceInput) AsKey() (int, bool) {
	switch in.kind {
	case inputKey:
		return in.key, in.key > 0
	case inputText:
		key, err := strconv.Atoi(in.text)
		if err != nil || key <= 0 {
			return 0, false
		}

		return key, true
	default:
		return 0, false
	}
}

// AsName returns the display-name variant: a non-empty, non-digit string.
func (in ReferenceInput) AsName() (string, bool) {
	if in.kind != inputText || in.text == "" {
		return "", false
	}

	if _, isKey := in.AsKey(); isKey {
		return "", false
	}

	return in.text, true
}

// IsEmpty reports whether no usable value was supplied.
func (in ReferenceInput) IsEmpty() bool {
	switch in.kind {
	case inputReference:
		return in.ref.IsZero()
	case inputKey:
		return in.key <= 0
	case inputText:
		return in.text == ""
	default:
		return true
	}
}
