package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tags is the key/value tag set of a place.
// Values are strings for plain OSM tags, but any JSON value is accepted.
type Tags map[string]any

// Canonical returns the deterministic serialization of the tag set.
// encoding/json sorts map keys at every nesting level, so two tag sets with the
// same content always produce the same string regardless of insertion order.
func (t Tags) Canonical() (string, error) {
	if len(t) == 0 {
		return "{}", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any(t)); err != nil {
		return "", fmt.Errorf("failed to serialize tags: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// ParseTags decodes a serialized tag object.
// Numbers are kept as json.Number so their textual form round-trips unchanged.
// An empty blob or JSON null decodes to an empty tag set.
func ParseTags(blob []byte) (Tags, error) {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Tags{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var tags Tags
	if err := dec.Decode(&tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to parse tags: trailing data after object")
	}
	if tags == nil {
		tags = Tags{}
	}
	return tags, nil
}

// CanonicalBlob re-serializes a stored tag blob into canonical form.
// Blobs written by another serializer (or reordered by the database, e.g. JSONB)
// compare equal to the fresh tag set as long as the content matches.
func CanonicalBlob(blob []byte) (string, error) {
	tags, err := ParseTags(blob)
	if err != nil {
		return "", err
	}
	return tags.Canonical()
}
