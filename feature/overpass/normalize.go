package overpass

import (
	"bytes"
	"encoding/json"
	"fmt"

	"place-manager/core/reconcile"

	"github.com/go-playground/validator/v10"
)

// Kind is the raw Overpass element type.
type Kind string

const (
	KindNode     Kind = "node"
	KindWay      Kind = "way"
	KindRelation Kind = "relation"
)

// kindAliases maps accepted raw types to their kind.
var kindAliases = map[string]Kind{
	"node":     KindNode,
	"point":    KindNode,
	"way":      KindWay,
	"relation": KindRelation,
}

var coordValidate = validator.New()

// Result is a normalized snapshot.
type Result struct {
	// Elements holds one entry per snapshot element, in snapshot order.
	Elements []reconcile.Element
	// Kinds counts elements per kind.
	Kinds map[Kind]int
}

type rawCenter struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type rawElement struct {
	ID     *int64          `json:"id"`
	Type   string          `json:"type"`
	Lat    *float64        `json:"lat"`
	Lon    *float64        `json:"lon"`
	Center *rawCenter      `json:"center"`
	Tags   json.RawMessage `json:"tags"`
}

type coordinates struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

// Normalize parses a raw Overpass payload into reconcile elements.
// The first invalid element aborts the whole snapshot with an *ElementError.
func Normalize(raw []byte) (*Result, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	elementsRaw, ok := top["elements"]
	if !ok {
		return nil, fmt.Errorf("%w: missing elements", ErrMalformedSnapshot)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(elementsRaw, &items); err != nil || bytes.Equal(bytes.TrimSpace(elementsRaw), []byte("null")) {
		return nil, fmt.Errorf("%w: elements is not an array", ErrMalformedSnapshot)
	}

	result := &Result{
		Elements: make([]reconcile.Element, 0, len(items)),
		Kinds:    make(map[Kind]int),
	}
	seen := make(map[int64]int, len(items))

	for i, item := range items {
		e, kind, err := normalizeElement(i, item)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[e.ID]; dup {
			return nil, &ElementError{
				Index:  i,
				ID:     e.ID,
				Kind:   string(kind),
				Reason: fmt.Sprintf("id already seen at element #%d", first),
				Err:    ErrDuplicateElement,
			}
		}
		seen[e.ID] = i
		result.Elements = append(result.Elements, e)
		result.Kinds[kind]++
	}

	return result, nil
}

func normalizeElement(index int, item json.RawMessage) (reconcile.Element, Kind, error) {
	malformed := func(id int64, kind, reason string) error {
		return &ElementError{Index: index, ID: id, Kind: kind, Reason: reason, Err: ErrMalformedElement}
	}

	var raw rawElement
	if err := json.Unmarshal(item, &raw); err != nil {
		return reconcile.Element{}, "", malformed(0, "", err.Error())
	}
	if raw.ID == nil {
		return reconcile.Element{}, "", malformed(0, raw.Type, "missing id")
	}
	id := *raw.ID

	kind, ok := kindAliases[raw.Type]
	if !ok {
		return reconcile.Element{}, "", malformed(id, raw.Type, fmt.Sprintf("unsupported type %q", raw.Type))
	}

	var lat, lon *float64
	switch kind {
	case KindNode:
		lat, lon = raw.Lat, raw.Lon
	default:
		if raw.Center != nil {
			lat, lon = raw.Center.Lat, raw.Center.Lon
		}
	}
	if lat == nil || lon == nil {
		if kind == KindNode {
			return reconcile.Element{}, "", malformed(id, raw.Type, "missing lat/lon")
		}
		return reconcile.Element{}, "", malformed(id, raw.Type, "missing center")
	}

	if err := coordValidate.Struct(coordinates{Lat: *lat, Lon: *lon}); err != nil {
		return reconcile.Element{}, "", malformed(id, raw.Type, fmt.Sprintf("coordinates out of range (%v, %v)", *lat, *lon))
	}

	tags, err := parseElementTags(raw.Tags)
	if err != nil {
		return reconcile.Element{}, "", malformed(id, raw.Type, "tags is not an object")
	}

	return reconcile.Element{ID: id, Lat: *lat, Lon: *lon, Tags: tags}, kind, nil
}

// parseElementTags accepts an object, null or nothing.
func parseElementTags(raw json.RawMessage) (reconcile.Tags, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return reconcile.Tags{}, nil
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("tags is not an object")
	}
	return reconcile.ParseTags(trimmed)
}
