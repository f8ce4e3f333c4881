// Package query collapses client filter payloads into a canonical predicate
// and forwards it to the external query cluster.
package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingType reports a filter payload without the required type field.
var ErrMissingType = errors.New("query type is required")

// FlexString absorbs the form-encoding ambiguity of filter fields: callers
// send a scalar string, a list of strings, or nothing. Only the first list
// element is kept.
type FlexString []string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*f = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = FlexString(list)
		return nil
	}

	return fmt.Errorf("expected string or list of strings, got %s", string(data))
}

// FilterPayload is the raw client-submitted filter.
type FilterPayload struct {
	Type            string     `json:"type"`
	VideoName       FlexString `json:"video_name"`
	EnvironmentType FlexString `json:"environment_type"`
	ObjectName      FlexString `json:"object_name"`
	Color           FlexString `json:"color"`
	Proximity       FlexString `json:"proximity"`
}

// Predicate is the canonical single-valued filter. Optional fields are nil
// when the caller supplied nothing usable; they marshal as explicit nulls.
type Predicate struct {
	Type            string  `json:"type"`
	VideoName       *string `json:"video_name"`
	EnvironmentType *string `json:"environment_type"`
	ObjectName      *string `json:"object_name"`
	Color           *string `json:"color"`
	Proximity       *string `json:"proximity"`
}

// Normalize collapses each optional field to one trimmed value or nil: first
// list element wins, empty and all-whitespace inputs become nil. Normalizing
// an already canonical predicate is a no-op.
func Normalize(payload FilterPayload) (Predicate, error) {
	if payload.Type == "" {
		return Predicate{}, ErrMissingType
	}

	return Predicate{
		Type:            payload.Type,
		VideoName:       resolve(payload.VideoName),
		EnvironmentType: resolve(payload.EnvironmentType),
		ObjectName:      resolve(payload.ObjectName),
		Color:           resolve(payload.Color),
		Proximity:       resolve(payload.Proximity),
	}, nil
}

func resolve(values FlexString) *string {
	if len(values) == 0 {
		return nil
	}
	trimmed := strings.TrimSpace(values[0])
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
