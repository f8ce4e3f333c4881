package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeFormStylePayload(t *testing.T) {
	var payload FilterPayload
	err := json.Unmarshal([]byte(`{
		"type": "search",
		"environment_type": ["park", " plaza"],
		"color": "red"
	}`), &payload)
	require.NoError(t, err)

	predicate, err := Normalize(payload)
	require.NoError(t, err)

	assert.Equal(t, Predicate{
		Type:            "search",
		VideoName:       nil,
		EnvironmentType: strPtr("park"),
		ObjectName:      nil,
		Color:           strPtr("red"),
		Proximity:       nil,
	}, predicate)
}

func TestNormalizeFirstElementWinsAndTrims(t *testing.T) {
	payload := FilterPayload{
		Type:       "search",
		ObjectName: FlexString{"  car  ", "person"},
	}

	predicate, err := Normalize(payload)
	require.NoError(t, err)
	assert.Equal(t, strPtr("car"), predicate.ObjectName)
}

func TestNormalizeEmptyInputsBecomeNull(t *testing.T) {
	payload := FilterPayload{
		Type:            "search",
		VideoName:       FlexString{},
		EnvironmentType: FlexString{""},
		Color:           FlexString{"   "},
	}

	predicate, err := Normalize(payload)
	require.NoError(t, err)
	assert.Nil(t, predicate.VideoName)
	assert.Nil(t, predicate.EnvironmentType)
	assert.Nil(t, predicate.Color)
}

func TestNormalizeMissingTypeFails(t *testing.T) {
	_, err := Normalize(FilterPayload{Color: FlexString{"red"}})
	assert.ErrorIs(t, err, ErrMissingType)
}

func TestNormalizeIdempotent(t *testing.T) {
	payload := FilterPayload{
		Type:      "search",
		Color:     FlexString{" red "},
		Proximity: FlexString{"near", "far"},
	}

	first, err := Normalize(payload)
	require.NoError(t, err)

	// Re-normalizing the canonical values changes nothing
	again, err := Normalize(FilterPayload{
		Type:      first.Type,
		Color:     FlexString{*first.Color},
		Proximity: FlexString{*first.Proximity},
	})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FlexString
	}{
		{"scalar", `"park"`, FlexString{"park"}},
		{"list", `["a", "b"]`, FlexString{"a", "b"}},
		{"empty list", `[]`, FlexString{}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFlexStringRejectsOtherShapes(t *testing.T) {
	var f FlexString
	assert.Error(t, json.Unmarshal([]byte(`42`), &f))
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &f))
}

func TestPredicateMarshalsExplicitNulls(t *testing.T) {
	predicate := Predicate{Type: "search", Color: strPtr("red")}

	data, err := json.Marshal(predicate)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "search",
		"video_name": null,
		"environment_type": null,
		"object_name": null,
		"color": "red",
		"proximity": null
	}`, string(data))
}
