package jsonx

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString_AcceptsStringAndNumber(t *testing.T) {
	var doc struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "EMP001", "b": 42, "c": null}`), &doc))

	assert.Equal(t, "EMP001", doc.A.String())
	assert.Equal(t, "42", doc.B.String())
	assert.Empty(t, doc.C.String())
}

func TestFlexInt_AcceptsNumberAndNumericString(t *testing.T) {
	var doc struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
		C FlexInt `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3, "b": "5", "c": ""}`), &doc))

	assert.Equal(t, 3, doc.A.Int())
	assert.Equal(t, 5, doc.B.Int())
	assert.Equal(t, 0, doc.C.Int())
}

func TestFlexFloat_AcceptsNumberAndNumericString(t *testing.T) {
	var doc struct {
		A FlexFloat `json:"a"`
		B FlexFloat `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1250.75, "b": "900.5"}`), &doc))

	assert.InDelta(t, 1250.75, doc.A.Float64(), 0.001)
	assert.InDelta(t, 900.5, doc.B.Float64(), 0.001)
}

func TestFlexTime_AcceptsObservedFormats(t *testing.T) {
	cases := map[string]string{
		"rfc3339":        `"2026-08-20T10:30:00Z"`,
		"fastapi-micros": `"2026-08-20T10:30:00.123456"`,
		"no-zone":        `"2026-08-20T10:30:00"`,
		"date-only":      `"2026-08-20"`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var ft FlexTime
			require.NoError(t, json.Unmarshal([]byte(raw), &ft))
			assert.False(t, ft.IsZero())
			assert.Equal(t, 2026, ft.Year())
			assert.Equal(t, time.August, ft.Month())
		})
	}
}

func TestFlexTime_DegradesToZero(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `"not a date"`, `12345`} {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(raw), &ft), raw)
		assert.True(t, ft.IsZero(), raw)
	}
}
