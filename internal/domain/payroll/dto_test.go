package payroll

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRecord_Normalize(t *testing.T) {
	var raw RawRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "77bb",
		"employeeId": "EMP001",
		"payPeriod": "2026-08",
		"month": 8,
		"year": 2026,
		"netSalary": "4200.50",
		"generatedAt": "2026-08-29T12:00:00Z"
	}`), &raw))

	record := raw.Normalize()

	assert.Equal(t, "77bb", record.ID)
	assert.Equal(t, "EMP001", record.EmployeeID)
	assert.Equal(t, "2026-08", record.PayPeriod)
	assert.InDelta(t, 4200.50, record.NetSalary, 0.001)
	assert.False(t, record.GeneratedAt.IsZero())
}

func TestRawRecord_PeriodAssembledFromMonthYear(t *testing.T) {
	var raw RawRecord
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "1", "month": 3, "year": 2026}`), &raw))

	assert.Equal(t, "2026-03", raw.Period())
}

func TestRawRecord_GeneratedTimeFallsBackToCreatedAt(t *testing.T) {
	var raw RawRecord
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "1", "createdAt": "2026-08-29T12:00:00Z"}`), &raw))

	assert.False(t, raw.GeneratedTime().IsZero())
}
