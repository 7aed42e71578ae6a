package leave

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRequest_Normalize(t *testing.T) {
	var raw RawRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "66aa",
		"employeeId": "EMP001",
		"employeeName": "Ada Lovelace",
		"leaveType": "sick",
		"status": "Pending",
		"startDate": "2026-09-01",
		"endDate": "2026-09-03",
		"days": "3",
		"reason": "flu",
		"appliedDate": "2026-08-28T09:00:00Z"
	}`), &raw))

	req := raw.Normalize()

	assert.Equal(t, "66aa", req.ID)
	assert.Equal(t, "EMP001", req.EmployeeID)
	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, 3, req.Days)
	assert.Equal(t, "flu", req.Reason)
	assert.False(t, req.AppliedAt.IsZero())
	assert.True(t, req.ApprovedAt.IsZero())
}

func TestRawRequest_AppliedAtFallsBackToCreatedAt(t *testing.T) {
	var raw RawRequest
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "1", "createdAt": "2026-08-28T09:00:00Z"}`), &raw))

	assert.False(t, raw.Normalize().AppliedAt.IsZero())
}

func TestRawRequest_StatusNormalizedToLowercase(t *testing.T) {
	var raw RawRequest
	require.NoError(t, json.Unmarshal([]byte(`{"_id": "1", "status": " APPROVED "}`), &raw))

	assert.Equal(t, StatusApproved, raw.Normalize().Status)
}
