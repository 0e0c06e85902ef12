package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationFlags(t *testing.T) {
	first := NewPagination(1, 10, 25)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.HasNextPage)
	assert.False(t, first.HasPrevPage)
	require.NotNil(t, first.NextPage)
	assert.Equal(t, 2, *first.NextPage)
	assert.Nil(t, first.PrevPage)
	assert.True(t, first.Consistent())

	last := NewPagination(3, 10, 25)
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPrevPage)
	assert.True(t, last.Consistent())

	empty := NewPagination(1, 10, 0)
	assert.Zero(t, empty.TotalPages)
	assert.False(t, empty.HasNextPage)
	assert.True(t, empty.Consistent())
}

func TestPaginationConsistentDetectsMismatch(t *testing.T) {
	p := NewPagination(2, 10, 50)
	p.HasNextPage = false
	assert.False(t, p.Consistent())

	p = NewPagination(2, 10, 50)
	p.PrevPage = nil
	assert.False(t, p.Consistent())
}

func TestETLStatusState(t *testing.T) {
	assert.Equal(t, "running", ETLStatus{"status": "running"}.State())
	assert.Equal(t, "idle", ETLStatus{"state": "idle"}.State())
	assert.Equal(t, "failed", ETLStatus{"data": map[string]interface{}{"status": "failed"}}.State())
	assert.Empty(t, ETLStatus{"progress": 10}.State())
}

func TestETLLogsResponseDistinguishesMissingLogs(t *testing.T) {
	var missing ETLLogsResponse
	require.NoError(t, json.Unmarshal([]byte(`{"data":{}}`), &missing))
	require.NotNil(t, missing.Data)
	assert.Nil(t, missing.Data.Logs)

	var empty ETLLogsResponse
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"logs":[]}}`), &empty))
	require.NotNil(t, empty.Data.Logs)
	assert.Empty(t, *empty.Data.Logs)
}

func TestFallbackStatsResponse(t *testing.T) {
	payload, err := json.Marshal(FallbackStatsResponse())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"status": false,
		"message": "failed to fetch summary stats",
		"data": {
			"total_activities": 0,
			"average_score": 0,
			"active_users": 0,
			"completion_rate": 0,
			"distribution": {"file": 0, "video": 0, "forum": 0, "quiz": 0, "assignment": 0, "url": 0}
		},
		"filters": {}
	}`, string(payload))
}

func TestTPEtlSummaryRowFullName(t *testing.T) {
	assert.Equal(t, "Siti Aminah", TPEtlSummaryRow{Firstname: "Siti", Lastname: "Aminah"}.FullName())
	assert.Equal(t, "Siti", TPEtlSummaryRow{Firstname: "Siti"}.FullName())
	assert.Equal(t, "Aminah", TPEtlSummaryRow{Lastname: "Aminah"}.FullName())
}
