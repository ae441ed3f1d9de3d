package transport

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.Local)

	for _, input := range []string{
		"2026-10-14",
		"2026-10-14T00:00:00",
		"2026-10-14T13:45:10",
		"2026-10-14T13:45:10.1234567",
	} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDate(input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestParseDateRFC3339UsesLocalDay(t *testing.T) {
	input := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

	got, err := ParseDate(input.Format(time.RFC3339))
	require.NoError(t, err)

	local := input.In(time.Local)
	assert.Equal(t, local.Day(), got.Day())
	assert.Zero(t, got.Hour())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("14/10/2026")
	assert.ErrorContains(t, err, "invalid date")
}

func TestDateJSON(t *testing.T) {
	var req CreateOperationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"date":"2026-10-14T00:00:00","eirCode":"EIRCODE"}`), &req))
	require.NotNil(t, req.Date)
	assert.Equal(t, "2026-10-14", req.Date.String())

	out, err := json.Marshal(OperationResponse{ID: 2, Date: *req.Date, EirCode: "EIRCODE"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"date":"2026-10-14","eirCode":"EIRCODE"}`, string(out))
}

func TestDateJSONNullLeavesPointerNil(t *testing.T) {
	var req CreateOperationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"date":null,"eirCode":"EIRCODE"}`), &req))
	assert.Nil(t, req.Date)
}

func TestDateJSONRejectsNumber(t *testing.T) {
	var req CreateOperationRequest
	assert.Error(t, json.Unmarshal([]byte(`{"date":20261014}`), &req))
}
