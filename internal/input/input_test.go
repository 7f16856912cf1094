package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauthierbraillon/reportmix/internal/social"
)

func TestAC600_DecodeResults_ReadsBatch(t *testing.T) {
	results, err := NewDecoder().DecodeResults(strings.NewReader(`[
		{"platform": "linkedin", "username": "acme", "data": [{"activity_urn": "u1"}], "dateRange": {"startDate": "2025-01-01", "endDate": "2025-01-07"}},
		{"platform": "facebook", "username": "acme", "error": "timeout"}
	]`))

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, social.LinkedIn, results[0].Platform)
	assert.Equal(t, "u1", results[0].Data[0]["activity_urn"])
	assert.Equal(t, "2025-01-07", results[0].DateRange.EndDate)
	assert.Nil(t, results[1].Data)
	assert.Equal(t, "timeout", results[1].Error)
}

func TestAC601_DecodeResults_RejectsWrongShape(t *testing.T) {
	_, err := NewDecoder().DecodeResults(strings.NewReader(`{"platform": "linkedin"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a JSON array", "user should see what shape is expected")
}

func TestAC602_DecodeResults_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "  \n", "null"} {
		_, err := NewDecoder().DecodeResults(strings.NewReader(raw))
		assert.ErrorIs(t, err, ErrEmptyInput)
	}

	results, err := NewDecoder().DecodeResults(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAC603_DecodeResults_ValidatesMetadata(t *testing.T) {
	_, err := NewDecoder().DecodeResults(strings.NewReader(`[
		{"platform": "linkedin", "data": []},
		{"username": "acme", "data": []},
		{"platform": "tiktok", "dateRange": {"startDate": "01/01/2025", "endDate": "2025-01-07"}}
	]`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"results[1].platform":            "platform is required",
		"results[2].dateRange.startDate": "startDate must be a date formatted as YYYY-MM-DD",
	}, verr.Errors)
	assert.Contains(t, err.Error(), "validation failed: results[1].platform")
}

func TestAC604_DecodeResults_UnknownPlatformIsNotAnError(t *testing.T) {
	results, err := NewDecoder().DecodeResults(strings.NewReader(`[{"platform": "myspace", "data": []}]`))

	require.NoError(t, err, "unknown platforms are skipped during cleaning, not rejected")
	assert.False(t, results[0].Platform.Known())
}

func TestAC610_DecodeStored_ReadsReport(t *testing.T) {
	report, err := NewDecoder().DecodeStored(strings.NewReader(`{
		"id": "r1",
		"username": "acme",
		"platforms": ["linkedin"],
		"dateRange": {"startDate": "2025-01-01", "endDate": "2025-01-07"},
		"rawData": [{"platform": "linkedin", "username": "acme", "data": []}]
	}`))

	require.NoError(t, err)
	assert.Equal(t, "r1", report.ID)
	assert.Equal(t, []string{"linkedin"}, report.Platforms)
	require.Len(t, report.RawData, 1)
	assert.Equal(t, social.LinkedIn, report.RawData[0].Platform)
}

func TestAC611_DecodeStored_RejectsArrays(t *testing.T) {
	_, err := NewDecoder().DecodeStored(strings.NewReader(`[]`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a JSON object")
}

func TestAC612_DecodeStored_ValidatesRawData(t *testing.T) {
	_, err := NewDecoder().DecodeStored(strings.NewReader(`{"username": "acme", "rawData": [{"data": []}]}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "rawData[0].platform")
}

func TestAC620_ReadResults_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"platform": "twitter", "data": [{"demo": true}]}]`), 0600))

	results, err := NewDecoder().ReadResults(path)
	require.NoError(t, err)
	assert.Equal(t, social.Twitter, results[0].Platform)

	_, err = NewDecoder().ReadResults(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
