package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPage_Decode(t *testing.T) {
	body := `{
		"content": [{
			"source": "workana",
			"title": "Go developer",
			"link": "https://example.com/job/1",
			"linkHash": "abc123",
			"skills": "Go, PostgreSQL",
			"minBudget": 500.5,
			"maxBudget": 1500,
			"scraped_at": "2025-03-01T10:20:30.123456"
		}],
		"number": 0,
		"size": 12,
		"totalPages": 3,
		"totalElements": 30
	}`

	var page JobPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	require.Len(t, page.Jobs, 1)
	job := page.Jobs[0]
	assert.Equal(t, "abc123", job.LinkHash)
	require.NotNil(t, job.MinBudget)
	assert.InDelta(t, 500.5, *job.MinBudget, 0.001)
	assert.Equal(t, 2025, job.ScrapedAt.Year())
	assert.Equal(t, time.March, job.ScrapedAt.Month())
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrev())
}

func TestTimestamp_Null(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte("null"), &ts))
	assert.True(t, ts.IsZero())

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestTimestamp_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestJobPage_LastPage(t *testing.T) {
	page := JobPage{Page: 2, TotalPages: 3}
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrev())
}

func TestSearchField_IsValid(t *testing.T) {
	assert.True(t, SearchByTitle.IsValid())
	assert.True(t, SearchBySkills.IsValid())
	assert.False(t, SearchField("budget").IsValid())
}
