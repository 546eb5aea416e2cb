package sqlite

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "Valid time",
			input:    time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
			expected: "2024-01-15T10:30:45Z",
		},
		{
			name:     "Zero time",
			input:    time.Time{},
			expected: "0001-01-01T00:00:00Z",
		},
		{
			name:     "Time with timezone is stored as UTC",
			input:    time.Date(2024, 6, 15, 14, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			expected: "2024-06-15T19:30:00Z",
		},
		{
			name:     "Time with nanoseconds",
			input:    time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC),
			expected: "2024-03-10T09:15:30.123456789Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeForDB(tt.input))
		})
	}
}

func TestFormatTimePtrForDB(t *testing.T) {
	assert.Nil(t, FormatTimePtrForDB(nil))

	ts := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, "2024-01-15T10:30:45Z", FormatTimePtrForDB(&ts))
}

func TestParseTimeFromDB_RoundTrip(t *testing.T) {
	original := time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))

	_, err = ParseTimeFromDB("2024-03-10 09:15:30")
	assert.Error(t, err)
}

func TestParseNullTimeFromDB(t *testing.T) {
	got, err := ParseNullTimeFromDB(sql.NullString{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseNullTimeFromDB(sql.NullString{String: "2024-01-15T10:30:45Z", Valid: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
}

func TestTags(t *testing.T) {
	encoded, err := FormatTagsForDB(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	encoded, err = FormatTagsForDB([]string{"exam", "physics"})
	require.NoError(t, err)

	decoded, err := ParseTagsFromDB(encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"exam", "physics"}, decoded)

	empty, err := ParseTagsFromDB("")
	require.NoError(t, err)
	assert.NotNil(t, empty)

	_, err = ParseTagsFromDB("not json")
	assert.Error(t, err)
}
