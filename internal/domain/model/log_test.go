package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "allocates fields on nil map",
			entry: &LogEntry{ActionType: "compliance_check"},
			key:   "score",
			value: 62.5,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 62.5, e.Fields["score"])
			},
		},
		{
			name: "keeps existing fields",
			entry: &LogEntry{
				Fields: map[string]interface{}{"system": "metric"},
			},
			key:   "airlines",
			value: 24,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "metric", e.Fields["system"])
				assert.Equal(t, 24, e.Fields["airlines"])
			},
		},
		{
			name: "overwrites a field",
			entry: &LogEntry{
				Fields: map[string]interface{}{"fill": 100.0},
			},
			key:   "fill",
			value: 80.0,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 80.0, e.Fields["fill"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := (&LogEntry{Operator: "ops", ActionType: "airline_upsert", AirlineID: "ryanair"}).
		WithField("region", "Europe").
		WithFields(map[string]interface{}{
			"dataset_version": int64(3),
			"region":          "Europe",
		})

	assert.Len(t, entry.Fields, 2)
	assert.Equal(t, int64(3), entry.Fields["dataset_version"])
	assert.Equal(t, "ryanair", entry.AirlineID)

	empty := (&LogEntry{}).WithFields(map[string]interface{}{})
	assert.NotNil(t, empty.Fields)
	assert.Empty(t, empty.Fields)
}
