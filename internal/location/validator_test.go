package location_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/Behyna/safetycheck/internal/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		input    *location.Input
		valid    bool
		reason   string
		expected location.Coordinate
	}{
		{
			name:   "nil input",
			input:  nil,
			reason: location.ReasonMissing,
		},
		{
			name:     "valid coordinate",
			input:    &location.Input{Lat: 37.422, Lng: -122.084},
			valid:    true,
			expected: location.Coordinate{Lat: 37.422, Lng: -122.084},
		},
		{
			name:     "boundaries are inclusive",
			input:    &location.Input{Lat: -90.0, Lng: 180.0},
			valid:    true,
			expected: location.Coordinate{Lat: -90, Lng: 180},
		},
		{
			name:     "integer values are numbers",
			input:    &location.Input{Lat: 10, Lng: int64(20)},
			valid:    true,
			expected: location.Coordinate{Lat: 10, Lng: 20},
		},
		{
			name:   "string latitude is not a number even when lng out of range",
			input:  &location.Input{Lat: "x", Lng: 500.0},
			reason: location.ReasonNotNumbers,
		},
		{
			name:   "string latitude",
			input:  &location.Input{Lat: "x", Lng: 5.0},
			reason: location.ReasonNotNumbers,
		},
		{
			name:   "missing longitude",
			input:  &location.Input{Lat: 5.0},
			reason: location.ReasonNotNumbers,
		},
		{
			name:   "boolean longitude",
			input:  &location.Input{Lat: 5.0, Lng: true},
			reason: location.ReasonNotNumbers,
		},
		{
			name:   "NaN latitude",
			input:  &location.Input{Lat: math.NaN(), Lng: 5.0},
			reason: location.ReasonNaN,
		},
		{
			name:   "NaN wins over range",
			input:  &location.Input{Lat: 100.0, Lng: math.NaN()},
			reason: location.ReasonNaN,
		},
		{
			name:   "latitude too high",
			input:  &location.Input{Lat: 90.0001, Lng: 0.0},
			reason: location.ReasonLatitude,
		},
		{
			name:   "latitude wins over longitude",
			input:  &location.Input{Lat: -91.0, Lng: 181.0},
			reason: location.ReasonLatitude,
		},
		{
			name:   "longitude too low",
			input:  &location.Input{Lat: 0.0, Lng: -180.5},
			reason: location.ReasonLongitude,
		},
		{
			name:   "infinite longitude",
			input:  &location.Input{Lat: 0.0, Lng: math.Inf(1)},
			reason: location.ReasonLongitude,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := location.Validate(tc.input)

			assert.Equal(t, tc.valid, result.Valid)
			assert.Equal(t, tc.reason, result.Reason)
			if tc.valid {
				assert.Equal(t, tc.expected, result.Coordinate)
			}
		})
	}
}

func TestValidate_DecodedJSON(t *testing.T) {
	var input location.Input
	require.NoError(t, json.Unmarshal([]byte(`{"lat":"37.4","lng":-122.0}`), &input))

	result := location.Validate(&input)

	assert.False(t, result.Valid)
	assert.Equal(t, location.ReasonNotNumbers, result.Reason)

	require.NoError(t, json.Unmarshal([]byte(`{"lat":37.4,"lng":-122.0}`), &input))
	assert.True(t, location.Validate(&input).Valid)
}

func TestValidate_IsIdempotentAndDoesNotMutate(t *testing.T) {
	input := &location.Input{Lat: 45.5, Lng: 200.0, Accuracy: 12.0, Timestamp: "2024-01-01T00:00:00Z"}
	snapshot := *input

	first := location.Validate(input)
	second := location.Validate(input)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, *input)
}

func TestInput_AccuracyMeters(t *testing.T) {
	accuracy, ok := (&location.Input{Accuracy: 12.6}).AccuracyMeters()
	assert.True(t, ok)
	assert.Equal(t, 12.6, accuracy)

	_, ok = (&location.Input{Accuracy: "high"}).AccuracyMeters()
	assert.False(t, ok)

	_, ok = (&location.Input{}).AccuracyMeters()
	assert.False(t, ok)

	_, ok = (*location.Input)(nil).AccuracyMeters()
	assert.False(t, ok)
}

func TestInput_FixTime(t *testing.T) {
	ts, ok := (&location.Input{Timestamp: "2024-05-01T10:00:00Z"}).FixTime()
	assert.True(t, ok)
	assert.Equal(t, "2024-05-01T10:00:00Z", ts)

	_, ok = (&location.Input{Timestamp: 1714557600}).FixTime()
	assert.False(t, ok)

	_, ok = (*location.Input)(nil).FixTime()
	assert.False(t, ok)
}
