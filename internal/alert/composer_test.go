package alert_test

import (
	"testing"
	"time"

	"github.com/Behyna/safetycheck/internal/alert"
	"github.com/Behyna/safetycheck/internal/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)

func newComposer() *alert.Composer {
	return alert.NewComposer(func() time.Time { return fixedNow })
}

func TestComposer_Emergency(t *testing.T) {
	t.Run("valid location embeds map link and coordinates", func(t *testing.T) {
		input := &location.Input{Lat: 37.422, Lng: -122.084, Accuracy: 12.6}
		body, err := newComposer().Emergency(location.Validate(input), input)

		require.NoError(t, err)
		assert.Contains(t, body, "🚨 EMERGENCY ALERT 🚨")
		assert.Contains(t, body, "https://maps.google.com/maps?q=37.422,-122.084")
		assert.Contains(t, body, "37.422000, -122.084000")
		assert.Contains(t, body, "Accuracy: ±13m")
		assert.Contains(t, body, "Location time: "+fixedNow.Format(alert.TimeLayout))
		assert.Contains(t, body, "Alert generated: "+fixedNow.Format(alert.TimeLayout))
		assert.Contains(t, body, "This is an automated safety alert from SafetyCheck app.")
		assert.NotContains(t, body, "Unavailable")
	})

	t.Run("supplied timestamp and unknown accuracy", func(t *testing.T) {
		input := &location.Input{Lat: 51.5, Lng: -0.12, Timestamp: "2024-03-10T14:25:00Z"}
		body, err := newComposer().Emergency(location.Validate(input), input)

		require.NoError(t, err)
		assert.Contains(t, body, "Accuracy: Unknown")
		assert.Contains(t, body, "Location time: 2024-03-10T14:25:00Z")
	})

	t.Run("absent location renders unavailable notice", func(t *testing.T) {
		body, err := newComposer().Emergency(location.Validate(nil), nil)

		require.NoError(t, err)
		assert.Contains(t, body, "LOCATION: Unavailable (no location data provided)")
		assert.NotContains(t, body, "maps.google.com")
		assert.Contains(t, body, "Alert generated: "+fixedNow.Format(alert.TimeLayout))
	})

	t.Run("invalid location names the reason", func(t *testing.T) {
		input := &location.Input{Lat: 95.0, Lng: 10.0}
		body, err := newComposer().Emergency(location.Validate(input), input)

		require.NoError(t, err)
		assert.Contains(t, body, "Unavailable (latitude must be between -90 and 90)")
		assert.NotContains(t, body, "maps.google.com")
	})

	t.Run("output is deterministic for a fixed clock", func(t *testing.T) {
		input := &location.Input{Lat: 1.5, Lng: 2.5}
		composer := newComposer()

		first, err := composer.Emergency(location.Validate(input), input)
		require.NoError(t, err)
		second, err := composer.Emergency(location.Validate(input), input)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestComposer_Test(t *testing.T) {
	body, err := newComposer().Test()

	require.NoError(t, err)
	assert.Contains(t, body, "SafetyCheck Test Message")
	assert.Contains(t, body, "Time: "+fixedNow.Format(alert.TimeLayout))
}

func TestMapURL(t *testing.T) {
	assert.Equal(t, "https://maps.google.com/maps?q=-33.8688,151.2093",
		alert.MapURL(location.Coordinate{Lat: -33.8688, Lng: 151.2093}))
}
