package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoonPhaseAtEpoch(t *testing.T) {
	m := MoonPhase(date(2000, time.January, 6))
	assert.Equal(t, PhaseNew, m.PhaseCode)
	assert.Equal(t, "New Moon", m.PhaseName)
	assert.Less(t, m.Illumination, 0.05)
}

func TestMoonPhaseFullHalfCycleLater(t *testing.T) {
	m := MoonPhase(date(2000, time.January, 21))
	assert.Equal(t, PhaseFull, m.PhaseCode)
	assert.Greater(t, m.Illumination, 0.95)
}

func TestMoonPhaseRanges(t *testing.T) {
	start := date(2025, time.January, 1)
	for i := 0; i < 60; i++ {
		m := MoonPhase(start.AddDate(0, 0, i))
		require.GreaterOrEqual(t, m.PhaseCode, 0)
		require.LessOrEqual(t, m.PhaseCode, 7)
		require.GreaterOrEqual(t, m.Age, 0.0)
		require.Less(t, m.Age, synodicMonth)
		require.GreaterOrEqual(t, m.Illumination, 0.0)
		require.LessOrEqual(t, m.Illumination, 1.0)
	}
}

func TestMoonPhaseStableWithinDay(t *testing.T) {
	// The phase is evaluated at a fixed time of day, so any clock reading
	// on the same calendar date yields the same result.
	morning := time.Date(2025, time.June, 10, 3, 12, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, MoonPhase(morning), MoonPhase(evening))
}
