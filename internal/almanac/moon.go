package almanac

import (
	"math"
	"time"
)

// Moon describes the lunar phase on a given date.
type Moon struct {
	PhaseCode    int     // 0..7
	PhaseName    string
	Age          float64 // days since new moon
	Illumination float64 // 0..1
}

// Lunar phase codes.
const (
	PhaseNew = iota
	PhaseWaxingCrescent
	PhaseFirstQuarter
	PhaseWaxingGibbous
	PhaseFull
	PhaseWaningGibbous
	PhaseLastQuarter
	PhaseWaningCrescent
)

var phaseNames = [8]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// synodicMonth is the mean length of a lunation in days.
const synodicMonth = 29.530588853

// newMoonEpoch is the new moon of 2000-01-06 18:14 UTC.
var newMoonEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// MoonPhase returns the lunar phase for a calendar date, evaluated at
// local noon UTC so the result is stable for the whole calendar day.
func MoonPhase(d time.Time) Moon {
	year, month, day := d.Date()
	noon := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)

	days := noon.Sub(newMoonEpoch).Hours() / 24
	age := math.Mod(days, synodicMonth)
	if age < 0 {
		age += synodicMonth
	}

	// Eight equal sectors centered on the principal phases.
	code := int(math.Floor(age/synodicMonth*8+0.5)) % 8

	return Moon{
		PhaseCode:    code,
		PhaseName:    phaseNames[code],
		Age:          age,
		Illumination: (1 - math.Cos(2*math.Pi*age/synodicMonth)) / 2,
	}
}
