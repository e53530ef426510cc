package almanac

import (
	"math"
	"time"
)

// Biorhythms are the four cyclical percentages for a (birth date, target date)
// pair. Values are rounded to whole percent in [-100, 100].
type Biorhythms struct {
	Physical     int
	Emotional    int
	Intellectual int
	Spiritual    int
}

// Cycle lengths in days.
const (
	physicalPeriod     = 23
	emotionalPeriod    = 28
	intellectualPeriod = 33
	spiritualPeriod    = 53
)

// ComputeBiorhythms computes the biorhythm percentages for a target date given a
// fixed birth date. Pure function of the day gap between the two dates.
func ComputeBiorhythms(birth, date time.Time) Biorhythms {
	n := daysBetween(birth, date)
	return Biorhythms{
		Physical:     cyclePercent(n, physicalPeriod),
		Emotional:    cyclePercent(n, emotionalPeriod),
		Intellectual: cyclePercent(n, intellectualPeriod),
		Spiritual:    cyclePercent(n, spiritualPeriod),
	}
}

// daysBetween returns the whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	am0 := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bm0 := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(math.Round(bm0.Sub(am0).Hours() / 24))
}

func cyclePercent(n, period int) int {
	return int(math.Round(100 * math.Sin(2*math.Pi*float64(n)/float64(period))))
}
