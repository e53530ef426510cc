package profile

import (
	"time"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/almanac"
)

// DayProfile is the full composite result of evaluating all domain
// calculations for one calendar date. It is immutable once built and fully
// deterministic: given a fixed birth date, two profiles are equal iff their
// dates are equal. Profiles are recomputed on demand and never cached.
type DayProfile struct {
	Date time.Time

	Tzolkin almanac.TzolkinDate
	Haab    almanac.HaabDate
	Moon    almanac.Moon

	Class almanac.Classification
	Crowd almanac.CrowdState
	Mode  almanac.BotMode

	Biorhythms almanac.Biorhythms
	Training   almanac.Advice
	Schedule   almanac.Advice
	Nutrition  almanac.Advice

	// Secondary calendar overlays, present only when enabled by config.
	Sumerian *almanac.SumerianProfile
	Eastern  *almanac.EasternProfile
}

// Engine is the calendrical engine the aggregator consumes. The default
// implementation lives in internal/almanac; tests substitute stubs.
type Engine interface {
	Tzolkin(d time.Time) (almanac.TzolkinDate, error)
	Haab(d time.Time) (almanac.HaabDate, error)
	MoonPhase(d time.Time) (almanac.Moon, error)
	ClassifyDay(number int, name string, phaseCode int) (almanac.Classification, error)
	CrowdState(number int, name string, phaseCode int) (almanac.CrowdState, error)
	BotMode(signalLabel, crowdCode string) (almanac.BotMode, error)
	Biorhythms(birth, date time.Time) (almanac.Biorhythms, error)
	Training(b almanac.Biorhythms, c almanac.Classification, phaseCode int) (almanac.Advice, error)
	DailySchedule(birth, date time.Time, c almanac.Classification, phaseCode int, b almanac.Biorhythms) (almanac.Advice, error)
	Nutrition(b almanac.Biorhythms, c almanac.Classification, phaseCode int) (almanac.Advice, error)
	SumerianProfile(d time.Time) (almanac.SumerianProfile, error)
	EasternProfile(d time.Time) (almanac.EasternProfile, error)
}
