package profile

import (
	"fmt"
	"time"
)

// AggregationError wraps any engine failure during profile assembly.
// Aggregation is atomic: a partial profile is never returned.
type AggregationError struct {
	Date  time.Time
	Cause error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("failed to aggregate day profile for %s: %v", e.Date.Format("2006-01-02"), e.Cause)
}

func (e *AggregationError) Unwrap() error {
	return e.Cause
}

// Options toggles the optional secondary calendar overlays.
type Options struct {
	Sumerian bool
	Eastern  bool
}

// Aggregator assembles DayProfiles from the calendrical engine. It holds
// only immutable configuration, so concurrent Aggregate calls are safe.
type Aggregator struct {
	engine Engine
	birth  time.Time
	opts   Options
}

// NewAggregator creates an aggregator for a fixed birth date.
func NewAggregator(engine Engine, birth time.Time, opts Options) *Aggregator {
	return &Aggregator{engine: engine, birth: birth, opts: opts}
}

// Aggregate builds the complete, internally consistent profile for a date.
// Dependency order: calendrical and lunar positions first, classification
// and crowd state from those, bot mode from classification and crowd.
// Every derived field is computed from already-assembled sibling fields,
// never recomputed with different arguments.
func (a *Aggregator) Aggregate(date time.Time) (*DayProfile, error) {
	tz, err := a.engine.Tzolkin(date)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("tzolkin: %w", err)}
	}

	haab, err := a.engine.Haab(date)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("haab: %w", err)}
	}

	moon, err := a.engine.MoonPhase(date)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("moon phase: %w", err)}
	}

	cls, err := a.engine.ClassifyDay(tz.Number, tz.Name, moon.PhaseCode)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("classification: %w", err)}
	}

	crowd, err := a.engine.CrowdState(tz.Number, tz.Name, moon.PhaseCode)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("crowd state: %w", err)}
	}

	mode, err := a.engine.BotMode(cls.TradingSignalLabel, crowd.Code)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("bot mode: %w", err)}
	}

	bior, err := a.engine.Biorhythms(a.birth, date)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("biorhythms: %w", err)}
	}

	training, err := a.engine.Training(bior, cls, moon.PhaseCode)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("training: %w", err)}
	}

	schedule, err := a.engine.DailySchedule(a.birth, date, cls, moon.PhaseCode, bior)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("schedule: %w", err)}
	}

	nutrition, err := a.engine.Nutrition(bior, cls, moon.PhaseCode)
	if err != nil {
		return nil, &AggregationError{Date: date, Cause: fmt.Errorf("nutrition: %w", err)}
	}

	p := &DayProfile{
		Date:       date,
		Tzolkin:    tz,
		Haab:       haab,
		Moon:       moon,
		Class:      cls,
		Crowd:      crowd,
		Mode:       mode,
		Biorhythms: bior,
		Training:   training,
		Schedule:   schedule,
		Nutrition:  nutrition,
	}

	if a.opts.Sumerian {
		sumer, err := a.engine.SumerianProfile(date)
		if err != nil {
			return nil, &AggregationError{Date: date, Cause: fmt.Errorf("sumerian profile: %w", err)}
		}
		p.Sumerian = &sumer
	}

	if a.opts.Eastern {
		east, err := a.engine.EasternProfile(date)
		if err != nil {
			return nil, &AggregationError{Date: date, Cause: fmt.Errorf("eastern profile: %w", err)}
		}
		p.Eastern = &east
	}

	return p, nil
}

// AggregateWeek builds profiles for the 7 consecutive days starting at
// the given date. Fails atomically on the first failing day.
func (a *Aggregator) AggregateWeek(start time.Time) ([]*DayProfile, error) {
	profiles := make([]*DayProfile, 0, 7)
	for i := 0; i < 7; i++ {
		p, err := a.Aggregate(start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// BirthDate returns the fixed birth date the aggregator was built with.
func (a *Aggregator) BirthDate() time.Time {
	return a.birth
}
