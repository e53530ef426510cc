package almanac

import "time"

// Engine exposes the almanac calculations behind the method set the
// profile aggregator consumes. Every method is pure and total over valid
// calendar dates; errors exist in the signatures for the benefit of
// alternative engine implementations.
type Engine struct{}

// NewEngine creates the default calendrical engine.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Tzolkin(d time.Time) (TzolkinDate, error) {
	return Tzolkin(d), nil
}

func (e *Engine) Haab(d time.Time) (HaabDate, error) {
	return Haab(d), nil
}

func (e *Engine) MoonPhase(d time.Time) (Moon, error) {
	return MoonPhase(d), nil
}

func (e *Engine) ClassifyDay(number int, name string, phaseCode int) (Classification, error) {
	return ClassifyDay(number, name, phaseCode), nil
}

func (e *Engine) CrowdState(number int, name string, phaseCode int) (CrowdState, error) {
	return ComputeCrowdState(number, name, phaseCode), nil
}

func (e *Engine) BotMode(signalLabel, crowdCode string) (BotMode, error) {
	return ComputeBotMode(signalLabel, crowdCode), nil
}

func (e *Engine) Biorhythms(birth, date time.Time) (Biorhythms, error) {
	return ComputeBiorhythms(birth, date), nil
}

func (e *Engine) Training(b Biorhythms, c Classification, phaseCode int) (Advice, error) {
	return TrainingAdvice(b, c, phaseCode), nil
}

func (e *Engine) DailySchedule(birth, date time.Time, c Classification, phaseCode int, b Biorhythms) (Advice, error) {
	return ScheduleAdvice(birth, date, c, phaseCode, b), nil
}

func (e *Engine) Nutrition(b Biorhythms, c Classification, phaseCode int) (Advice, error) {
	return NutritionAdvice(b, c, phaseCode), nil
}

func (e *Engine) SumerianProfile(d time.Time) (SumerianProfile, error) {
	return Sumerian(d), nil
}

func (e *Engine) EasternProfile(d time.Time) (EasternProfile, error) {
	return Eastern(d), nil
}
