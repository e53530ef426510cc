package almanac

import (
	"fmt"
	"time"
)

// Advice is a titled advisory block rendered verbatim in full reports.
type Advice struct {
	Title string
	Lines []string
}

// TrainingAdvice builds the training recommendation for a day from its
// biorhythms, classification and lunar phase.
func TrainingAdvice(b Biorhythms, c Classification, phaseCode int) Advice {
	var intensity string
	switch {
	case b.Physical >= 50:
		intensity = "Peak load: strength or interval work, push the top sets."
	case b.Physical >= 0:
		intensity = "Moderate load: steady volume at working weights."
	case b.Physical >= -50:
		intensity = "Light load: technique, mobility, easy cardio."
	default:
		intensity = "Recovery: walk, stretch, sleep. No training debt today."
	}

	lines := []string{intensity}

	if c.Level <= 2 {
		lines = append(lines, "Unstable day: keep the session short and familiar, no new exercises.")
	}
	if b.Emotional <= -50 {
		lines = append(lines, "Emotional trough: train alone, skip competitive formats.")
	}
	if phaseCode == PhaseFull {
		lines = append(lines, "Full moon: expect restless sleep, schedule the session early.")
	}

	return Advice{Title: "Training", Lines: lines}
}

// ScheduleAdvice builds the daily schedule suggestion. Depends on the day
// gap since birth (through biorhythms) and the calendar date itself.
func ScheduleAdvice(birth, date time.Time, c Classification, phaseCode int, b Biorhythms) Advice {
	lines := make([]string, 0, 3)

	if b.Intellectual >= 0 {
		lines = append(lines, "Morning: deep work first, the mind is sharp before noon.")
	} else {
		lines = append(lines, "Morning: routine tasks only, postpone hard decisions.")
	}

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		lines = append(lines, "Afternoon: unplug from screens, move the body outdoors.")
	default:
		lines = append(lines, "Afternoon: meetings and calls, energy favors exchange.")
	}

	if phaseCode == PhaseNew {
		lines = append(lines, "Evening: new moon, set intentions for the coming cycle.")
	} else if c.Level >= 4 {
		lines = append(lines, "Evening: favorable day, close it by committing one decision.")
	} else {
		lines = append(lines, "Evening: wind down early, review rather than start.")
	}

	return Advice{Title: "Schedule", Lines: lines}
}

// NutritionAdvice builds the nutrition recommendation for a day.
func NutritionAdvice(b Biorhythms, c Classification, phaseCode int) Advice {
	lines := make([]string, 0, 3)

	if b.Physical >= 0 {
		lines = append(lines, "Full protein day: the body absorbs and builds.")
	} else {
		lines = append(lines, "Light meals: soups, vegetables, easy digestion.")
	}

	switch phaseCode {
	case PhaseFull, PhaseWaningGibbous:
		lines = append(lines, "Waning energy: reduce salt and stimulants, extra water.")
	case PhaseNew, PhaseWaxingCrescent:
		lines = append(lines, "Waxing energy: good window to start a nutrition change.")
	}

	if c.Level <= 2 {
		lines = append(lines, fmt.Sprintf("%s: skip alcohol and heavy late dinners.", c.Label))
	}

	return Advice{Title: "Nutrition", Lines: lines}
}
