package almanac

// Classification is the qualitative rating of a date plus its derived
// trading signal. Pure function of (tzolkin number, tzolkin name, phase code).
type Classification struct {
	Level                    int // 1 (storm) .. 5 (power)
	Label                    string
	Description              string
	TradingSignalLabel       string
	TradingSignalDescription string
}

// CrowdState describes aggregate market sentiment for a date.
type CrowdState struct {
	Code        string
	Label       string
	Description string
}

// BotMode is the operating mode derived from classification and crowd state.
type BotMode struct {
	Code        string
	Label       string
	Description string
}

// directionScore groups the 20 day names into the four classic directions.
// East initiates, South ripens, West transforms, North refines.
var directionScore = map[string]int{
	"Imix": 2, "Chikchan": 2, "Muluk": 2, "Ben": 2, "Kaban": 2, // East
	"Kan": 1, "Lamat": 1, "Eb": 1, "Kib": 1, "Ajaw": 1, // South
	"Akbal": 0, "Manik": 0, "Chuen": 0, "Men": 0, "Kawak": 0, // West
	"Ik": -1, "Kimi": -1, "Ok": -1, "Ix": -1, "Etznab": -1, // North
}

// toneScore rates the 13 tzolkin numbers.
var toneScore = map[int]int{
	4: 2, 8: 2, 13: 2, // stable
	1: 1, 5: 1, 9: 1, // flowing
	2: 0, 6: 0, 7: 0, 12: 0, // balanced
	3: -1, 10: -1, 11: -1, // volatile
}

// phaseEnergyScore rates how each lunar phase modifies day energy.
var phaseEnergyScore = [8]int{1, 1, 0, 0, -2, -1, 0, 1}

// phaseCrowdScore rates how each lunar phase heats the crowd.
var phaseCrowdScore = [8]int{-2, -1, 0, 1, 2, 1, 0, -1}

type levelSpec struct {
	label       string
	description string
	signalLabel string
	signalDesc  string
}

var levelSpecs = map[int]levelSpec{
	5: {
		label:       "Power day",
		description: "High, coherent energy. Decisions made today carry momentum.",
		signalLabel: "AGGRESSIVE_ENTRY",
		signalDesc:  "Strong directional bias, full position sizing allowed.",
	},
	4: {
		label:       "Favorable",
		description: "Supportive energy. Good day for planned moves.",
		signalLabel: "TREND_ENTRY",
		signalDesc:  "Follow the established trend with standard sizing.",
	},
	3: {
		label:       "Neutral",
		description: "Mixed energy. Nothing pushes strongly either way.",
		signalLabel: "NEUTRAL",
		signalDesc:  "No edge today, trade the range or stay out.",
	},
	2: {
		label:       "Unstable",
		description: "Scattered energy. Plans slip, signals contradict.",
		signalLabel: "REDUCE_RISK",
		signalDesc:  "Cut position sizes, tighten stops, avoid new exposure.",
	},
	1: {
		label:       "Storm day",
		description: "Disruptive energy. Expect reversals and broken setups.",
		signalLabel: "NO_TRADE",
		signalDesc:  "Stand aside, capital preservation only.",
	},
}

// ClassifyDay rates a date from its tzolkin position and lunar phase.
// Same (number, name, phaseCode) triple always yields the same result.
func ClassifyDay(number int, name string, phaseCode int) Classification {
	score := toneScore[number] + directionScore[name] + phaseEnergyScore[phaseCode&7]

	level := 3
	switch {
	case score >= 4:
		level = 5
	case score >= 2:
		level = 4
	case score >= 0:
		level = 3
	case score >= -2:
		level = 2
	default:
		level = 1
	}

	spec := levelSpecs[level]
	return Classification{
		Level:                    level,
		Label:                    spec.label,
		Description:              spec.description,
		TradingSignalLabel:       spec.signalLabel,
		TradingSignalDescription: spec.signalDesc,
	}
}

type crowdSpec struct {
	label       string
	description string
}

var crowdSpecs = map[string]crowdSpec{
	"euphoria": {"Euphoria", "The crowd is all-in and fearless. Tops form here."},
	"greed":    {"Greed", "The crowd chases momentum and ignores warnings."},
	"balance":  {"Balance", "The crowd is calm, flows are two-sided."},
	"anxiety":  {"Anxiety", "The crowd is nervous, quick to dump on bad news."},
	"panic":    {"Panic", "The crowd is capitulating. Bottoms form here."},
}

// ComputeCrowdState derives the crowd sentiment code from the same triple
// that feeds ClassifyDay.
func ComputeCrowdState(number int, name string, phaseCode int) CrowdState {
	s := toneScore[number] + phaseCrowdScore[phaseCode&7]
	if directionScore[name] < 0 {
		s--
	}

	var code string
	switch {
	case s >= 3:
		code = "euphoria"
	case s >= 1:
		code = "greed"
	case s == 0:
		code = "balance"
	case s >= -2:
		code = "anxiety"
	default:
		code = "panic"
	}

	spec := crowdSpecs[code]
	return CrowdState{Code: code, Label: spec.label, Description: spec.description}
}

type modeSpec struct {
	label       string
	description string
}

var modeSpecs = map[string]modeSpec{
	"HALT":       {"Halt", "All automated trading suspended for the day."},
	"DEFENSIVE":  {"Defensive", "Exits and hedges only, no new entries."},
	"CONTRARIAN": {"Contrarian", "Fade crowd extremes with small, staged entries."},
	"AGGRESSIVE": {"Aggressive", "Full strategy set enabled with maximum sizing."},
	"ACTIVE":     {"Active", "Trend strategies enabled with standard sizing."},
	"OBSERVER":   {"Observer", "Signals collected, orders held for confirmation."},
}

// ComputeBotMode derives the bot operating mode from the trading signal
// label and the crowd state code. Never set directly.
func ComputeBotMode(signalLabel, crowdCode string) BotMode {
	var code string
	switch {
	case signalLabel == "NO_TRADE" || crowdCode == "panic":
		code = "HALT"
	case signalLabel == "REDUCE_RISK" || crowdCode == "anxiety":
		code = "DEFENSIVE"
	case crowdCode == "euphoria":
		code = "CONTRARIAN"
	case signalLabel == "AGGRESSIVE_ENTRY":
		code = "AGGRESSIVE"
	case signalLabel == "TREND_ENTRY":
		code = "ACTIVE"
	default:
		code = "OBSERVER"
	}

	spec := modeSpecs[code]
	return BotMode{Code: code, Label: spec.label, Description: spec.description}
}
