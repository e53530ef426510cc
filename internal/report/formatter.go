package report

import (
	"fmt"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/almanac"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
)

// Detail selects the report granularity.
type Detail int

const (
	DetailBrief Detail = iota
	DetailFull
)

const dateLayout = "2006-01-02"

// Formatter renders DayProfiles into documents. Pure: no engine calls,
// no I/O, no clock access.
type Formatter struct{}

// NewFormatter creates a report formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatDay renders one profile. Block order is fixed: title, calendrical
// line, lunar line, then classification, trading signal, crowd, bot mode
// and biorhythm blocks. DetailFull appends the advisory blocks.
func (f *Formatter) FormatDay(p *profile.DayProfile, detail Detail) Document {
	var doc Document

	doc.add(fmt.Sprintf("📅 *Day* %s", p.Date.Format(dateLayout)))
	doc.add(fmt.Sprintf("Maya: *%d %s* | Haab: %d %s", p.Tzolkin.Number, p.Tzolkin.Name, p.Haab.Day, p.Haab.Month))
	doc.add(fmt.Sprintf("Moon: %s (age %.1fd, %.0f%% lit)", p.Moon.PhaseName, p.Moon.Age, p.Moon.Illumination*100))

	doc.addBlank()
	doc.add(fmt.Sprintf("Day class: *%s*", p.Class.Label))
	doc.add(p.Class.Description)

	doc.addBlank()
	doc.add(fmt.Sprintf("Trading signal: *%s*", p.Class.TradingSignalLabel))
	doc.add(p.Class.TradingSignalDescription)

	doc.addBlank()
	doc.add(fmt.Sprintf("Crowd: *%s* (%s)", p.Crowd.Label, p.Crowd.Code))
	doc.add(p.Crowd.Description)

	doc.addBlank()
	doc.add(fmt.Sprintf("Bot mode: *%s* (%s)", p.Mode.Label, p.Mode.Code))
	doc.add(p.Mode.Description)

	doc.addBlank()
	doc.add("📊 *Biorhythms* (%):")
	doc.add(fmt.Sprintf("Physical: %d | Emotional: %d | Intellectual: %d | Spiritual: %d",
		p.Biorhythms.Physical, p.Biorhythms.Emotional, p.Biorhythms.Intellectual, p.Biorhythms.Spiritual))

	if detail == DetailFull {
		f.addAdvice(&doc, "🏋️", p.Training)
		f.addAdvice(&doc, "🗓", p.Schedule)
		f.addAdvice(&doc, "🥗", p.Nutrition)

		if p.Sumerian != nil {
			doc.addBlank()
			doc.add(fmt.Sprintf("Sumerian: patron %s, me %d", p.Sumerian.Patron, p.Sumerian.Me))
		}
		if p.Eastern != nil {
			doc.addBlank()
			doc.add(fmt.Sprintf("Eastern: %s %s", p.Eastern.Element, p.Eastern.Animal))
		}
	}

	return doc
}

// FormatWeek renders a compact 7-day summary: a header spanning the week
// plus one line per day. Full per-day detail blocks are never included.
func (f *Formatter) FormatWeek(profiles []*profile.DayProfile) Document {
	var doc Document
	if len(profiles) == 0 {
		return doc
	}

	first := profiles[0].Date
	last := profiles[len(profiles)-1].Date
	doc.add(fmt.Sprintf("📆 *Week* %s — %s", first.Format(dateLayout), last.Format(dateLayout)))
	doc.addBlank()

	for _, p := range profiles {
		doc.add(fmt.Sprintf("%s | %d %s | %s | %s | P:%d E:%d",
			p.Date.Format(dateLayout),
			p.Tzolkin.Number, p.Tzolkin.Name,
			p.Class.Label,
			p.Mode.Code,
			p.Biorhythms.Physical, p.Biorhythms.Emotional))
	}

	return doc
}

// FormatCrowd renders the focused crowd view.
func (f *Formatter) FormatCrowd(p *profile.DayProfile) Document {
	var doc Document

	doc.add(fmt.Sprintf("🧠 *Crowd* %s", p.Date.Format(dateLayout)))
	doc.add(fmt.Sprintf("Maya: *%d %s* | Moon: %s", p.Tzolkin.Number, p.Tzolkin.Name, p.Moon.PhaseName))

	doc.addBlank()
	doc.add(fmt.Sprintf("State: *%s* (%s)", p.Crowd.Label, p.Crowd.Code))
	doc.add(p.Crowd.Description)

	return doc
}

// FormatMode renders the focused bot-mode view.
func (f *Formatter) FormatMode(p *profile.DayProfile) Document {
	var doc Document

	doc.add(fmt.Sprintf("🤖 *Bot mode* %s", p.Date.Format(dateLayout)))
	doc.add(fmt.Sprintf("Signal: %s | Crowd: %s", p.Class.TradingSignalLabel, p.Crowd.Code))

	doc.addBlank()
	doc.add(fmt.Sprintf("Mode: *%s* (%s)", p.Mode.Label, p.Mode.Code))
	doc.add(p.Mode.Description)

	return doc
}

func (f *Formatter) addAdvice(doc *Document, icon string, a almanac.Advice) {
	doc.addBlank()
	doc.add(fmt.Sprintf("%s *%s*:", icon, a.Title))
	doc.add(a.Lines...)
}
