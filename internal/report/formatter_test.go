package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/almanac"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
)

func sampleProfile(d time.Time) *profile.DayProfile {
	return &profile.DayProfile{
		Date:    d,
		Tzolkin: almanac.TzolkinDate{Number: 4, Name: "Muluk"},
		Haab:    almanac.HaabDate{Day: 3, Month: "Kankin"},
		Moon:    almanac.Moon{PhaseCode: 4, PhaseName: "Full Moon", Age: 14.8, Illumination: 0.99},
		Class: almanac.Classification{
			Level: 3, Label: "Neutral", Description: "no strong signal",
			TradingSignalLabel: "NEUTRAL", TradingSignalDescription: "standard sizing",
		},
		Crowd: almanac.CrowdState{Code: "balance", Label: "Balance", Description: "two-sided flow"},
		Mode:  almanac.BotMode{Code: "ACTIVE", Label: "Active", Description: "trend strategies on"},
		Biorhythms: almanac.Biorhythms{
			Physical: 12, Emotional: -45, Intellectual: 80, Spiritual: 3,
		},
		Training:  almanac.Advice{Title: "Training", Lines: []string{"moderate load", "stretch in the evening"}},
		Schedule:  almanac.Advice{Title: "Schedule", Lines: []string{"deep work first"}},
		Nutrition: almanac.Advice{Title: "Nutrition", Lines: []string{"full protein"}},
	}
}

func TestFormatDaySectionOrder(t *testing.T) {
	d := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	text := NewFormatter().FormatDay(sampleProfile(d), DetailFull).Render()

	assert.Contains(t, text, "2025-11-30")

	labels := []string{
		"📅 *Day*",
		"Maya:",
		"Moon:",
		"Day class:",
		"Trading signal:",
		"Crowd:",
		"Bot mode:",
		"📊 *Biorhythms*",
		"*Training*",
		"*Schedule*",
		"*Nutrition*",
	}
	prev := -1
	for _, label := range labels {
		idx := strings.Index(text, label)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", label)
		assert.Greater(t, idx, prev, "section %q out of order", label)
		prev = idx
	}
}

func TestFormatDayIdempotent(t *testing.T) {
	p := sampleProfile(time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC))
	f := NewFormatter()

	first := f.FormatDay(p, DetailFull).Render()
	second := f.FormatDay(p, DetailFull).Render()

	assert.Equal(t, first, second)
}

func TestFormatDayBriefOmitsAdvice(t *testing.T) {
	p := sampleProfile(time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC))
	text := NewFormatter().FormatDay(p, DetailBrief).Render()

	assert.Contains(t, text, "Bot mode:")
	assert.Contains(t, text, "📊 *Biorhythms*")
	assert.NotContains(t, text, "*Training*")
	assert.NotContains(t, text, "*Schedule*")
	assert.NotContains(t, text, "*Nutrition*")
}

func TestFormatDaySecondaryProfiles(t *testing.T) {
	p := sampleProfile(time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC))
	p.Sumerian = &almanac.SumerianProfile{Patron: "Marduk", Me: 17}
	p.Eastern = &almanac.EasternProfile{Animal: "Snake", Element: "Wood"}

	full := NewFormatter().FormatDay(p, DetailFull).Render()
	assert.Contains(t, full, "Sumerian: patron Marduk, me 17")
	assert.Contains(t, full, "Eastern: Wood Snake")

	brief := NewFormatter().FormatDay(p, DetailBrief).Render()
	assert.NotContains(t, brief, "Sumerian:")
	assert.NotContains(t, brief, "Eastern:")
}

func TestFormatWeek(t *testing.T) {
	start := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	profiles := make([]*profile.DayProfile, 7)
	for i := range profiles {
		profiles[i] = sampleProfile(start.AddDate(0, 0, i))
	}

	doc := NewFormatter().FormatWeek(profiles)
	require.NotEmpty(t, doc.Lines)

	assert.Equal(t, "📆 *Week* 2025-11-30 — 2025-12-06", doc.Lines[0])
	assert.Equal(t, "", doc.Lines[1])

	body := doc.Lines[2:]
	require.Len(t, body, 7)
	for i, line := range body {
		assert.True(t, strings.HasPrefix(line, start.AddDate(0, 0, i).Format("2006-01-02")),
			"day line %d starts with its date", i)
	}

	text := doc.Render()
	assert.NotContains(t, text, "Trading signal:", "week view carries no full-detail blocks")
}

func TestFormatWeekEmpty(t *testing.T) {
	doc := NewFormatter().FormatWeek(nil)
	assert.Empty(t, doc.Lines)
	assert.Equal(t, "", doc.Render())
}

func TestFormatCrowd(t *testing.T) {
	p := sampleProfile(time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC))
	text := NewFormatter().FormatCrowd(p).Render()

	assert.Contains(t, text, "🧠 *Crowd* 2025-11-30")
	assert.Contains(t, text, "State: *Balance* (balance)")
	assert.Contains(t, text, "two-sided flow")
	assert.NotContains(t, text, "Biorhythms")
}

func TestFormatMode(t *testing.T) {
	p := sampleProfile(time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC))
	text := NewFormatter().FormatMode(p).Render()

	assert.Contains(t, text, "🤖 *Bot mode* 2025-11-30")
	assert.Contains(t, text, "Signal: NEUTRAL | Crowd: balance")
	assert.Contains(t, text, "Mode: *Active* (ACTIVE)")
}

func TestDocumentRenderJoinsLines(t *testing.T) {
	doc := Document{Lines: []string{"a", "", "b"}}
	assert.Equal(t, "a\n\nb", doc.Render())
}
