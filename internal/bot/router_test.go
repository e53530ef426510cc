package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/almanac"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/report"
)

var routerBirth = time.Date(1972, time.November, 10, 0, 0, 0, 0, time.UTC)

func newTestRouter() *Router {
	agg := profile.NewAggregator(almanac.NewEngine(), routerBirth, profile.Options{})
	return NewRouter(agg, report.NewFormatter())
}

func TestTransitionDay(t *testing.T) {
	d := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	doc, buttons, ok, err := newTestRouter().Transition(Token{Action: ActionDay, Date: d})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Contains(t, doc.Render(), "📅 *Day* 2025-11-30")

	require.Len(t, buttons, 1)
	require.Len(t, buttons[0], 3)
	for _, b := range buttons[0] {
		assert.Contains(t, b.CallbackData, "2025-11-30", "button %q anchored at the rendered date", b.Text)
	}
}

func TestTransitionWeek(t *testing.T) {
	d := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	doc, buttons, ok, err := newTestRouter().Transition(Token{Action: ActionWeek, Date: d})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Contains(t, doc.Render(), "📆 *Week* 2025-11-30 — 2025-12-06")
	assert.Nil(t, buttons)
}

func TestTransitionFocusedViews(t *testing.T) {
	d := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	r := newTestRouter()

	for action, header := range map[Action]string{
		ActionCrowd: "🧠 *Crowd* 2025-11-30",
		ActionMode:  "🤖 *Bot mode* 2025-11-30",
	} {
		doc, buttons, ok, err := r.Transition(Token{Action: action, Date: d})
		require.NoError(t, err)
		require.True(t, ok)

		assert.Contains(t, doc.Render(), header)

		require.Len(t, buttons, 1)
		require.Len(t, buttons[0], 1)
		assert.Equal(t, EncodeToken(ActionDay, d), buttons[0][0].CallbackData, "back button returns to the same day")
	}
}

func TestTransitionUnknown(t *testing.T) {
	doc, buttons, ok, err := newTestRouter().Transition(Token{Action: ActionUnknown, Date: fixedNow()})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, doc.Lines)
	assert.Nil(t, buttons)
}

func TestTransitionIdempotent(t *testing.T) {
	d := time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)
	r := newTestRouter()
	tok := Token{Action: ActionDay, Date: d}

	first, _, _, err := r.Transition(tok)
	require.NoError(t, err)
	second, _, _, err := r.Transition(tok)
	require.NoError(t, err)

	assert.Equal(t, first.Render(), second.Render())
}

type failingAggregator struct{}

func (failingAggregator) Aggregate(time.Time) (*profile.DayProfile, error) {
	return nil, &profile.AggregationError{Date: fixedNow(), Cause: errors.New("engine down")}
}

func (failingAggregator) AggregateWeek(time.Time) ([]*profile.DayProfile, error) {
	return nil, &profile.AggregationError{Date: fixedNow(), Cause: errors.New("engine down")}
}

func TestTransitionPropagatesAggregationError(t *testing.T) {
	r := NewRouter(failingAggregator{}, report.NewFormatter())

	for _, action := range []Action{ActionDay, ActionWeek, ActionCrowd, ActionMode} {
		_, _, ok, err := r.Transition(Token{Action: action, Date: fixedNow()})
		assert.True(t, ok, "action %q is recognized even when it fails", action)

		var aggErr *profile.AggregationError
		require.ErrorAs(t, err, &aggErr, "action %q", action)
	}
}

func TestMenuButtons(t *testing.T) {
	buttons := MenuButtons(fixedNow)
	require.Len(t, buttons, 1)
	require.Len(t, buttons[0], 2)

	assert.Equal(t, "day:2025-11-30", buttons[0][0].CallbackData)
	assert.Equal(t, "week:2025-11-30", buttons[0][1].CallbackData)
}
