package bot

import (
	"time"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/report"
)

// Router is the callback navigation state machine. No state survives
// between invocations: each callback is a stateless transition from a
// decoded token to a freshly rendered document plus the navigation
// buttons to attach.
type Router struct {
	agg       aggregator
	formatter *report.Formatter
}

// aggregator is the slice of profile.Aggregator the router needs.
type aggregator interface {
	Aggregate(date time.Time) (*profile.DayProfile, error)
	AggregateWeek(start time.Time) ([]*profile.DayProfile, error)
}

// NewRouter creates a callback router.
func NewRouter(agg aggregator, formatter *report.Formatter) *Router {
	return &Router{agg: agg, formatter: formatter}
}

// Transition recomputes and renders the view for a decoded token.
// The ok result is false for ActionUnknown: the press is acknowledged but
// nothing is rendered.
func (r *Router) Transition(t Token) (doc report.Document, buttons [][]InlineButton, ok bool, err error) {
	switch t.Action {
	case ActionDay:
		p, err := r.agg.Aggregate(t.Date)
		if err != nil {
			return report.Document{}, nil, true, err
		}
		return r.formatter.FormatDay(p, report.DetailFull), DayNavButtons(t.Date), true, nil

	case ActionWeek:
		profiles, err := r.agg.AggregateWeek(t.Date)
		if err != nil {
			return report.Document{}, nil, true, err
		}
		return r.formatter.FormatWeek(profiles), nil, true, nil

	case ActionCrowd:
		p, err := r.agg.Aggregate(t.Date)
		if err != nil {
			return report.Document{}, nil, true, err
		}
		return r.formatter.FormatCrowd(p), backToDayButtons(t.Date), true, nil

	case ActionMode:
		p, err := r.agg.Aggregate(t.Date)
		if err != nil {
			return report.Document{}, nil, true, err
		}
		return r.formatter.FormatMode(p), backToDayButtons(t.Date), true, nil

	default:
		return report.Document{}, nil, false, nil
	}
}

// DayNavButtons are the navigation buttons attached to a day view, all
// anchored at the same date.
func DayNavButtons(d time.Time) [][]InlineButton {
	return [][]InlineButton{{
		{Text: "🧠 Crowd", CallbackData: EncodeToken(ActionCrowd, d)},
		{Text: "🤖 Mode", CallbackData: EncodeToken(ActionMode, d)},
		{Text: "📆 Week", CallbackData: EncodeToken(ActionWeek, d)},
	}}
}

func backToDayButtons(d time.Time) [][]InlineButton {
	return [][]InlineButton{{
		{Text: "📅 Day", CallbackData: EncodeToken(ActionDay, d)},
	}}
}

// MenuButtons are the two entry points offered by /menu, anchored at today.
func MenuButtons(now func() time.Time) [][]InlineButton {
	d := today(now)
	return [][]InlineButton{{
		{Text: "📅 Today", CallbackData: EncodeToken(ActionDay, d)},
		{Text: "📆 Week", CallbackData: EncodeToken(ActionWeek, d)},
	}}
}
