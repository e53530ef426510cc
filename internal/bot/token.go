package bot

import (
	"strings"
	"time"
)

// Action is one navigation action carried in callback data.
type Action string

// The closed action set. Anything else decodes to ActionUnknown, which is
// acknowledged but renders nothing.
const (
	ActionDay     Action = "day"
	ActionWeek    Action = "week"
	ActionCrowd   Action = "crowd"
	ActionMode    Action = "mode"
	ActionUnknown Action = ""
)

// Token is a decoded callback payload: which view to render, anchored at
// which date. Tokens are created when rendering a view, carried opaquely
// by Telegram, and decoded exactly once. Never persisted.
type Token struct {
	Action Action
	Date   time.Time
}

// ParseAction maps a wire action tag onto the closed action set.
func ParseAction(s string) Action {
	switch Action(s) {
	case ActionDay, ActionWeek, ActionCrowd, ActionMode:
		return Action(s)
	default:
		return ActionUnknown
	}
}

// EncodeToken serializes a token as "action:YYYY-MM-DD". The payload is
// always a date and cannot contain a colon, so no escaping is needed.
func EncodeToken(a Action, d time.Time) string {
	return string(a) + ":" + d.Format(dateLayout)
}

// DecodeToken parses callback data. A malformed date payload is not an
// error here: it silently falls back to today. This leniency is deliberate
// and intentionally asymmetric with the strict command-argument path.
func DecodeToken(data string, now func() time.Time) Token {
	actionTag, payload, _ := strings.Cut(data, ":")

	d, err := ResolveDate(payload, now)
	if err != nil {
		d = today(now)
	}

	return Token{Action: ParseAction(actionTag), Date: d}
}
