package bot

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseError is a rejected user-supplied date. The offending literal is
// preserved for the user-facing correction prompt.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Input)
}

// ResolveDate resolves an optional command argument into a calendar date.
// An empty argument means today (by the supplied clock). A present
// argument must match YYYY-MM-DD strictly; calendrically impossible dates
// such as 2025-02-30 are rejected too.
func ResolveDate(arg string, now func() time.Time) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return today(now), nil
	}

	if !datePattern.MatchString(arg) {
		return time.Time{}, &ParseError{Input: arg}
	}

	d, err := time.Parse(dateLayout, arg)
	if err != nil {
		return time.Time{}, &ParseError{Input: arg}
	}

	return d, nil
}

// today truncates the clock to the current local calendar date, normalized
// to midnight UTC so dates compare and format consistently.
func today(now func() time.Time) time.Time {
	year, month, day := now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
