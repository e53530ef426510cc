package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.November, 30, 15, 42, 7, 0, time.UTC)
}

func TestResolveDateExplicit(t *testing.T) {
	d, err := ResolveDate("2025-11-30", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), d)
}

func TestResolveDateEmptyMeansToday(t *testing.T) {
	for _, arg := range []string{"", "   "} {
		d, err := ResolveDate(arg, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), d,
			"time-of-day must be dropped for %q", arg)
	}
}

func TestResolveDateImpossibleDate(t *testing.T) {
	_, err := ResolveDate("2025-02-30", fixedNow)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "2025-02-30", parseErr.Input, "offending literal preserved")
}

func TestResolveDateRejectsLooseFormats(t *testing.T) {
	for _, arg := range []string{
		"2025-2-3",
		"30-11-2025",
		"2025/11/30",
		"2025-11-30T00:00:00Z",
		"tomorrow",
	} {
		_, err := ResolveDate(arg, fixedNow)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", arg)
		assert.Equal(t, arg, parseErr.Input)
	}
}
