package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOccurrencesSameDay(t *testing.T) {
	cfg := weekdayConfig()

	occ := NextOccurrences(cfg, monday(8, 0))

	require.NotNil(t, occ.NextOpen)
	require.NotNil(t, occ.NextClose)
	assert.Equal(t, monday(9, 0), occ.NextOpen.UTC())
	assert.Equal(t, monday(18, 0), occ.NextClose.UTC())
}

func TestNextOccurrencesSkipsInactiveDays(t *testing.T) {
	cfg := weekdayConfig()
	cfg.ActiveDays = []int{1} // Monday only

	// After Monday's open has passed, the next one is a week away.
	occ := NextOccurrences(cfg, monday(10, 0))

	require.NotNil(t, occ.NextOpen)
	assert.Equal(t, time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC), occ.NextOpen.UTC())
}

func TestNextOccurrencesCloseAfterMidnight(t *testing.T) {
	cfg := weekdayConfig()
	cfg.CloseHour = 2
	cfg.ActiveDays = []int{1}

	// A Monday 09:00 -> 02:00 shift closes on Tuesday morning.
	occ := NextOccurrences(cfg, monday(10, 0))

	require.NotNil(t, occ.NextClose)
	assert.Equal(t, tuesday(2, 0), occ.NextClose.UTC())
}

func TestNextOccurrencesDisabledOperations(t *testing.T) {
	cfg := weekdayConfig()
	cfg.AutoOpenEnabled = false
	cfg.AutoCloseEnabled = false

	occ := NextOccurrences(cfg, monday(8, 0))
	assert.Nil(t, occ.NextOpen)
	assert.Nil(t, occ.NextClose)

	cfg.AutoOpenEnabled = true
	cfg.ActiveDays = nil
	occ = NextOccurrences(cfg, monday(8, 0))
	assert.Nil(t, occ.NextOpen)
}

func TestNextOccurrencesMalformedTimezone(t *testing.T) {
	cfg := weekdayConfig()
	cfg.Timezone = "Not/AZone"

	occ := NextOccurrences(cfg, monday(8, 0))
	assert.Nil(t, occ.NextOpen)
	assert.Nil(t, occ.NextClose)
}
