package schedule

import (
	"time"

	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
)

// Occurrences are the next projected automatic operations for a config.
// A nil field means that operation will never fire under the current config.
type Occurrences struct {
	NextOpen  *time.Time `json:"next_open,omitempty"`
	NextClose *time.Time `json:"next_close,omitempty"`
}

// NextOccurrences projects the schedule forward from now: the next instant an
// auto-open would fire and the next instant an auto-close would fire, using
// the same active-day and midnight-wraparound rules the evaluator applies.
func NextOccurrences(cfg *entity.ScheduleConfig, now time.Time) Occurrences {
	var occ Occurrences
	if cfg == nil {
		return occ
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return occ
	}
	local := now.In(loc)

	if cfg.AutoOpenEnabled {
		occ.NextOpen = nextAt(local, cfg.OpenMinutesOfDay(), func(day int) bool {
			return cfg.IsDayActive(day)
		})
	}
	if cfg.AutoCloseEnabled {
		occ.NextClose = nextAt(local, cfg.CloseMinutesOfDay(), func(day int) bool {
			if cfg.CrossesMidnight() {
				return cfg.IsDayActive(previousISOWeekday(day))
			}
			return cfg.IsDayActive(day)
		})
	}
	return occ
}

// nextAt scans up to eight days forward for the first candidate instant at
// the given minutes-of-day whose weekday passes the membership check and that
// lies strictly after now.
func nextAt(local time.Time, minutes int, dayOK func(weekday int) bool) *time.Time {
	for d := 0; d < 8; d++ {
		day := local.AddDate(0, 0, d)
		candidate := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, local.Location())
		if !candidate.After(local) {
			continue
		}
		if dayOK(ISOWeekday(candidate.Weekday())) {
			return &candidate
		}
	}
	return nil
}
