// Package schedule decides whether an automatic register operation is due.
// Everything here is pure: the evaluator holds no state and performs no I/O,
// so it may report an operation as due on several consecutive polls within
// the same matching window. At-most-once execution is the orchestrator's
// responsibility, enforced through the operation log.
package schedule

import (
	"time"

	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
)

// DefaultWindowMinutes is the span of local time after a scheduled moment
// during which the operation is still considered due. Five minutes tolerates
// a missed poll tick without reaching into the next day's window.
const DefaultWindowMinutes = 5

// Evaluator answers "should this operation fire right now" for a schedule
// config and an instant.
type Evaluator struct {
	windowMinutes int
}

// NewEvaluator creates an evaluator with the given matching window in
// minutes. Non-positive values fall back to DefaultWindowMinutes.
func NewEvaluator(windowMinutes int) *Evaluator {
	if windowMinutes <= 0 {
		windowMinutes = DefaultWindowMinutes
	}
	return &Evaluator{windowMinutes: windowMinutes}
}

// ShouldExecute reports whether the given operation is due at instant now
// under the config. A malformed timezone or an empty active-day set means the
// schedule never fires.
func (e *Evaluator) ShouldExecute(cfg *entity.ScheduleConfig, op enum.OperationType, now time.Time) bool {
	if cfg == nil {
		return false
	}
	switch op {
	case enum.OperationTypeAutoOpen:
		if !cfg.AutoOpenEnabled {
			return false
		}
	case enum.OperationTypeAutoClose:
		if !cfg.AutoCloseEnabled {
			return false
		}
	default:
		return false
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return false
	}
	local := now.In(loc)
	weekday := ISOWeekday(local.Weekday())
	currentMinutes := local.Hour()*60 + local.Minute()

	if op == enum.OperationTypeAutoOpen {
		if !cfg.IsDayActive(weekday) {
			return false
		}
		return e.inWindow(currentMinutes, cfg.OpenMinutesOfDay())
	}

	// A close that wraps past midnight happens on the morning after the day
	// it is scheduled on, so its active-day membership is checked against
	// the previous weekday: a Monday 09:00→02:00 schedule fires the close
	// on Tuesday 02:00, and Monday is the day that must be active.
	closeDay := weekday
	if cfg.CrossesMidnight() {
		closeDay = previousISOWeekday(weekday)
	}
	if !cfg.IsDayActive(closeDay) {
		return false
	}
	return e.inWindow(currentMinutes, cfg.CloseMinutesOfDay())
}

func (e *Evaluator) inWindow(current, target int) bool {
	diff := current - target
	return diff >= 0 && diff < e.windowMinutes
}

// ISOWeekday maps Go's weekday to the 1=Monday..7=Sunday convention used in
// schedule configs.
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

func previousISOWeekday(weekday int) int {
	if weekday == 1 {
		return 7
	}
	return weekday - 1
}

// DayBounds returns the half-open instant range [from, to) covering the local
// calendar day of now in the given location. This range is the deduplication
// window for one (tenant, operation, day) key.
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}

// ScheduledAt returns the instant on now's local calendar day at which the
// operation was scheduled to fire. It is what the operation log records as
// the scheduled time for an execution attempt.
func ScheduledAt(cfg *entity.ScheduleConfig, op enum.OperationType, now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	minutes := cfg.OpenMinutesOfDay()
	if op == enum.OperationTypeAutoClose {
		minutes = cfg.CloseMinutesOfDay()
	}
	return time.Date(local.Year(), local.Month(), local.Day(), minutes/60, minutes%60, 0, 0, loc)
}
