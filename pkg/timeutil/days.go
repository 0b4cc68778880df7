package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutDate is the calendar-day layout used for target dates. There is
	// no time component and no timezone; dates are local calendar days.
	LayoutDate = "2006-01-02"

	// PreciseWindowDays is the threshold below which the countdown switches
	// to a live hours/minutes display.
	PreciseWindowDays = 7

	day = 24 * time.Hour
)

// ParseDate parses a strict "YYYY-MM-DD" string into local midnight of that
// calendar day. The bool is false for malformed or missing input.
func ParseDate(date string) (time.Time, bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > 31 {
		return time.Time{}, false
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local), true
}

// Midnight truncates t to local midnight of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DaysLeft counts whole calendar days from now's day to the target day,
// clamped at zero. Malformed input yields zero; it never fails.
func DaysLeft(target string, now time.Time) int {
	tm, ok := ParseDate(target)
	if !ok {
		return 0
	}
	diff := tm.Sub(Midnight(now))
	days := int((diff + day - 1) / day)
	if days < 0 {
		return 0
	}
	return days
}

// Breakdown is the live countdown remainder. When Precise is true the hours
// and minutes come from the true millisecond difference, not day rounding.
type Breakdown struct {
	Days    int
	Hours   int
	Minutes int
	Precise bool
}

// TimeLeft computes the remainder between now and the target's midnight.
// A passed or malformed target yields the zero Breakdown.
func TimeLeft(target string, now time.Time) Breakdown {
	tm, ok := ParseDate(target)
	if !ok {
		return Breakdown{}
	}
	diff := tm.Sub(now)
	if diff <= 0 {
		return Breakdown{}
	}
	totalMinutes := int(diff / time.Minute)
	b := Breakdown{
		Days:    totalMinutes / (24 * 60),
		Hours:   (totalMinutes % (24 * 60)) / 60,
		Minutes: totalMinutes % 60,
	}
	b.Precise = b.Days < PreciseWindowDays
	return b
}

// IsMemoir reports whether the target date is strictly before today's
// calendar day. A target equal to today is not yet a memoir; that day is
// the celebratory day-of, and the transition happens the day after.
func IsMemoir(target string, now time.Time) bool {
	tm, ok := ParseDate(target)
	if !ok {
		return false
	}
	return tm.Before(Midnight(now))
}

// IsToday reports whether the target date is now's calendar day.
func IsToday(target string, now time.Time) bool {
	tm, ok := ParseDate(target)
	if !ok {
		return false
	}
	return tm.Equal(Midnight(now))
}

// TimeAgo renders the elapsed time since a passed target date in coarse
// human buckets: days under a week, weeks under thirty days, months under a
// year, then years. Wording goes singular at exactly one.
func TimeAgo(target string, now time.Time) string {
	tm, ok := ParseDate(target)
	if !ok {
		return ""
	}
	days := int(Midnight(now).Sub(tm) / day)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		years := days / 365
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}
