package timeutil

import (
	"fmt"
	"testing"
	"time"
)

var noon = time.Date(2025, time.March, 15, 12, 30, 0, 0, time.Local)

func dateOffset(days int) string {
	return Midnight(noon).AddDate(0, 0, days).Format(LayoutDate)
}

func TestDaysLeftToday(t *testing.T) {
	if got := DaysLeft(dateOffset(0), noon); got != 0 {
		t.Fatalf("target today: expected 0 days, got %d", got)
	}
}

func TestDaysLeftFuture(t *testing.T) {
	if got := DaysLeft(dateOffset(10), noon); got != 10 {
		t.Fatalf("expected 10 days, got %d", got)
	}
	if got := DaysLeft(dateOffset(1), noon); got != 1 {
		t.Fatalf("expected 1 day, got %d", got)
	}
}

func TestDaysLeftClampsPast(t *testing.T) {
	if got := DaysLeft(dateOffset(-3), noon); got != 0 {
		t.Fatalf("past target should clamp to 0, got %d", got)
	}
}

func TestDaysLeftMalformed(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2025-13-01", "2025-02", "20250201", "a-b-c"} {
		if got := DaysLeft(in, noon); got != 0 {
			t.Fatalf("malformed %q: expected 0, got %d", in, got)
		}
	}
}

func TestTimeLeftPreciseWindow(t *testing.T) {
	far := TimeLeft(dateOffset(10), noon)
	if far.Precise {
		t.Fatalf("10 days out should not be precise")
	}
	if far.Days != 9 {
		// 9 whole days plus the 11h30 remainder of today.
		t.Fatalf("expected 9 whole days, got %d", far.Days)
	}

	near := TimeLeft(dateOffset(3), noon)
	if !near.Precise {
		t.Fatalf("3 days out should be precise")
	}
	if near.Days != 2 || near.Hours != 11 || near.Minutes != 30 {
		t.Fatalf("unexpected breakdown: %+v", near)
	}
}

func TestTimeLeftVariesWithNow(t *testing.T) {
	target := dateOffset(3)
	a := TimeLeft(target, noon)
	b := TimeLeft(target, noon.Add(17*time.Minute))
	if a == b {
		t.Fatalf("precise countdown should move with the clock")
	}
	if b.Minutes != (a.Minutes+60-17)%60 {
		t.Fatalf("minutes should tick down: %+v then %+v", a, b)
	}
}

func TestTimeLeftPassed(t *testing.T) {
	got := TimeLeft(dateOffset(-1), noon)
	if got != (Breakdown{}) {
		t.Fatalf("passed target should be the zero breakdown, got %+v", got)
	}
	// Target midnight of today is already behind a mid-day now.
	if got := TimeLeft(dateOffset(0), noon); got != (Breakdown{}) {
		t.Fatalf("today's midnight is behind noon, got %+v", got)
	}
}

func TestIsMemoirBoundary(t *testing.T) {
	if IsMemoir(dateOffset(0), noon) {
		t.Fatalf("target equal to today is not yet a memoir")
	}
	if !IsMemoir(dateOffset(-1), noon) {
		t.Fatalf("yesterday's target is a memoir")
	}
	if IsMemoir("not-a-date", noon) {
		t.Fatalf("malformed dates are never memoirs")
	}
}

func TestIsToday(t *testing.T) {
	if !IsToday(dateOffset(0), noon) {
		t.Fatalf("expected today match")
	}
	if IsToday(dateOffset(1), noon) {
		t.Fatalf("tomorrow is not today")
	}
}

func TestTimeAgoBuckets(t *testing.T) {
	cases := []struct {
		daysAgo int
		want    string
	}{
		{0, "Today"},
		{1, "1 day ago"},
		{6, "6 days ago"},
		{7, "1 week ago"},
		{13, "1 week ago"},
		{14, "2 weeks ago"},
		{29, "4 weeks ago"},
		{30, "1 month ago"},
		{59, "1 month ago"},
		{60, "2 months ago"},
		{364, "12 months ago"},
		{365, "1 year ago"},
		{800, "2 years ago"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dd", tc.daysAgo), func(t *testing.T) {
			if got := TimeAgo(dateOffset(-tc.daysAgo), noon); got != tc.want {
				t.Fatalf("daysAgo=%d: expected %q, got %q", tc.daysAgo, tc.want, got)
			}
		})
	}
}
