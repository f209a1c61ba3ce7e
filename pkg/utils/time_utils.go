package utils

import (
	"errors"
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// China Standard Time (+08:00)
var cnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Shanghai"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

func ChinaLocation() *time.Location { return cnLoc }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// TodayCN is midnight of the current calendar day in China, expressed in UTC.
func TodayCN(now time.Time) time.Time {
	local := now.In(cnLoc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp and keeps only the calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// CalculateDays is the inclusive day count between two dates. Inverted ranges use the absolute gap.
func CalculateDays(start, end time.Time) int {
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return int(math.Ceil(diff)) + 1
}

func FromUnixSecondsCN(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(cnLoc)
}

func FormatRFC3339CN(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(cnLoc).Format(time.RFC3339)
}
