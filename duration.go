package countdown

import (
	"fmt"
	"strings"
	"time"
)

// Format renders the time left from now until deadline as
// [days]<sep>HH<sep>MM<sep>SS. The day field is zero-padded to daysLen
// digits and omitted when daysLen is 0; more days than fit simply widen
// the field. Hours, minutes and seconds are always two digits.
//
// The fields are the calendar difference: when both instants share a
// location, a day is a wall-clock day, so a span crossing a DST change
// still counts midday to midday as one day. Once now reaches the deadline
// every field is zero and expired is true. Sub-second remainders are
// dropped.
func Format(deadline, now time.Time, daysLen int, sep string) (text string, expired bool) {
	if !now.Before(deadline) {
		return joinFields(daysLen, sep, "0", "00", "00", "00"), true
	}

	secs := int64(calendarDiff(deadline, now) / time.Second)
	days := secs / 86400
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60
	seconds := secs % 60

	return joinFields(daysLen, sep,
		fmt.Sprintf("%0*d", max(daysLen, 1), days),
		fmt.Sprintf("%02d", hours),
		fmt.Sprintf("%02d", minutes),
		fmt.Sprintf("%02d", seconds),
	), false
}

// calendarDiff returns deadline - now measured on the wall clock of their
// shared location. Instants in different locations, and spans whose wall
// clock runs backwards across a DST fall-back, use elapsed time.
func calendarDiff(deadline, now time.Time) time.Duration {
	elapsed := deadline.Sub(now)
	if deadline.Location() != now.Location() {
		return elapsed
	}
	if wall := wallClock(deadline).Sub(wallClock(now)); wall > 0 {
		return wall
	}
	return elapsed
}

// wallClock reinterprets the date and clock reading of t as UTC.
func wallClock(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

func joinFields(daysLen int, sep, days, hours, minutes, seconds string) string {
	if daysLen <= 0 {
		return hours + sep + minutes + sep + seconds
	}
	if len(days) < daysLen {
		days = strings.Repeat("0", daysLen-len(days)) + days
	}
	return days + sep + hours + sep + minutes + sep + seconds
}
