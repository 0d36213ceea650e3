package services

import (
	"strings"
	"time"
)

// NormalizeSlot reduces a template slot entry to "HH:mm" so that it can be
// compared against a booked time of day. "09:00 AM" and "9:00" both
// normalize to "09:00"; the AM/PM suffix carries no offset, it is display
// formatting in the template.
func NormalizeSlot(slot string) string {
	s := strings.ToUpper(strings.TrimSpace(slot))
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	return padTime(s)
}

// padTime zero-pads single-digit hour or minute components, dropping any
// seconds: "9:5" -> "09:05".
func padTime(t string) string {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	hh := strings.TrimSpace(parts[0])
	mm := strings.TrimSpace(parts[1])
	if len(hh) == 1 {
		hh = "0" + hh
	}
	if len(mm) == 1 {
		mm = "0" + mm
	}
	return hh + ":" + mm
}

// timeOfDay formats a timestamp's time-of-day as "HH:mm".
func timeOfDay(t time.Time) string {
	return t.Format("15:04")
}

// dayRange returns the inclusive range covering one calendar date,
// [00:00:00, 23:59:59.999999999]. The end is derived from the next
// calendar day rather than a 24h offset, which would drift on DST
// transition days.
func dayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day()+1, 0, 0, 0, 0, date.Location()).Add(-time.Nanosecond)
	return start, end
}
