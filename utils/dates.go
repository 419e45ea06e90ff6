package utils

import "time"

const ISODate = "2006-01-02"

// LocalISODate returns t as a YYYY-MM-DD string in local time, the day
// key used across all log collections.
func LocalISODate(t time.Time) string {
	return t.Local().Format(ISODate)
}

// ParseISODate validates a YYYY-MM-DD day string.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(ISODate, s, time.Local)
}
