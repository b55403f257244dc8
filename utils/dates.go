// utils/dates.go
package utils

import "time"

const dayLayout = "2006-01-02"

// DayString formats a time as the plain calendar day the schedule and order
// records store.
func DayString(t time.Time) string {
	return t.Format(dayLayout)
}

func Today() string {
	return DayString(time.Now())
}
