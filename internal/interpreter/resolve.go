package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format exchanged with the model.
const DateLayout = "2006-01-02"

var (
	tomorrowPattern  = regexp.MustCompile(`(?i)\btomorrow\b`)
	yesterdayPattern = regexp.MustCompile(`(?i)\byesterday\b`)

	// Checked in this order; the first match wins.
	clockWithMinutesPattern = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)\b`)
	clockHourPattern        = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	clock24Pattern          = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// dateField names the field holding the date of a task or reminder.
func dateField(kind Kind) (string, bool) {
	switch kind {
	case KindTask:
		return "dueDate", true
	case KindReminder:
		return "date", true
	}
	return "", false
}

// ResolveRelativeDate overwrites the date of a task or reminder when the
// user's own words say "tomorrow" or "yesterday". The model's date is never
// trusted over those words. "tomorrow" is checked first.
func ResolveRelativeDate(text string, kind Kind, fields Fields, now time.Time) {
	key, ok := dateField(kind)
	if !ok || fields == nil {
		return
	}

	switch {
	case tomorrowPattern.MatchString(text):
		fields[key] = now.AddDate(0, 0, 1).Format(DateLayout)
	case yesterdayPattern.MatchString(text):
		fields[key] = now.AddDate(0, 0, -1).Format(DateLayout)
	}
}

// ResolveTime returns the 24-hour "HH:MM" time written in the user's input,
// or modelTime unchanged when the input has no time expression.
func ResolveTime(text, modelTime string) string {
	if m := clockWithMinutesPattern.FindStringSubmatch(text); m != nil {
		return clock(to24Hour(atoi(m[1]), m[3]), atoi(m[2]))
	}
	if m := clockHourPattern.FindStringSubmatch(text); m != nil {
		return clock(to24Hour(atoi(m[1]), m[2]), 0)
	}
	if m := clock24Pattern.FindStringSubmatch(text); m != nil {
		return clock(atoi(m[1]), atoi(m[2]))
	}
	return modelTime
}

func to24Hour(hour int, period string) int {
	switch {
	case strings.EqualFold(period, "pm") && hour != 12:
		return hour + 12
	case strings.EqualFold(period, "am") && hour == 12:
		return 0
	}
	return hour
}

func clock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
