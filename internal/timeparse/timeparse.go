// Package timeparse resolves event times out of free-form user text and
// computes recurring broadcast times in a fixed target timezone.
package timeparse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Slack date token, e.g. <!date^1392734382^{date_num} {time_secs}|fallback>.
// The first capture group is the epoch in seconds.
var slackDateRE = regexp.MustCompile(`<!date\^(\d+)\^`)

// Simple clock time: "11am", "2 pm", "20:00", "8:30am", optionally prefixed
// with "at" or "@". Only the first match in the text is used.
var clockTimeRE = regexp.MustCompile(`(?i)\b(?:(?:at|@)\s*)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

// ExtractMessageTimestamp returns the instant of the first Slack date token
// embedded in text, or false if there is none.
func ExtractMessageTimestamp(text string) (time.Time, bool) {
	m := slackDateRE.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	epoch, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(epoch, 0).UTC(), true
}

// ParseClockTime finds the first clock-time-shaped substring in text and
// resolves it to the next occurrence of that local time strictly after now in
// loc. A time-of-day that already passed today resolves to tomorrow.
func ParseClockTime(text string, now time.Time, loc *time.Location) (time.Time, bool) {
	m := clockTimeRE.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	minute := 0
	if m[2] != "" {
		if minute, err = strconv.Atoi(m[2]); err != nil {
			return time.Time{}, false
		}
	}
	if ampm := strings.ToLower(m[3]); ampm != "" {
		hour %= 12
		if ampm == "pm" {
			hour += 12
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}

	nowLocal := now.In(loc)
	candidate := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), hour, minute, 0, 0, loc)
	if !candidate.After(nowLocal) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate, true
}

// ResolveEventTime tries both extraction strategies in priority order: a
// Slack date token is unambiguous and wins; a plain clock time is the
// fallback.
func ResolveEventTime(text string, now time.Time, loc *time.Location) (time.Time, bool) {
	if ts, ok := ExtractMessageTimestamp(text); ok {
		return ts, true
	}
	return ParseClockTime(text, now, loc)
}

// NextRecurring returns the earliest occurrence of any of the given hours (at
// minute zero, in loc) strictly after now. When every candidate for today has
// passed it wraps to the smallest hour on the following day.
func NextRecurring(now time.Time, hours []int, loc *time.Location) time.Time {
	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	nowLocal := now.In(loc)
	for _, h := range sorted {
		candidate := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), h, 0, 0, 0, loc)
		if candidate.After(nowLocal) {
			return candidate
		}
	}
	first := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), sorted[0], 0, 0, 0, loc)
	return first.AddDate(0, 0, 1)
}
