package task

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var deadlineToken = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ParseDeadline interprets text as a 24-hour HH:MM clock time and anchors it
// to the current day. A time already past relative to now rolls forward to
// tomorrow; time.Date handles month and year boundaries.
func ParseDeadline(text string, now time.Time) (time.Time, error) {
	clock, err := time.Parse("15:04", text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDeadline, text)
	}

	deadline := time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), 0, 0, now.Location())
	if deadline.Before(now) {
		deadline = deadline.AddDate(0, 0, 1)
	}
	return deadline, nil
}

// Split separates a free-text entry into a description and an optional
// trailing deadline token. The last space-separated token is taken as the
// deadline whenever it is shaped like H:MM or HH:MM; a description that
// merely ends in something time-like is misparsed, and there is no escape
// hatch. Callers wanting an unambiguous deadline pass it separately.
func Split(input string) (description, deadlineText string) {
	input = strings.TrimSpace(input)
	i := strings.LastIndexByte(input, ' ')
	if i < 0 {
		return input, ""
	}
	token := input[i+1:]
	if !deadlineToken.MatchString(token) {
		return input, ""
	}
	return strings.TrimSpace(input[:i]), token
}
