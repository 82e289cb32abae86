package task

import (
	"fmt"
	"strings"
	"time"
)

// Task is a single to-do entry. The JSON shape is the on-disk format:
// deadline is null when unset, otherwise a local timestamp with no zone.
type Task struct {
	Description string     `json:"description"`
	Deadline    *LocalTime `json:"deadline"`
	Completed   bool       `json:"completed"`
	Notified    bool       `json:"notified"`
}

// Overdue reports whether the task has a deadline at or before now.
func (t *Task) Overdue(now time.Time) bool {
	return t.Deadline != nil && !t.Deadline.After(now)
}

// LocalTime is a time.Time that marshals as an ISO-8601 local timestamp
// without a zone, e.g. "2026-08-25T09:07:00".
type LocalTime struct {
	time.Time
}

const localTimeLayout = "2006-01-02T15:04:05"

// Files written by older versions may carry fractional seconds.
var localTimeLayouts = []string{
	localTimeLayout,
	"2006-01-02T15:04:05.999999",
}

func (lt *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		lt.Time = time.Time{}
		return nil
	}

	var err error
	for _, layout := range localTimeLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			lt.Time = t
			return nil
		}
	}
	return fmt.Errorf("failed to parse deadline %q: %w", s, err)
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.Format(localTimeLayout) + `"`), nil
}
