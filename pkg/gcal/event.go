package gcal

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/mustdoapp/mustdo/pkg/task"
)

const taskKeyProperty = "mustdo_key"

// Calendar color IDs: lavender for pending, sage for done, tomato for overdue.
const (
	colorPending   = "1"
	colorCompleted = "2"
	colorOverdue   = "11"
)

const eventDuration = 30 * time.Minute

// eventForTask converts a deadline task to its calendar event. Tasks without
// a deadline have nothing to anchor an event to and are rejected.
func eventForTask(t *task.Task, now time.Time) (*calendar.Event, error) {
	if t.Deadline == nil {
		return nil, fmt.Errorf("task %q has no deadline to schedule", t.Description)
	}

	summary := t.Description
	colorID := colorPending
	if t.Completed {
		summary = "✓ " + summary
		colorID = colorCompleted
	} else if t.Overdue(now) {
		summary = "! " + summary
		colorID = colorOverdue
	}

	start := t.Deadline.Time
	return &calendar.Event{
		Summary: summary,
		ColorId: colorID,
		Start: &calendar.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: start.Add(eventDuration).UTC().Format(time.RFC3339),
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				taskKeyProperty: t.Description,
			},
		},
	}, nil
}

// eventNeedsPatch returns a partial event carrying only the fields that
// differ between the existing event and the target, or nil when they match.
func eventNeedsPatch(existing, target *calendar.Event) (*calendar.Event, error) {
	patch := &calendar.Event{}
	needsUpdate := false

	if existing.Summary != target.Summary {
		patch.Summary = target.Summary
		needsUpdate = true
	}
	if existing.ColorId != target.ColorId {
		patch.ColorId = target.ColorId
		needsUpdate = true
	}

	// An event converted to all-day carries a Date instead of a DateTime;
	// restore the timed window rather than failing the sync.
	if existing.Start == nil || existing.Start.DateTime == "" ||
		existing.End == nil || existing.End.DateTime == "" {
		patch.Start = target.Start
		patch.End = target.End
		return patch, nil
	}

	existingStart, err := time.Parse(time.RFC3339, existing.Start.DateTime)
	if err != nil {
		return nil, err
	}
	targetStart, err := time.Parse(time.RFC3339, target.Start.DateTime)
	if err != nil {
		return nil, err
	}
	existingEnd, err := time.Parse(time.RFC3339, existing.End.DateTime)
	if err != nil {
		return nil, err
	}
	targetEnd, err := time.Parse(time.RFC3339, target.End.DateTime)
	if err != nil {
		return nil, err
	}
	if !existingStart.Equal(targetStart) || !existingEnd.Equal(targetEnd) {
		patch.Start = target.Start
		patch.End = target.End
		needsUpdate = true
	}

	if needsUpdate {
		return patch, nil
	}
	return nil, nil
}
