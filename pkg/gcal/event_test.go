package gcal

import (
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/mustdoapp/mustdo/pkg/task"
)

func timedEventAt(t *testing.T, description string) *calendar.Event {
	t.Helper()
	deadline := &task.LocalTime{Time: time.Date(2026, 8, 25, 9, 7, 0, 0, time.Local)}
	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.Local)
	event, err := eventForTask(&task.Task{Description: description, Deadline: deadline}, now)
	if err != nil {
		t.Fatalf("eventForTask failed: %v", err)
	}
	return event
}

func TestEventNeedsPatchNoChanges(t *testing.T) {
	target := timedEventAt(t, "Buy milk")
	existing := timedEventAt(t, "Buy milk")

	patch, err := eventNeedsPatch(existing, target)
	if err != nil {
		t.Fatalf("eventNeedsPatch failed: %v", err)
	}
	if patch != nil {
		t.Errorf("Expected no patch for identical events, got %+v", patch)
	}
}

func TestEventNeedsPatchSummaryChanged(t *testing.T) {
	target := timedEventAt(t, "Buy milk")
	existing := timedEventAt(t, "Buy milk")
	existing.Summary = "Buy oat milk"

	patch, err := eventNeedsPatch(existing, target)
	if err != nil {
		t.Fatalf("eventNeedsPatch failed: %v", err)
	}
	if patch == nil || patch.Summary != target.Summary {
		t.Errorf("Expected summary patch, got %+v", patch)
	}
}

func TestEventNeedsPatchAllDayEvent(t *testing.T) {
	target := timedEventAt(t, "Buy milk")
	existing := timedEventAt(t, "Buy milk")
	// A user converted the event to all-day: date only, no datetime.
	existing.Start = &calendar.EventDateTime{Date: "2026-08-25"}
	existing.End = &calendar.EventDateTime{Date: "2026-08-26"}

	patch, err := eventNeedsPatch(existing, target)
	if err != nil {
		t.Fatalf("eventNeedsPatch should handle date-only events, got %v", err)
	}
	if patch == nil || patch.Start == nil || patch.End == nil {
		t.Fatalf("Expected a patch restoring the timed window, got %+v", patch)
	}
	if patch.Start.DateTime != target.Start.DateTime || patch.End.DateTime != target.End.DateTime {
		t.Errorf("Expected target times in patch, got start %q end %q",
			patch.Start.DateTime, patch.End.DateTime)
	}
}

func TestEventForTaskRequiresDeadline(t *testing.T) {
	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.Local)
	if _, err := eventForTask(&task.Task{Description: "No deadline"}, now); err == nil {
		t.Error("Expected error for task without deadline")
	}
}
