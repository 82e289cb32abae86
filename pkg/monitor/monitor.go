// Package monitor implements the periodic deadline check. It owns the
// notified flag: a task is reported as newly due exactly once, on the first
// check after its deadline passes.
package monitor

import (
	"time"

	"github.com/mustdoapp/mustdo/pkg/task"
)

type Monitor struct {
	store *task.Store
}

func New(store *task.Store) *Monitor {
	return &Monitor{store: store}
}

// Check scans the store and flags every task whose deadline is at or before
// now and that is neither completed nor already notified. It returns the
// tasks flagged on this call, so a second call with the same now and no
// intervening mutation returns nothing. Whether and how to alert on a
// non-empty result is the caller's business.
func (m *Monitor) Check(now time.Time) []*task.Task {
	var due []*task.Task
	for _, t := range m.store.Tasks() {
		if t.Completed || t.Notified || !t.Overdue(now) {
			continue
		}
		t.Notified = true
		due = append(due, t)
	}
	return due
}
