// Package gcal pushes deadline tasks to a Google Calendar so their alarms
// also surface as calendar reminders.
package gcal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/mustdoapp/mustdo/pkg/auth"
	"github.com/mustdoapp/mustdo/pkg/index"
	"github.com/mustdoapp/mustdo/pkg/task"
)

// Client is a Google Calendar API client bound to one calendar.
type Client struct {
	srv        *calendar.Service
	calendarID string
	index      *index.EventIndex
}

// New authenticates and resolves calendarName to its ID.
func New(ctx context.Context, calendarName string, idx *index.EventIndex) (*Client, error) {
	srv, err := auth.Service(ctx)
	if err != nil {
		return nil, err
	}

	calendarList, err := srv.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve calendar list: %w", err)
	}

	var calendarID string
	for _, item := range calendarList.Items {
		if item.Summary == calendarName {
			calendarID = item.Id
			break
		}
	}
	if calendarID == "" {
		return nil, fmt.Errorf("calendar %q not found", calendarName)
	}

	return &Client{srv: srv, calendarID: calendarID, index: idx}, nil
}

// SyncTask creates the event for a deadline task, or patches the existing
// one when only some fields changed.
func (c *Client) SyncTask(t *task.Task, now time.Time) (*calendar.Event, error) {
	target, err := eventForTask(t, now)
	if err != nil {
		return nil, err
	}

	existing, err := c.findEvent(t.Description)
	if err != nil {
		return nil, fmt.Errorf("error searching for event: %w", err)
	}

	if existing != nil {
		patch, err := eventNeedsPatch(existing, target)
		if err != nil {
			return nil, err
		}
		if patch == nil {
			return existing, nil
		}
		updated, err := c.srv.Events.Patch(c.calendarID, existing.Id, patch).Do()
		if err == nil && c.index != nil {
			c.index.Set(t.Description, updated.Id)
		}
		return updated, err
	}

	created, err := c.srv.Events.Insert(c.calendarID, target).Do()
	if err == nil && c.index != nil {
		c.index.Set(t.Description, created.Id)
	}
	return created, err
}

// DeleteByKey removes the event mapped to a task key, for tasks deleted
// from the store since the last sync.
func (c *Client) DeleteByKey(key string) error {
	event, err := c.findEvent(key)
	if err != nil {
		return err
	}
	if event != nil {
		if err := c.srv.Events.Delete(c.calendarID, event.Id).Do(); err != nil {
			return err
		}
	}
	if c.index != nil {
		c.index.Remove(key)
	}
	return nil
}

// findEvent looks the task key up in the local index first, falling back to
// an extended-property search against the API.
func (c *Client) findEvent(key string) (*calendar.Event, error) {
	if c.index != nil {
		if eventID := c.index.Get(key); eventID != "" {
			event, err := c.srv.Events.Get(c.calendarID, eventID).Do()
			if err == nil {
				return event, nil
			}
			// Stale index entry; fall through to search.
		}
	}

	events, err := c.srv.Events.List(c.calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", taskKeyProperty, key)).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) > 0 {
		return events.Items[0], nil
	}
	return nil, nil
}
