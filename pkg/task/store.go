package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrEmptyDescription = errors.New("task description is empty")
	ErrBadDeadline      = errors.New("deadline is not a valid HH:MM time")
	ErrNoSuchTask       = errors.New("no task at that position")
)

// Store holds the task list in insertion order, which is also display order.
// It is not safe for concurrent use; callers running it from more than one
// goroutine must serialize access themselves.
type Store struct {
	tasks []*Task
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add appends a new pending task. The description is trimmed and must be
// non-empty; deadlineText is optional HH:MM, resolved against the current
// time per ParseDeadline. On any error the store is left unchanged.
func (s *Store) Add(description, deadlineText string) (*Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	var deadline *LocalTime
	if deadlineText != "" {
		due, err := ParseDeadline(deadlineText, s.now())
		if err != nil {
			return nil, err
		}
		deadline = &LocalTime{due}
	}

	t := &Task{Description: description, Deadline: deadline}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Complete marks the task at position i done. Completing an already
// completed task is a no-op.
func (s *Store) Complete(i int) error {
	if i < 0 || i >= len(s.tasks) {
		return ErrNoSuchTask
	}
	s.tasks[i].Completed = true
	return nil
}

// Delete removes the task at position i, preserving the order of the rest.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.tasks) {
		return ErrNoSuchTask
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Tasks returns the underlying sequence in insertion order.
func (s *Store) Tasks() []*Task {
	return s.tasks
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Save writes the full task list to path as an indented JSON array. The
// in-memory list is valid regardless of the outcome.
func (s *Store) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write tasks file: %w", err)
	}
	defer f.Close()

	tasks := s.tasks
	if tasks == nil {
		tasks = []*Task{}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("could not write tasks file: %w", err)
	}
	return nil
}

// Load replaces the task list with the contents of path. A missing file or
// unreadable JSON means "no tasks yet" and leaves an empty store; fields
// absent from a record keep their zero values.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.tasks = nil
			return nil
		}
		return fmt.Errorf("could not read tasks file: %w", err)
	}
	defer f.Close()

	var tasks []*Task
	if err := json.NewDecoder(f).Decode(&tasks); err != nil {
		s.tasks = nil
		return nil
	}
	// A null element decodes without error but is as malformed as bad JSON.
	for _, t := range tasks {
		if t == nil {
			s.tasks = nil
			return nil
		}
	}
	s.tasks = tasks
	return nil
}
