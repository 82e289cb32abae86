package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLocalTimeMarshal(t *testing.T) {
	lt := LocalTime{time.Date(2026, 8, 25, 9, 7, 0, 0, time.Local)}
	b, err := json.Marshal(lt)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `"2026-08-25T09:07:00"` {
		t.Errorf("Expected zoneless timestamp, got %s", b)
	}
}

func TestLocalTimeUnmarshalFractionalSeconds(t *testing.T) {
	var lt LocalTime
	if err := json.Unmarshal([]byte(`"2026-08-25T09:07:00.500000"`), &lt); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := time.Date(2026, 8, 25, 9, 7, 0, 500000000, time.Local)
	if !lt.Equal(want) {
		t.Errorf("Expected %v, got %v", want, lt.Time)
	}
}

func TestLocalTimeUnmarshalInvalid(t *testing.T) {
	var lt LocalTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &lt); err == nil {
		t.Error("Expected error for unparsable timestamp")
	}
}

func TestTaskNullDeadline(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"description": "X", "deadline": null}`), &task); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if task.Deadline != nil {
		t.Errorf("Expected nil deadline, got %v", task.Deadline)
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local)
	past := &LocalTime{now.Add(-time.Minute)}
	exact := &LocalTime{now}
	future := &LocalTime{now.Add(time.Minute)}

	tests := []struct {
		name     string
		deadline *LocalTime
		want     bool
	}{
		{"none", nil, false},
		{"past", past, true},
		{"exactly now", exact, true},
		{"future", future, false},
	}
	for _, tt := range tests {
		task := &Task{Description: "X", Deadline: tt.deadline}
		if got := task.Overdue(now); got != tt.want {
			t.Errorf("Overdue(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
