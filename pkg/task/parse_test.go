package task

import (
	"errors"
	"testing"
	"time"
)

func TestParseDeadlineSameDay(t *testing.T) {
	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	deadline, err := ParseDeadline("09:07", now)
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	want := time.Date(2026, 8, 25, 9, 7, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Errorf("Expected deadline %v, got %v", want, deadline)
	}
}

func TestParseDeadlineRollsForward(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	deadline, err := ParseDeadline("09:07", now)
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	want := time.Date(2026, 8, 26, 9, 7, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Errorf("Expected deadline %v, got %v", want, deadline)
	}
}

func TestParseDeadlineExactlyNowStaysToday(t *testing.T) {
	now := time.Date(2026, 8, 25, 9, 7, 0, 0, time.UTC)
	deadline, err := ParseDeadline("09:07", now)
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	if !deadline.Equal(now) {
		t.Errorf("Expected deadline %v, got %v", now, deadline)
	}
}

func TestParseDeadlineMonthRollover(t *testing.T) {
	now := time.Date(2026, 1, 31, 23, 30, 0, 0, time.UTC)
	deadline, err := ParseDeadline("22:00", now)
	if err != nil {
		t.Fatalf("ParseDeadline failed: %v", err)
	}
	want := time.Date(2026, 2, 1, 22, 0, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Errorf("Expected deadline %v, got %v", want, deadline)
	}
}

func TestParseDeadlineInvalid(t *testing.T) {
	now := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	for _, text := range []string{"25:99", "9am", "0907", "12:5x", ""} {
		if _, err := ParseDeadline(text, now); err == nil {
			t.Errorf("Expected error for %q, got none", text)
		} else if !errors.Is(err, ErrBadDeadline) {
			t.Errorf("Expected ErrBadDeadline for %q, got %v", text, err)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input        string
		description  string
		deadlineText string
	}{
		{"Buy milk 09:07", "Buy milk", "09:07"},
		{"Ship release 9:30", "Ship release", "9:30"},
		{"Buy milk", "Buy milk", ""},
		{"Meeting at noon", "Meeting at noon", ""},
		{"  Water plants 18:00  ", "Water plants", "18:00"},
		// No space to split on: the whole input is the description.
		{"09:07", "09:07", ""},
		// Shape matches even when the values are out of range; Add rejects it.
		{"Pay rent 25:99", "Pay rent", "25:99"},
	}
	for _, tt := range tests {
		description, deadlineText := Split(tt.input)
		if description != tt.description || deadlineText != tt.deadlineText {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
				tt.input, description, deadlineText, tt.description, tt.deadlineText)
		}
	}
}
