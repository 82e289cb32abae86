package alert

import (
	"bytes"
	"strings"
	"testing"
)

func TestRingWritesBell(t *testing.T) {
	var out bytes.Buffer
	r := &Ringer{Out: &out}
	if err := r.Ring(); err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	if !strings.Contains(out.String(), "\a") {
		t.Errorf("Expected terminal bell in output, got %q", out.String())
	}
}

func TestRingRunsCommand(t *testing.T) {
	var out bytes.Buffer
	r := &Ringer{Out: &out, Command: "true"}
	if err := r.Ring(); err != nil {
		t.Errorf("Ring with command failed: %v", err)
	}
}
