// Package alert raises the audible side effect for a newly-due batch.
package alert

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Ringer sounds the alarm once per call: a terminal bell on Out, plus an
// optional external player command (e.g. "paplay ~/alarm.mp3"). Stopping a
// long-running player is up to the user; the ringer holds no state.
type Ringer struct {
	Out     io.Writer // defaults to os.Stdout
	Command string    // run through the shell; empty means bell only
}

func (r *Ringer) Ring() error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprint(out, "\a")

	if r.Command == "" {
		return nil
	}
	cmd := exec.Command("sh", "-c", r.Command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("alarm command failed: %w", err)
	}
	go cmd.Wait()
	return nil
}
