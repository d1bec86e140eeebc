package output

import (
	"bytes"
	"strings"
	"testing"
)

// capture redirects output during f and returns what was written.
func capture(f func()) string {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	f()
	return buf.String()
}

func TestHelp(t *testing.T) {
	out := capture(func() {
		Help("Answer with y or n")
	})

	if !strings.Contains(out, "Answer with y or n") {
		t.Error("Help output should contain the message")
	}
}

func TestSuccess(t *testing.T) {
	out := capture(func() {
		Success("All questions answered")
	})

	if !strings.Contains(out, "✅") {
		t.Error("Success output should contain the check emoji")
	}
	if !strings.Contains(out, "All questions answered") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	out := capture(func() {
		Error("could not read input")
	})

	if !strings.Contains(out, "❌") {
		t.Error("Error output should contain the cross emoji")
	}
	if !strings.Contains(out, "could not read input") {
		t.Error("Error output should contain the message")
	}
}

func TestVerbose(t *testing.T) {
	SetVerbose(false)
	out := capture(func() {
		Verbose("hidden")
	})
	if out != "" {
		t.Error("Verbose should print nothing when disabled")
	}

	SetVerbose(true)
	defer SetVerbose(false)
	out = capture(func() {
		Verbose("shown")
	})
	if !strings.Contains(out, "shown") {
		t.Error("Verbose should print the message when enabled")
	}
}
