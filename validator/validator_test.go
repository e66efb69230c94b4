package validator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRunPassed(t *testing.T) {
	v := New(zerolog.Nop())
	res, err := v.run(context.Background(), t.TempDir(), time.Now(), "true")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Status != StatusPassed {
		t.Errorf("status = %s, want %s", res.Status, StatusPassed)
	}
	if res.Duration <= 0 {
		t.Error("duration should be measured")
	}
}

func TestRunFailedCapturesOutput(t *testing.T) {
	v := New(zerolog.Nop())
	res, err := v.run(context.Background(), t.TempDir(), time.Now(), "sh", "-c", "echo broken >&2; exit 1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Status != StatusFailed {
		t.Errorf("status = %s, want %s", res.Status, StatusFailed)
	}
	if !strings.Contains(res.Output, "broken") {
		t.Errorf("output = %q, want the command's stderr", res.Output)
	}
}

func TestRunMissingBinary(t *testing.T) {
	v := New(zerolog.Nop())
	res, err := v.run(context.Background(), t.TempDir(), time.Now(), "no-such-binary-xyz")
	if err == nil {
		t.Fatal("missing binary should be an error, not a verdict")
	}
	if res.Status != StatusNotRun {
		t.Errorf("status = %s, want %s", res.Status, StatusNotRun)
	}
}

func TestRunTimeout(t *testing.T) {
	v := New(zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := v.run(ctx, t.TempDir(), time.Now(), "sleep", "5")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Status != StatusTimedOut {
		t.Errorf("status = %s, want %s", res.Status, StatusTimedOut)
	}
}
