// Package validator checks generated projects by compiling them with the Go
// toolchain in a scratch directory. The check runs out of process so a broken
// generated program can never take the designer down with it.
package validator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/codegen/fyne"
)

// Status reports the outcome of a compile check.
type Status string

const (
	StatusNotRun   Status = "not_run"
	StatusChecking Status = "checking"
	StatusPassed   Status = "passed"
	StatusFailed   Status = "failed"
	StatusTimedOut Status = "timed_out"
)

// DefaultTimeout bounds a single compile check.
const DefaultTimeout = 2 * time.Minute

// Result carries the status and, on failure, the compiler output.
type Result struct {
	Status   Status        `json:"status"`
	Output   string        `json:"output,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Validator runs compile checks on generated projects.
type Validator struct {
	Timeout time.Duration
	log     zerolog.Logger
}

// New returns a validator with the default timeout.
func New(log zerolog.Logger) *Validator {
	return &Validator{Timeout: DefaultTimeout, log: log}
}

// Check writes the project to a temp directory and runs `go build` on it.
func (v *Validator) Check(ctx context.Context, project *fyne.Project) (Result, error) {
	start := time.Now()

	dir, err := os.MkdirTemp("", "aether-check-*")
	if err != nil {
		return Result{Status: StatusNotRun}, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	for _, f := range project.Files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), []byte(f.Content), 0o644); err != nil {
			return Result{Status: StatusNotRun}, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	v.log.Debug().Str("dir", dir).Msg("compile check started")

	// go mod tidy resolves the generated manifest's requirements before the
	// build. Both steps share the deadline.
	if res, err := v.run(ctx, dir, start, "go", "mod", "tidy"); err != nil || res.Status != StatusPassed {
		return res, err
	}
	res, err := v.run(ctx, dir, start, "go", "build", "./...")
	if err == nil {
		v.log.Debug().
			Str("status", string(res.Status)).
			Dur("duration", res.Duration).
			Msg("compile check finished")
	}
	return res, err
}

func (v *Validator) run(ctx context.Context, dir string, start time.Time, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	elapsed := time.Since(start)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{Status: StatusTimedOut, Output: out.String(), Duration: elapsed}, nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Status: StatusFailed, Output: out.String(), Duration: elapsed}, nil
		}
		return Result{Status: StatusNotRun}, fmt.Errorf("run %s: %w", name, err)
	}
	return Result{Status: StatusPassed, Output: out.String(), Duration: elapsed}, nil
}

// CheckAsync launches Check in a goroutine and delivers the result on the
// returned channel. The channel is buffered so the worker never blocks.
func (v *Validator) CheckAsync(ctx context.Context, project *fyne.Project) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		res, err := v.Check(ctx, project)
		if err != nil {
			v.log.Error().Err(err).Msg("compile check could not run")
			res = Result{Status: StatusNotRun, Output: err.Error()}
		}
		ch <- res
	}()
	return ch
}
