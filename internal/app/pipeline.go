// Where: internal/app/pipeline.go
// What: The sequential step executor.
// Why: One place owns announce/skip/execute and the fail-fast policy.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hawkeyetwolf/ddev-refresh/internal/runner"
	"github.com/hawkeyetwolf/ddev-refresh/internal/ui"
)

// Policy decides what a non-zero step status does to the rest of the run.
type Policy int

const (
	// FailFast terminates the whole run with the step's status.
	FailFast Policy = iota
	// BestEffort tolerates the failure; it is logged only when verbose.
	BestEffort
)

// Step is a named unit of work in the fixed sequence. Exactly one of
// Argv or Run is set. A nil Gate always admits the step.
type Step struct {
	Name   string
	Gate   func(ctx context.Context) bool
	Argv   []string
	Run    func(ctx context.Context) error
	Policy Policy
}

// Pipeline executes steps strictly in order, synchronously.
type Pipeline struct {
	Runner    runner.CommandRunner
	Console   *ui.Console
	Dir       string
	Verbosity int
}

// Execute walks the step list. Gated-off steps are skipped (announced
// only when verbose). The first fail-fast failure stops the walk and is
// returned as a *StepError carrying the child's exit status.
func (p *Pipeline) Execute(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if step.Gate != nil && !step.Gate(ctx) {
			if p.Verbosity > 0 {
				p.Console.Skip(step.Name)
			}
			continue
		}

		if len(step.Argv) > 0 {
			p.Console.Command(step.Argv)
		} else {
			p.Console.Info(step.Name)
		}

		var err error
		if step.Run != nil {
			err = step.Run(ctx)
		} else {
			err = p.Runner.Run(ctx, p.Dir, step.Argv[0], step.Argv[1:]...)
		}
		p.Console.Separator()

		if err == nil {
			continue
		}
		if step.Policy == BestEffort {
			if p.Verbosity > 0 {
				p.Console.Warn(fmt.Sprintf("%s failed, continuing: %v", step.Name, err))
			}
			continue
		}
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			return stepErr
		}
		return &StepError{Step: step.Name, Status: runner.ExitStatus(err)}
	}
	return nil
}
