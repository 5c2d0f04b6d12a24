package extractors

import (
	"context"
	"os/exec"

	"github.com/campushq/resourcehub/internal/core/ports/driven"
)

// Ensure ExecRunner implements the interface.
var _ driven.CommandRunner = (*ExecRunner)(nil)

// ExecRunner runs external conversion tools via os/exec.
type ExecRunner struct{}

// NewExecRunner creates a CommandRunner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and returns its standard output.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
