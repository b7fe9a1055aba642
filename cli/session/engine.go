package session

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// generatorEnvVar overrides the external generator program.
const generatorEnvVar = "TEMPLER_GENERATOR"

// defaultGenerator is the generator program used when none is configured.
const defaultGenerator = "paster"

// GenerateRequest is a single generator invocation.
type GenerateRequest struct {
	// Quiet suppresses generator chatter.
	Quiet bool
	// TemplateName selects the template to render.
	TemplateName string
	// Args are positional tokens: the output name first, if any,
	// then key=value variable definitions and pass-through flags.
	Args []string
}

// Engine renders a project skeleton from a template. The rendering
// itself is owned by an external generator, this front end only drives it.
type Engine interface {
	Generate(ctx context.Context, req GenerateRequest) error
}

// GenerationError is reported when the external generator fails.
type GenerationError struct {
	// Err is the generator failure.
	Err error
}

// Error returns error message.
func (e GenerationError) Error() string {
	return fmt.Sprintf("generator failed: %s", e.Err)
}

// Unwrap returns the underlying error.
func (e GenerationError) Unwrap() error {
	return e.Err
}

// ExecEngine invokes a generator program found on PATH.
type ExecEngine struct {
	// Command is the generator program name.
	Command string
}

// NewExecEngine creates an engine around the configured generator program.
func NewExecEngine() ExecEngine {
	command := os.Getenv(generatorEnvVar)
	if command == "" {
		command = defaultGenerator
	}
	return ExecEngine{Command: command}
}

// Generate runs the generator program. The process inherits the terminal,
// the generator owns the per-variable question/answer session.
func (engine ExecEngine) Generate(ctx context.Context, req GenerateRequest) error {
	generatorArgs := []string{"create"}
	if req.Quiet {
		generatorArgs = append(generatorArgs, "-q")
	}
	generatorArgs = append(generatorArgs, "-t", req.TemplateName)
	generatorArgs = append(generatorArgs, req.Args...)

	cmd := exec.CommandContext(ctx, engine.Command, generatorArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	return nil
}
