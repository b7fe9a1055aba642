package session

import (
	"errors"

	"github.com/manifoldco/promptui"

	"github.com/templer/templer/cli/util"
)

// Prompter asks the operator a single line question.
type Prompter interface {
	// Ask shows label and returns the entered line.
	Ask(label string) (string, error)
}

// consolePrompter implements Prompter on the terminal.
type consolePrompter struct{}

// NewConsolePrompter creates a prompter reading from the terminal.
func NewConsolePrompter() Prompter {
	return consolePrompter{}
}

// Ask shows label and returns the entered line. An interrupt or a closed
// input stream is reported as voluntary cancellation.
func (consolePrompter) Ask(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}

	input, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", util.ErrCancelled
		}
		return "", err
	}

	return input, nil
}
