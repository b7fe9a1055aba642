// Package session drives one template invocation end to end: argument
// resolution, template lookup, output name collection, defaults merging
// and the hand-off to the external generator.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/apex/log"
	"github.com/fatih/color"

	"github.com/templer/templer/cli/args"
	"github.com/templer/templer/cli/cmdcontext"
	"github.com/templer/templer/cli/dotfile"
	"github.com/templer/templer/cli/name"
	"github.com/templer/templer/cli/report"
	"github.com/templer/templer/cli/templates"
	"github.com/templer/templer/cli/util"
)

// listVariablesFlag is forwarded to the generator as-is.
const listVariablesFlag = "--list-variables"

// TemplateNotFoundError is returned when no registered template matches
// the requested name.
type TemplateNotFoundError struct {
	// Name is the requested template name.
	Name string
}

// Error returns error message.
func (e TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no such template: %s", e.Name)
}

// Runner resolves one invocation and drives the generator.
type Runner struct {
	// Provider resolves template names.
	Provider templates.Provider
	// Engine renders the project skeleton.
	Engine Engine
	// Prompter asks the operator for a project name when none was given.
	Prompter Prompter
	// Store holds persisted per-user defaults.
	Store *dotfile.Store
	// Out is the channel for informational output.
	Out io.Writer
	// Texts is the user visible text table.
	Texts report.Texts
}

// outcome of a single prompt round.
type promptOutcome int

const (
	// promptAccepted: a valid name was entered.
	promptAccepted promptOutcome = iota
	// promptQuit: the operator entered the quit sentinel.
	promptQuit
	// promptRetry: the entered name failed validation, ask again.
	promptRetry
)

// Run processes one parsed invocation. It returns util.ErrCancelled for a
// voluntary exit and a resolution or generation error otherwise. No
// generation side effect happens before every resolution step succeeded.
func (r *Runner) Run(ctx context.Context, sessionCtx *cmdcontext.SessionCtx) error {
	log.Debugf("Using defaults from %s", sessionCtx.ConfigPath)
	parsed, err := args.Resolve(sessionCtx.Tokens)
	if err != nil {
		return err
	}

	descriptor, found := r.Provider.Lookup(parsed.TemplateName)
	if !found {
		return TemplateNotFoundError{Name: parsed.TemplateName}
	}

	fmt.Fprintf(r.Out, "\n%s: %s\n", descriptor.Name, descriptor.Summary)
	if descriptor.Help != "" {
		fmt.Fprintln(r.Out, descriptor.Help)
	}

	outputName := parsed.OutputName
	if sessionCtx.ListVariables {
		// The generator reports template variables itself, no
		// output name is needed.
		outputName = ""
	} else {
		if outputName, err = r.resolveOutputName(descriptor, outputName); err != nil {
			return err
		}
		fmt.Fprintln(r.Out, r.Texts.HelpPrompt)
	}

	resolved, err := r.Store.ResolveFor(parsed.TemplateName, parsed.Overrides)
	if err != nil {
		return err
	}

	return r.invoke(ctx, sessionCtx, descriptor.Name, outputName, resolved)
}

// resolveOutputName validates a supplied output name, or runs the prompt
// loop until a valid name is entered or the operator quits.
func (r *Runner) resolveOutputName(descriptor *templates.Descriptor,
	supplied string,
) (string, error) {
	if supplied != "" {
		return supplied, name.Check(descriptor.NDots, supplied)
	}

	for {
		outcome, entered, err := r.promptRound(descriptor)
		if err != nil {
			return "", err
		}
		switch outcome {
		case promptAccepted:
			return entered, nil
		case promptQuit:
			return "", util.ErrCancelled
		case promptRetry:
			// Ask again.
		}
	}
}

// promptRound runs a single round of the project name question.
func (r *Runner) promptRound(descriptor *templates.Descriptor) (
	promptOutcome, string, error,
) {
	if descriptor.NDots != nil {
		if hint, found := r.Texts.DotHelp[*descriptor.NDots]; found {
			fmt.Fprintf(r.Out, "\n%s\n", hint)
		}
	}

	entered, err := r.Prompter.Ask(r.Texts.NamePrompt)
	if err != nil {
		return promptRetry, "", err
	}
	if entered == "q" {
		return promptQuit, "", nil
	}

	if err := name.Check(descriptor.NDots, entered); err != nil {
		fmt.Fprintf(r.Out, "\n%s\n", color.RedString("ERROR: %s", err))
		return promptRetry, "", nil
	}

	return promptAccepted, entered, nil
}

// invoke hands the final variable set to the generator. The output name,
// if present, is always the first positional token.
func (r *Runner) invoke(ctx context.Context, sessionCtx *cmdcontext.SessionCtx,
	templateName, outputName string, resolved map[string]string,
) error {
	var tokens []string
	if outputName != "" {
		tokens = append(tokens, outputName)
	}

	keys := make([]string, 0, len(resolved))
	for key := range resolved {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		tokens = append(tokens, fmt.Sprintf("%s=%s", key, resolved[key]))
	}

	if sessionCtx.ListVariables {
		tokens = append(tokens, listVariablesFlag)
	}

	log.Debugf("Invoking generator: template %s, %d tokens", templateName, len(tokens))
	err := r.Engine.Generate(ctx, GenerateRequest{
		Quiet:        true,
		TemplateName: templateName,
		Args:         tokens,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, util.ErrCancelled) {
			return util.ErrCancelled
		}
		return GenerationError{Err: err}
	}

	return nil
}
