package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templer/templer/cli/cmdcontext"
	"github.com/templer/templer/cli/dotfile"
	"github.com/templer/templer/cli/name"
	"github.com/templer/templer/cli/report"
	"github.com/templer/templer/cli/templates"
	"github.com/templer/templer/cli/util"
)

// recordingEngine captures the generate request instead of rendering.
type recordingEngine struct {
	requests []GenerateRequest
	err      error
}

func (engine *recordingEngine) Generate(_ context.Context, req GenerateRequest) error {
	engine.requests = append(engine.requests, req)
	return engine.err
}

// scriptedPrompter replays canned answers.
type scriptedPrompter struct {
	answers []string
	asked   int
	err     error
}

func (prompter *scriptedPrompter) Ask(string) (string, error) {
	if prompter.err != nil {
		return "", prompter.err
	}
	answer := prompter.answers[prompter.asked]
	prompter.asked++
	return answer, nil
}

func emptyStore(t *testing.T) *dotfile.Store {
	t.Helper()
	store, err := dotfile.Load(filepath.Join(t.TempDir(), "no_dotfile"))
	require.NoError(t, err)
	return store
}

func storeFrom(t *testing.T, content string) *dotfile.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dotfile")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	store, err := dotfile.Load(path)
	require.NoError(t, err)
	return store
}

func newRunner(t *testing.T, engine Engine, prompter Prompter,
	store *dotfile.Store,
) *Runner {
	t.Helper()
	return &Runner{
		Provider: templates.NewRegistry(
			&templates.Descriptor{
				Name:    "skel",
				Summary: "a skeleton",
				NDots:   templates.Dots(1),
			},
			&templates.Descriptor{
				Name:    "free_form",
				Summary: "no naming constraints",
			},
		),
		Engine:   engine,
		Prompter: prompter,
		Store:    store,
		Out:      &bytes.Buffer{},
		Texts:    report.DefaultTexts(),
	}
}

func TestRunWithSuppliedName(t *testing.T) {
	engine := &recordingEngine{}
	runner := newRunner(t, engine, &scriptedPrompter{}, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"skel", "foo.bar", "author=me"},
	})
	require.NoError(t, err)

	require.Len(t, engine.requests, 1)
	req := engine.requests[0]
	assert.True(t, req.Quiet)
	assert.Equal(t, "skel", req.TemplateName)
	assert.Equal(t, []string{"foo.bar", "author=me"}, req.Args)
}

func TestRunRejectsInvalidSuppliedName(t *testing.T) {
	engine := &recordingEngine{}
	runner := newRunner(t, engine, &scriptedPrompter{}, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"skel", "foo..bar"},
	})
	var invalidErr name.InvalidNameError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Reason, "''")
	assert.Empty(t, engine.requests, "no generation on resolution failure")
}

func TestRunTemplateNotFound(t *testing.T) {
	engine := &recordingEngine{}
	runner := newRunner(t, engine, &scriptedPrompter{}, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"no_such_template"},
	})
	var notFoundErr TemplateNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "no_such_template", notFoundErr.Name)
	assert.Empty(t, engine.requests)
}

func TestRunPromptLoopRetriesUntilValid(t *testing.T) {
	engine := &recordingEngine{}
	prompter := &scriptedPrompter{answers: []string{"no_dots", "still bad!", "foo.bar"}}
	runner := newRunner(t, engine, prompter, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"skel"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, prompter.asked)

	require.Len(t, engine.requests, 1)
	assert.Equal(t, []string{"foo.bar"}, engine.requests[0].Args)
}

func TestRunPromptLoopQuitSentinel(t *testing.T) {
	engine := &recordingEngine{}
	prompter := &scriptedPrompter{answers: []string{"bad name", "q"}}
	runner := newRunner(t, engine, prompter, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"skel"},
	})
	assert.ErrorIs(t, err, util.ErrCancelled)
	assert.Empty(t, engine.requests, "no scaffold for a cancelled session")
}

func TestRunPromptInterrupt(t *testing.T) {
	engine := &recordingEngine{}
	prompter := &scriptedPrompter{err: util.ErrCancelled}
	runner := newRunner(t, engine, prompter, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"skel"},
	})
	assert.ErrorIs(t, err, util.ErrCancelled)
	assert.Empty(t, engine.requests)
}

func TestRunListVariablesBypassesNameResolution(t *testing.T) {
	engine := &recordingEngine{}
	prompter := &scriptedPrompter{}
	runner := newRunner(t, engine, prompter, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens:        []string{"skel"},
		ListVariables: true,
	})
	require.NoError(t, err)
	assert.Zero(t, prompter.asked)

	require.Len(t, engine.requests, 1)
	assert.Equal(t, []string{"--list-variables"}, engine.requests[0].Args)
}

func TestRunMergesDefaultsWithOverrides(t *testing.T) {
	store := storeFrom(t, `[DEFAULT]
license_name = GPL
keywords = base

[skel]
license_name = BSD
keywords = %(keywords)s extra
`)
	engine := &recordingEngine{}
	runner := newRunner(t, engine, &scriptedPrompter{}, store)

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"skel", "foo.bar", "license_name=MIT"},
	})
	require.NoError(t, err)

	require.Len(t, engine.requests, 1)
	assert.Equal(t, []string{
		"foo.bar",
		"keywords=base extra",
		"license_name=MIT",
	}, engine.requests[0].Args)
}

func TestRunGeneratorFailure(t *testing.T) {
	engine := &recordingEngine{err: errors.New("disk full")}
	runner := newRunner(t, engine, &scriptedPrompter{}, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"free_form", "anything"},
	})
	var generationErr GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Contains(t, generationErr.Error(), "disk full")
}

func TestRunGeneratorInterrupt(t *testing.T) {
	engine := &recordingEngine{err: context.Canceled}
	runner := newRunner(t, engine, &scriptedPrompter{}, emptyStore(t))

	err := runner.Run(context.Background(), &cmdcontext.SessionCtx{
		Tokens: []string{"free_form", "anything"},
	})
	assert.ErrorIs(t, err, util.ErrCancelled)
}
