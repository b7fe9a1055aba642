package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/templer/templer/cli/args"
	"github.com/templer/templer/cli/cmdcontext"
	"github.com/templer/templer/cli/dotfile"
	"github.com/templer/templer/cli/report"
	"github.com/templer/templer/cli/session"
	"github.com/templer/templer/cli/templates"
	"github.com/templer/templer/cli/util"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	rootCmd *cobra.Command

	listTemplates  bool
	makeConfigFile bool
	showVersion    bool
	listVariables  bool
)

const description = `Create basic project skeletons based on best-practice templates.

This tool is a front end around an external generator, providing an
easier syntax for invoking it and better help.

Basic usage:

    templer <template>

To get a list of the templates, run the tool without any arguments; for
a verbose list with full descriptions, run "templer --list".

If you want to specify your output name (resulting project, depending
on the template being used), you can also do so:

    templer <template> <output-name>

In addition, you can pass variables that would be requested by that
template, and these will then be used. This is an advanced feature
mostly useful for scripted use:

    templer basic_namespace foo.bar author_email=joe@example.com

To get the list of variables that a template expects, ask for it with
"templer <template> --list-variables".

It is also possible to set up default values for any template by
creating a file called ".templer" in your home directory, in INI
format. Generate a starter file with "templer --make-config-file".`

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "templer <TEMPLATE_NAME> [OUTPUT_NAME] [VAR=VALUE ...]",
		Short: "Create project skeletons from templates",
		Long:  description,
		Example: `$ templer basic_namespace foo.bar
  $ templer plone3_theme --list-variables
  $ templer --make-config-file > ~/` + dotfile.Name,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, tokens []string) {
			cmdCtx.CommandName = cmd.Name()
			err := runRoot(tokens)
			util.HandleCmdErr(cmd, err)
		},
	}

	rootCmd.Flags().BoolVar(&listTemplates, "list", false,
		"List templates verbosely, with details")
	rootCmd.Flags().BoolVar(&makeConfigFile, "make-config-file", false,
		"Output a starter "+dotfile.Name+" prefs file")
	rootCmd.Flags().BoolVar(&showVersion, "version", false,
		"Print versions of installed templer packages")
	rootCmd.Flags().BoolVar(&listVariables, "list-variables", false,
		"Ask the generator to report template variables and exit")
	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		"", "Path to defaults file")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	rootCmd = NewCmdRoot()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// newProvider assembles the template registry: manifests found in the
// search paths shadow the built-in templates.
func newProvider(searchPaths []string) templates.Provider {
	return templates.Multi{
		templates.NewDirProvider(searchPaths),
		templates.Builtin(),
	}
}

// runRoot dispatches between report modes and the template session.
func runRoot(tokens []string) error {
	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	searchPaths := templates.SearchPathsFromEnv()
	provider := newProvider(searchPaths)
	texts := report.DefaultTexts()

	switch {
	case showVersion:
		report.VersionInfo(os.Stdout)
		return nil
	case listTemplates:
		report.ListVerbose(os.Stdout, provider)
		return nil
	case makeConfigFile:
		report.ConfigFileTemplate(os.Stdout, texts, provider)
		return nil
	}

	if len(tokens) == 0 {
		report.Usage(os.Stdout, texts, provider)
		return nil
	}

	configPath := cmdCtx.Cli.ConfigPath
	if configPath == "" {
		var err error
		if configPath, err = dotfile.DefaultPath(); err != nil {
			return err
		}
	}
	store, err := dotfile.Load(configPath)
	if err != nil {
		return err
	}

	sessionCtx := &cmdcontext.SessionCtx{
		Tokens:        tokens,
		ListVariables: listVariables,
		ConfigPath:    configPath,
	}
	runner := &session.Runner{
		Provider: provider,
		Engine:   session.NewExecEngine(),
		Prompter: session.NewConsolePrompter(),
		Store:    store,
		Out:      os.Stdout,
		Texts:    texts,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return usageErr(runner.Run(ctx, sessionCtx))
}

// usageErr converts resolution errors that should print usage help into
// argument errors.
func usageErr(err error) error {
	var malformed args.MalformedArgumentError
	var unsupported args.UnsupportedArgumentError
	var notFound session.TemplateNotFoundError
	if errors.Is(err, args.ErrMissingTemplate) ||
		errors.As(err, &malformed) ||
		errors.As(err, &unsupported) ||
		errors.As(err, &notFound) {
		return util.NewArgError(err.Error())
	}
	return err
}
