package report

// Texts is the table of user visible text blocks. It is presentation
// data, injected so that behavior never depends on exact wording.
type Texts struct {
	// UsageHeader opens the usage message, before the template table.
	UsageHeader string
	// UsageFooter closes the usage message.
	UsageFooter string
	// DotfileHeader opens the generated defaults file template.
	DotfileHeader string
	// HelpPrompt is shown once before handing off to the generator.
	HelpPrompt string
	// NamePrompt is the label of the project name question.
	NamePrompt string
	// DotHelp explains the expected project name form per namespace depth.
	DotHelp map[int]string
}

// DefaultTexts returns the stock text table.
func DefaultTexts() Texts {
	return Texts{
		UsageHeader: `Usage:

    templer <template> <output-name> [var1=value] ... [varN=value]

    templer --help                Full help
    templer --list                List templates verbosely, with details
    templer --make-config-file    Output .templer prefs file
    templer --version             Print versions of installed templer packages

Available templates:`,
		UsageFooter: `Warning: use of the --svn-repository argument is not allowed with this script

For further help information, please invoke this script with the
option "--help".`,
		DotfileHeader: `# This file allows you to set default values for templer.
# To set a global default, uncomment any line that looks like:
#    variable_name = Default Value

[DEFAULT]`,
		HelpPrompt: `
If at any point, you need additional help for a question, you can enter
'?' and press RETURN.`,
		NamePrompt: "Enter project name (or q to quit)",
		DotHelp: map[int]string{
			0: `This template expects a project name with no dots in it (a simple
name, like 'foo').`,
			1: `This template expects a project name with 1 dot in it (a 'basic
namespace', like 'foo.bar').`,
			2: `This template expects a project name with 2 dots in it (a 'nested
namespace', like 'foo.bar.baz').`,
		},
	}
}
