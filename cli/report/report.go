// Package report implements the non-interactive report modes: usage,
// verbose template listing, defaults file template and version info.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/templer/templer/cli/templates"
	"github.com/templer/templer/cli/version"
)

// helpWrapWidth is the column verbose help text is wrapped at.
const helpWrapWidth = 70

// Usage prints the usage message with a table of available templates.
func Usage(w io.Writer, texts Texts, provider templates.Provider) {
	fmt.Fprintf(w, "%s\n\n", texts.UsageHeader)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	for _, descriptor := range provider.All() {
		t.AppendRow(table.Row{descriptor.Name, descriptor.Summary})
	}
	t.Render()

	fmt.Fprintf(w, "\n%s\n", texts.UsageFooter)
}

// ListVerbose prints every available template with its full help text.
func ListVerbose(w io.Writer, provider templates.Provider) {
	for _, descriptor := range provider.All() {
		fmt.Fprintf(w, "\n%s: %s\n", descriptor.Name, descriptor.Summary)
		if descriptor.Help == "" {
			continue
		}
		wrapped := text.WrapSoft(descriptor.Help, helpWrapWidth)
		fmt.Fprintf(w, "\n%s\n", indent(wrapped, "   "))
	}
	fmt.Fprintln(w)
}

// indent prefixes every line of s with the given prefix.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// ConfigFileTemplate prints a starter defaults file listing every
// variable of every available template, commented out. Users redirect it
// into their dotfile and uncomment what they need. Nothing is written by
// this tool itself.
func ConfigFileTemplate(w io.Writer, texts Texts, provider templates.Provider) {
	fmt.Fprintln(w, texts.DotfileHeader)

	for _, descriptor := range provider.All() {
		fmt.Fprintf(w, "\n[%s]\n", descriptor.Name)
		for _, varInfo := range descriptor.Vars {
			if varInfo.Description != "" {
				fmt.Fprintf(w, "# %s\n", varInfo.Description)
			}
			fmt.Fprintf(w, "# %s = %s\n", varInfo.Name, varInfo.Default)
		}
	}
}

// VersionInfo prints a table of installed templer package versions.
func VersionInfo(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Package", "Version"})
	for _, component := range version.Components() {
		t.AppendRow(table.Row{component.Name, component.Version})
	}
	t.Render()
}
