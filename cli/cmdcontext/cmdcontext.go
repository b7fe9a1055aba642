package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains flags passed when starting Templer CLI and some other parameters.
type CmdCtx struct {
	// Cli - CLI context.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting
// Templer CLI and some other parameters.
type CliCtx struct {
	// Path to the defaults dotfile (or empty string to use the
	// dotfile from the user home directory).
	ConfigPath string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}

// SessionCtx contains information for one template session.
type SessionCtx struct {
	// Tokens are raw command line arguments, program name excluded.
	Tokens []string
	// ListVariables, if set, forwards the session to the generator
	// to report template variables; no output name is collected.
	ListVariables bool
	// ConfigPath is the resolved path of the defaults dotfile.
	ConfigPath string
}
