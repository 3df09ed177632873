package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput    = "output"
	FlagConfig    = "config"
	FlagDirectory = "directory"
	FlagForce     = "force"
	FlagVerbose   = "verbose"
	FlagNoColor   = "no-color"
	FlagQuiet     = "quiet"
	FlagDebug     = "debug"
	FlagLogFormat = "log-format"
	FlagJSON      = "json"
	FlagYes       = "yes"

	// Flag descriptions
	DescOutput    = "Output directory"
	DescConfig    = "Path to config file"
	DescDirectory = "Directory to start the manifest search from (default: working directory)"
	DescForce     = "Convert even if directives appear after code"
	DescVerbose   = "Verbose output"
	DescNoColor   = "Disable colored output"
	DescQuiet     = "Suppress output"
	DescDebug     = "Enable debug logging"
	DescLogFormat = "Debug log format: text, json or logfmt"
	DescJSON      = "Output as JSON"
	DescYes       = "Do not ask for confirmation"
)
