package pkginit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Scaffold new Swift packages"
	MsgInitShort       = "Create a new Swift package"
	MsgKindsShort      = "List package types and the files each one creates"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrNoName       = "cannot derive a package name from %s; pass --name"
	MsgErrWorkingDir   = "failed to determine the working directory"
	MsgErrNoCommand    = "no command specified"
	MsgErrConfigRender = "failed to render configuration"

	// Version output
	MsgVersionFormat = "pkginit version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml (default from config)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagType    = "Package type: empty, library, executable or system-module (default from config)"
	MsgFlagName    = "Package name to use instead of the directory name"
	MsgFlagDryRun  = "Show what would be created without writing anything"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
