package envpath

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage PATH entries in shell startup files"
	MsgEnsureShort     = "Ensure a PATH snippet is present or absent"
	MsgAddShort        = "Add a directory to PATH"
	MsgAddLong         = "Add is ensure with --state present."
	MsgRemoveShort     = "Remove a directory from PATH"
	MsgRemoveLong      = "Remove is ensure with --state absent."
	MsgStatusShort     = "Show whether a PATH snippet is installed"
	MsgSnippetShort    = "Print the PATH snippet for a directory"
	MsgSnippetLong     = "Snippet prints the line envpath would write for DIR in the selected shell's syntax."
	MsgFilesShort      = "List the startup files envpath manages"
	MsgFilesLong       = "Files lists the startup files selected for the shell and target, whether or not they exist."
	MsgLatestShort     = "Print the latest release tag of a GitHub repository"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Man writes one man page per command into DIR (default: the current directory)."

	// Output
	MsgVersionFormat = "envpath version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Report what would change without writing any file"
	MsgFlagFormat        = "Output format (auto, text, json, yaml, xml)"
	MsgFlagConfig        = "Config file (default $XDG_CONFIG_HOME/envpath/config.toml)"
	MsgFlagState         = "Desired state of the snippet (present, absent)"
	MsgFlagTarget        = "Startup file category (profile, rc)"
	MsgFlagShell         = "Shell dialect (sh, bash, zsh, fish); detected when empty"
	MsgFlagHome          = "Home directory to operate on (default $HOME)"
	MsgFlagXDGConfigHome = "XDG config directory (default $XDG_CONFIG_HOME or HOME/.config)"
	MsgFlagZDotDir       = "zsh config directory (default $ZDOTDIR or HOME)"
	MsgFlagToken         = "GitHub token (default from the release.token_env variable)"
	MsgFlagDefaults      = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/ensure-long.txt
	msgEnsureLongRaw string
	MsgEnsureLong    = strings.TrimSpace(msgEnsureLongRaw)

	//go:embed msgs/ensure-example.txt
	msgEnsureExampleRaw string
	MsgEnsureExample    = strings.TrimRight(msgEnsureExampleRaw, "\n")

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/remove-example.txt
	msgRemoveExampleRaw string
	MsgRemoveExample    = strings.TrimRight(msgRemoveExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/latest-long.txt
	msgLatestLongRaw string
	MsgLatestLong    = strings.TrimSpace(msgLatestLongRaw)

	//go:embed msgs/latest-example.txt
	msgLatestExampleRaw string
	MsgLatestExample    = strings.TrimRight(msgLatestExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
