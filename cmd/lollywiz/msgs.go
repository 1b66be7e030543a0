package lollywiz

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Instantiate project templates"
	MsgInstantiateShort = "Instantiate a template into a directory"
	MsgCheckShort       = "Parse a template and list its instructions"
	MsgPackShort        = "Pack a directory into an archive"
	MsgConfigShort      = "Inspect and create the configuration"
	MsgConfigShowShort  = "Print the effective configuration"
	MsgConfigInitShort  = "Write a commented configuration file"
	MsgTopicsShort      = "Display available documentation topics"
	MsgTopicsLong       = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man pages"

	// Status messages
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgArchiveWritten   = "Archive written to %s\n"
	MsgConfigWritten    = "Configuration written to %s\n"
	MsgManPagesWritten  = "Man pages written to %s\n"
	MsgVersionFormat    = "lollywiz version %s\n  commit: %s\n  built:  %s\n  engine: %s\n"
	MsgUsingLibraryFrom = "Using template '%s' from %s"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrConfigExists  = "'%s' already exists, use --force to overwrite it"
	MsgErrSourceMissing = "a template source is required"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/lollywiz/config.toml)"
	MsgFlagAnswers     = "Answers file with defines and replacements (.toml, .yaml, .yml)"
	MsgFlagDefine      = "Define a condition name (repeatable)"
	MsgFlagSet         = "Set a replacement as name=value (repeatable)"
	MsgFlagLibrary     = "Treat SRC as the name of a template in the library"
	MsgFlagLibraryDir  = "Template library directory"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagArchive     = "Pack the destination into this archive afterwards (.tar.gz, .tar.zst)"
	MsgFlagFromArchive = "Treat SRC as a packed template (.tar.gz, .tar.zst)"
	MsgFlagFormat      = "Output format (yaml, toml)"
	MsgFlagForce       = "Overwrite an existing file"
	MsgFlagManDir      = "Directory the man pages are written to"
	MsgFlagPlain       = "Print one numbered instruction per line without styling"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/instantiate-long.txt
	msgInstantiateLongRaw string
	MsgInstantiateLong    = strings.TrimSpace(msgInstantiateLongRaw)

	//go:embed msgs/instantiate-example.txt
	msgInstantiateExampleRaw string
	MsgInstantiateExample    = strings.TrimRight(msgInstantiateExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/pack-long.txt
	msgPackLongRaw string
	MsgPackLong    = strings.TrimSpace(msgPackLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
