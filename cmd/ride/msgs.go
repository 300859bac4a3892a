package ride

import (
	_ "embed"
	"strings"
)

const (
	MsgRootShort     = "Inspect and save test suites and resource files"
	MsgInfoShort     = "Show the suite tree and resolved resources"
	MsgKeywordsShort = "List every keyword available to the opened data"
	MsgDocShort      = "Show the documentation of a keyword"
	MsgSpecShort     = "Export keywords as keyword spec XML"
	MsgSaveShort     = "Save modified files"
	MsgVersionShort  = "Print version information"
	MsgManShort      = "Generate man pages"

	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `Generate a completion script for your shell, for example:

  source <(ride completion bash)
  ride completion fish | source`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput  = "Output format: auto, term, text or json"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/ride/config.toml)"
	MsgFlagLibrary = "Keyword spec XML file to include (repeatable)"
	MsgFlagSpecOut = "Write the spec to this file instead of stdout"
	MsgFlagName    = "Spec name (default: root suite or first resource name)"
	MsgFlagFormat  = "Format for suites without one (default: formats.default)"
	MsgFlagAll     = "Save every formatted file, modified or not"

	MsgVersionFormat = "ride version %s\n  commit: %s\n  built:  %s\n"
	MsgNothingOpened = "nothing to export"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/save-long.txt
	msgSaveLongRaw string
	MsgSaveLong    = strings.TrimSpace(msgSaveLongRaw)

	//go:embed msgs/usage.txt
	MsgUsageTemplate string

	//go:embed msgs/keywords-example.txt
	msgKeywordsExampleRaw string
	MsgKeywordsExample    = strings.TrimRight(msgKeywordsExampleRaw, "\n")
)
