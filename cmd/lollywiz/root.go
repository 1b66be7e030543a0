package lollywiz

import (
	"fmt"

	"github.com/arthur-debert/lollywiz/internal/version"
	"github.com/arthur-debert/lollywiz/pkg/cobrax/topics"
	"github.com/arthur-debert/lollywiz/pkg/config"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds what the persistent flags resolve to. Subcommands read the
// configuration from it once PersistentPreRunE has run.
type app struct {
	verbosity   int
	configFile  string
	answersFile string
	cfg         *config.Config
}

// flagOverrides maps command flags to the configuration keys they override
var flagOverrides = map[string]string{
	"library-dir": "library.dir",
	"dry-run":     "instantiate.dry_run",
	"archive":     "instantiate.archive",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "lollywiz",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.answersFile, "answers", "", MsgFlagAnswers)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstantiateCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newPackCmd())
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	renderer := topics.NewGlamourRenderer()
	if !isTerminal() {
		renderer.Style = "notty"
	}
	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   renderer,
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// load reads the configuration for cmd and sets up logging from it
func (a *app) load(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("verbose") {
		overrides["log.verbosity"] = a.verbosity
	}
	for flag, key := range flagOverrides {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(config.Options{
		ConfigFile:  a.configFile,
		AnswersFile: a.answersFile,
		Overrides:   overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	logging.SetupLoggerWithOptions(cfg.Log.Verbosity, logging.Options{
		NoFile: !cfg.Log.File,
		Out:    cmd.ErrOrStderr(),
	})
	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}
