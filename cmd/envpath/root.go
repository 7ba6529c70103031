package envpath

import (
	"embed"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/envpath/internal/version"
	"github.com/arthur-debert/envpath/pkg/cobrax/topics"
	"github.com/arthur-debert/envpath/pkg/config"
	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/logging"
)

//go:embed topics
var helpTopics embed.FS

// Command group IDs
const (
	groupCore    = "core"
	groupInspect = "inspect"
	groupMisc    = "misc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		format     string
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "envpath",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			logger := logging.WithFields(map[string]interface{}{
				"command": cmd.Name(),
				"version": version.Version,
			})
			logger.Debug().Strs("args", args).Msg("Command started")

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}

			cfg, err := config.Load(config.LoadOptions{
				File:      configFile,
				Overrides: overrides,
			})
			if err != nil {
				return err
			}
			config.Initialize(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().Bool("dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&format, "format", config.FormatAuto, MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{ID: groupCore, Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupInspect, Title: "INSPECT:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupMisc, Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newEnsureCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newFilesCmd())
	rootCmd.AddCommand(newLatestCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help replaces cobra's help command
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(stdoutIsTerminal()),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID(groupMisc)

	return rootCmd
}
