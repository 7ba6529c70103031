package envpath

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/envpath/internal/version"
	"github.com/arthur-debert/envpath/pkg/config"
	"github.com/arthur-debert/envpath/pkg/core"
	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/filesystem"
	"github.com/arthur-debert/envpath/pkg/logging"
	"github.com/arthur-debert/envpath/pkg/output"
	"github.com/arthur-debert/envpath/pkg/paths"
	"github.com/arthur-debert/envpath/pkg/release"
	"github.com/arthur-debert/envpath/pkg/shell"
	"github.com/arthur-debert/envpath/pkg/types"
)

// pathFlags are the flags of every command that resolves startup files
type pathFlags struct {
	shell         string
	target        string
	home          string
	xdgConfigHome string
	zdotdir       string
}

func (f *pathFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.shell, "shell", "s", "", MsgFlagShell)
	flags.StringVarP(&f.target, "target", "t", "", MsgFlagTarget)
	flags.StringVar(&f.home, "home", "", MsgFlagHome)
	flags.StringVar(&f.xdgConfigHome, "xdg-config-home", "", MsgFlagXDGConfigHome)
	flags.StringVar(&f.zdotdir, "zdotdir", "", MsgFlagZDotDir)

	_ = cmd.RegisterFlagCompletionFunc("shell", fixedCompletion(shell.Names()...))
	_ = cmd.RegisterFlagCompletionFunc("target", fixedCompletion(types.TargetProfile.String(), types.TargetRC.String()))
}

// options builds core options for path. Unset flags fall back to the
// configured defaults and a leading ~ in path is expanded against the
// effective home.
func (f *pathFlags) options(env types.Env, path, state string) (core.Options, error) {
	cfg := config.Get()

	shellName := firstSet(f.shell, cfg.Defaults.Shell)
	if shellName != "" {
		if _, err := shell.Parse(shellName); err != nil {
			return core.Options{}, err
		}
	}

	opts := core.Options{
		Shell:         shellName,
		Target:        firstSet(f.target, cfg.Defaults.Target),
		State:         firstSet(state, cfg.Defaults.State),
		Home:          f.home,
		XDGConfigHome: f.xdgConfigHome,
		ZDotDir:       f.zdotdir,
	}
	if path != "" {
		opts.Path = paths.ExpandHome(path, firstSet(f.home, env.Home))
	}
	return opts, nil
}

// invocation gathers what every file command needs from the process
type invocation struct {
	env      types.Env
	fs       types.FS
	dryRun   bool
	renderer *output.Renderer
}

func newInvocation(cmd *cobra.Command) (*invocation, error) {
	cfg := config.Get()

	env := types.EnvFromOS()
	if cfg.System.PasswdFile != "" {
		env.PasswdFile = cfg.System.PasswdFile
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return nil, err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return &invocation{
		env:      env,
		fs:       filesystem.NewOS(),
		dryRun:   dryRun,
		renderer: renderer,
	}, nil
}

// newRenderer creates a renderer on the command's stdout in the configured
// format
func newRenderer(cmd *cobra.Command) (*output.Renderer, error) {
	format, err := output.ParseFormat(config.Get().Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	return output.NewRenderer(cmd.OutOrStdout(), format), nil
}

func newEnsureCmd() *cobra.Command {
	var (
		flags pathFlags
		state string
	)

	cmd := &cobra.Command{
		Use:     "ensure DIR",
		Short:   MsgEnsureShort,
		Long:    MsgEnsureLong,
		Example: MsgEnsureExample,
		Args:    cobra.ExactArgs(1),
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnsure(cmd, &flags, args[0], state)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&state, "state", "", MsgFlagState)
	_ = cmd.RegisterFlagCompletionFunc("state", fixedCompletion(types.StatePresent.String(), types.StateAbsent.String()))

	return cmd
}

func newAddCmd() *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:     "add DIR",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.ExactArgs(1),
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnsure(cmd, &flags, args[0], types.StatePresent.String())
		},
	}
	flags.register(cmd)
	return cmd
}

func newRemoveCmd() *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:     "remove DIR",
		Aliases: []string{"rm"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		Example: MsgRemoveExample,
		Args:    cobra.ExactArgs(1),
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnsure(cmd, &flags, args[0], types.StateAbsent.String())
		},
	}
	flags.register(cmd)
	return cmd
}

func runEnsure(cmd *cobra.Command, flags *pathFlags, path, state string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	opts, err := flags.options(inv.env, path, state)
	if err != nil {
		return err
	}
	opts.DryRun = inv.dryRun

	log.Info().
		Str("path", opts.Path).
		Str("state", opts.State).
		Bool("dryRun", opts.DryRun).
		Msg("Ensuring PATH snippet")

	result, err := core.EnsurePath(opts, inv.env, inv.fs)
	if err != nil {
		return err
	}
	return inv.renderer.Result(result)
}

func newStatusCmd() *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:     "status DIR",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Args:    cobra.ExactArgs(1),
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := newInvocation(cmd)
			if err != nil {
				return err
			}
			opts, err := flags.options(inv.env, args[0], "")
			if err != nil {
				return err
			}

			report, err := core.Status(opts, inv.env, inv.fs)
			if err != nil {
				return err
			}
			return inv.renderer.Status(report)
		},
	}
	flags.register(cmd)
	return cmd
}

func newSnippetCmd() *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:     "snippet DIR",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		Args:    cobra.ExactArgs(1),
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := newInvocation(cmd)
			if err != nil {
				return err
			}
			opts, err := flags.options(inv.env, args[0], "")
			if err != nil {
				return err
			}

			res, err := core.Snippet(opts, inv.env, inv.fs)
			if err != nil {
				return err
			}
			return inv.renderer.Snippet(res)
		},
	}
	flags.register(cmd)
	return cmd
}

func newFilesCmd() *cobra.Command {
	var flags pathFlags

	cmd := &cobra.Command{
		Use:     "files",
		Short:   MsgFilesShort,
		Long:    MsgFilesLong,
		Args:    cobra.NoArgs,
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := newInvocation(cmd)
			if err != nil {
				return err
			}
			opts, err := flags.options(inv.env, "", "")
			if err != nil {
				return err
			}

			res, err := core.Files(opts, inv.env, inv.fs)
			if err != nil {
				return err
			}
			return inv.renderer.Files(res)
		},
	}
	flags.register(cmd)
	return cmd
}

func newLatestCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:     "latest OWNER/REPO",
		Short:   MsgLatestShort,
		Long:    MsgLatestLong,
		Example: MsgLatestExample,
		Args:    cobra.ExactArgs(1),
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.latest")
			cfg := config.Get()

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			client, err := release.New(release.Options{
				APIURL:  cfg.Release.APIURL,
				Timeout: cfg.Release.Timeout,
			})
			if err != nil {
				return err
			}

			repo := strings.TrimSpace(args[0])
			tag, err := client.Latest(cmd.Context(), repo, release.ResolveToken(token, cfg.Release.TokenEnv))
			if err != nil {
				return err
			}
			logger.Info().Str("repo", repo).Str("tag", tag).Msg("Found latest release")

			return renderer.Latest(&release.Latest{Repo: repo, LatestVersion: tag})
		},
	}
	cmd.Flags().StringVar(&token, "token", "", MsgFlagToken)
	return cmd
}

func newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			data, err := config.Get().TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               groupMisc,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [DIR]",
		Short:   MsgManShort,
		Long:    MsgManLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: groupMisc,
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write man pages to %s", dir).
					WithDetail("path", dir)
			}
			abs, _ := filepath.Abs(dir)
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, abs)
			return nil
		},
	}
}

// ManHeader is the header shared by generated man pages
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "ENVPATH",
		Section: "1",
		Source:  "envpath " + version.Version,
		Manual:  "envpath manual",
	}
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
