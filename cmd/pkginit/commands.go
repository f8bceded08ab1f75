package pkginit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/pkginit/internal/version"
	"github.com/arthur-debert/pkginit/pkg/config"
	"github.com/arthur-debert/pkginit/pkg/errors"
	"github.com/arthur-debert/pkginit/pkg/filesystem"
	"github.com/arthur-debert/pkginit/pkg/logging"
	"github.com/arthur-debert/pkginit/pkg/paths"
	"github.com/arthur-debert/pkginit/pkg/scaffold"
	"github.com/arthur-debert/pkginit/pkg/types"
	"github.com/arthur-debert/pkginit/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	format    string
	noColor   bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "pkginit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			if opts.noColor {
				ui.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newKindsCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs rootCmd and reports a failure in the selected output format:
// JSON and YAML get the structured error on stdout, everything else a line on
// stderr. It returns the process exit code.
func Execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	reportError(rootCmd, err)
	return 1
}

func reportError(rootCmd *cobra.Command, err error) {
	name, _ := rootCmd.PersistentFlags().GetString("format")
	if name == "" {
		if cfg, cfgErr := config.Load(); cfgErr == nil {
			name = cfg.Output.Format
		}
	}
	format, parseErr := ui.ParseFormat(name)
	if parseErr != nil {
		format = ui.FormatAuto
	}

	out := rootCmd.ErrOrStderr()
	if format.IsMachine() {
		out = rootCmd.OutOrStdout()
	}
	renderer, rerr := ui.NewRenderer(format, out)
	if rerr == nil && renderer.RenderError(err) == nil {
		return
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
}

// resolveFormat picks the output format: the flag wins over the config
func resolveFormat(opts *globalOptions, cfg *config.Config, out io.Writer) (ui.Format, error) {
	name := opts.format
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return ui.FormatAuto, err
	}
	return ui.Resolve(format, out), nil
}

// kindCompletion offers package type names for --type
func kindCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	kinds := types.AllPackageKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.String()+"\t"+kind.Description())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	var (
		kindName string
		name     string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.init")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			format, err := resolveFormat(opts, cfg, out)
			if err != nil {
				return err
			}

			if kindName == "" {
				kindName = cfg.Scaffold.DefaultKind
			}
			kind, err := types.ParsePackageKind(kindName)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --type")
			}

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, MsgErrWorkingDir)
			}
			dest := cwd
			if len(args) == 1 {
				dest = args[0]
				if !filepath.IsAbs(dest) {
					dest = filepath.Join(cwd, dest)
				}
			}
			dest = filepath.Clean(dest)
			if name == "" && paths.Basename(dest) == "" {
				return errors.Newf(errors.ErrInvalidInput, MsgErrNoName, dest)
			}

			toolsVersion, err := scaffold.ParseToolsVersion(cfg.Scaffold.ToolsVersion)
			if err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			if dryRun {
				fsys = filesystem.NewDryRun()
			}

			logger.Info().
				Str("destination", dest).
				Str("kind", kind.String()).
				Str("toolsVersion", toolsVersion.String()).
				Bool("dryRun", dryRun).
				Msg("Initializing package")

			initializer, err := scaffold.New(scaffold.Options{
				DestinationPath: dest,
				Kind:            kind,
				PackageName:     name,
				FileSystem:      fsys,
				ToolsVersion:    toolsVersion,
				Progress:        ui.NewProgressReporter(format, out),
				WorkingDir:      cwd,
				FileMode:        cfg.FilePermissions.File,
				DirMode:         cfg.FilePermissions.Directory,
				DryRun:          dryRun,
			})
			if err != nil {
				return err
			}

			result, err := initializer.Execute()
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(format, out)
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&kindName, "type", "t", "", MsgFlagType)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	_ = cmd.RegisterFlagCompletionFunc("type", kindCompletion)

	return cmd
}

func newKindsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "kinds",
		Short:   MsgKindsShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			format, err := resolveFormat(opts, cfg, out)
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(format, out)
			if err != nil {
				return err
			}
			return renderer.RenderResult(scaffold.DescribeKinds(scaffold.ExampleName))
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			rendered, err := config.Render(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrRender, MsgErrConfigRender)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
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
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
