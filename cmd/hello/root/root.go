package root

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/airplanedev/trap"
	"github.com/hellodev/cli/cmd/hello/greet"
	"github.com/hellodev/cli/cmd/hello/serve"
	"github.com/hellodev/cli/cmd/hello/version"
	"github.com/hellodev/cli/pkg/analytics"
	"github.com/hellodev/cli/pkg/cli"
	"github.com/hellodev/cli/pkg/conf"
	"github.com/hellodev/cli/pkg/greeting"
	"github.com/hellodev/cli/pkg/logger"
	"github.com/hellodev/cli/pkg/print"
	"github.com/hellodev/cli/pkg/prompts"
	"github.com/hellodev/cli/pkg/version/latest"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

// New returns a new root cobra command.
func New() *cobra.Command {
	var output string
	var cfg = &cli.Config{}
	// Only install an interactive prompter when stdin and stderr are
	// terminals. Commands fall back to non-interactive behavior otherwise.
	if prompts.CanPrompt() {
		cfg.Prompter = prompts.Surveyor{}
	}

	cmd := &cobra.Command{
		Use:   "hello <command>",
		Short: "Hello CLI",
		Example: heredoc.Doc(`
			hello
			hello greet Ada
			hello serve --port 5000
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analytics.Track(cfg, "Greeting Printed", nil)
			return print.Greeting(greeting.New(""))
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			analytics.Init(cfg)

			if !slices.Contains(print.ValidFormats, output) {
				return errors.Errorf("--output must be one of (%s)", strings.Join(print.ValidFormats, "|"))
			}
			switch output {
			case "json":
				print.DefaultFormatter = print.NewJSONFormatter()
			case "yaml":
				print.DefaultFormatter = print.YAML{}
			case "table":
				print.DefaultFormatter = print.Table{}
			default:
				print.DefaultFormatter = print.Text{}
			}

			logger.EnableDebug = cfg.DebugMode
			trap.Printf = logger.Log

			// Log the version every time the CLI is run with `--debug`. This aligns
			// customer debugging output with a specific release of the CLI.
			logger.Debug(version.Version())
			cmd.Flags().Visit(func(f *pflag.Flag) {
				logger.Debug("flag --%s=%s", f.Name, f.Value)
			})

			userCfg, err := conf.ReadDefaultUserConfig()
			if err != nil && !errors.Is(err, conf.ErrMissing) {
				logger.Debug("error reading config: %s", err)
			}
			latest.CheckLatest(cmd.Context(), logger.NewStdErrLogger(logger.StdErrLoggerOpts{}), &userCfg)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			analytics.Close()
		},
	}

	// Silence usage and errors.
	//
	// Allows us to control how the output looks like.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.SetVersionTemplate(version.Version() + "\n")

	// Persistent flags, set globally to all commands.
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "The format to use for output (text|json|yaml|table).")
	cmd.PersistentFlags().BoolVar(&cfg.DebugMode, "debug", false, "Whether to produce debugging output.")
	cmd.PersistentFlags().BoolVar(&cfg.WithTelemetry, "with-telemetry", false, "Whether to send usage analytics for this run.")
	cmd.PersistentFlags().BoolVarP(&cfg.Version, "version", "v", false, "Print the CLI version.")

	// Sub-commands:
	cmd.AddCommand(greet.New(cfg))
	cmd.AddCommand(serve.New(cfg))
	cmd.AddCommand(version.New(cfg))

	return cmd
}
