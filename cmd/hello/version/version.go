package version

import (
	"context"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/dustin/go-humanize"
	"github.com/hellodev/cli/pkg/cli"
	"github.com/hellodev/cli/pkg/logger"
	"github.com/hellodev/cli/pkg/print"
	"github.com/hellodev/cli/pkg/version"
	"github.com/hellodev/cli/pkg/version/latest"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type config struct {
	root  *cli.Config
	check bool
}

// New returns a new version command.
func New(c *cli.Config) *cobra.Command {
	var cfg = config{root: c}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Example: heredoc.Doc(`
			hello version
			hello version --check
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Root().Context(), cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.check, "check", false, "Check whether a newer version has been released.")

	return cmd
}

// Version returns the version string used by `hello --version`.
func Version() string {
	meta := version.Collect()
	return fmt.Sprintf("hello version %s %s/%s", meta.Version, meta.OS, meta.Arch)
}

// run runs the version command.
func run(ctx context.Context, cfg config) error {
	meta := version.Collect()

	if err := print.Print(meta, func() {
		printMetadata(meta)
	}); err != nil {
		return err
	}

	if cfg.check {
		return checkForUpdate(ctx)
	}
	return nil
}

func printMetadata(meta version.Metadata) {
	fmt.Printf("hello version %s %s/%s\n", meta.Version, meta.OS, meta.Arch)
	if meta.Built != "" {
		if built, err := time.Parse(time.RFC3339, meta.Built); err == nil {
			fmt.Printf("built %s\n", humanize.Time(built))
		}
	}
}

// checkForUpdate looks up the newest release on GitHub and prints an upgrade
// hint when the CLI is behind. Unlike the passive check on startup it is not
// rate limited and surfaces lookup errors.
func checkForUpdate(ctx context.Context) error {
	l := logger.NewStdErrLogger(logger.StdErrLoggerOpts{WithLoader: true})
	defer l.StopLoader()

	latestVersion, err := latest.Lookup(ctx)
	l.StopLoader()
	if err != nil {
		return errors.Wrap(err, "looking up the latest version")
	}
	if latestVersion == "" {
		l.Warning("Unable to determine the latest version.")
		return nil
	}

	if !latest.WarnIfOutdated(l, version.Get(), latestVersion) {
		l.Log("You are on the latest version.")
	}
	return nil
}
