package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/hellodev/cli/pkg/cli"
	"github.com/hellodev/cli/pkg/httpd"
	"github.com/hellodev/cli/pkg/logger"
	"github.com/hellodev/cli/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config is the httpd config.
type config struct {
	root    *cli.Config
	host    string
	port    int
	portSet bool
	envFile string
}

const (
	defaultPort = 6000
)

// New returns a new serve cobra command.
func New(c *cli.Config) *cobra.Command {
	var cfg = config{root: c}

	cmd := &cobra.Command{
		Use:   "serve [--port] [--host]",
		Short: "Start the greeting server.",
		Long:  "Start an http server that serves greetings over JSON.",
		Example: heredoc.Doc(`
			hello serve
			hello serve --port 5000 --host localhost
			hello serve --env-file .env
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.portSet = cmd.Flags().Changed("port")
			return run(cmd.Root().Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.port, "port", defaultPort, "port to listen on")
	// Unless localhost is specified, MacOS with firewall on will ask for approval every time server starts
	cmd.Flags().StringVar(&cfg.host, "host", "", "host to listen on")
	cmd.Flags().StringVar(&cfg.envFile, "env-file", "", "dotenv file to load before starting")
	return cmd
}

// Run runs the serve command.
func run(ctx context.Context, cfg config) error {
	if cfg.envFile != "" {
		if err := godotenv.Load(cfg.envFile); err != nil {
			return errors.Wrapf(err, "loading %s", cfg.envFile)
		}
		logger.Step("Loaded environment from %s", cfg.envFile)
	}

	port := cfg.port
	if !cfg.portSet {
		envPort, err := portFromEnv()
		if err != nil {
			return err
		}
		if envPort != 0 {
			port = envPort
		}
	}

	err := httpd.ServeWithGracefulShutdown(
		ctx,
		&http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.host, port),
			Handler: httpd.Route(),
		},
	)
	if errors.Is(err, syscall.EADDRINUSE) {
		return portInUseError{port: port}
	}
	return err
}

// portFromEnv reads HELLO_PORT. It returns 0 when the variable is unset so
// the flag default applies.
func portFromEnv() (int, error) {
	env := os.Getenv("HELLO_PORT")
	if env == "" {
		return 0, nil
	}
	port, err := strconv.Atoi(env)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing HELLO_PORT %q", env)
	}
	return port, nil
}

// portInUseError is returned when the listen address is already bound.
type portInUseError struct {
	port int
}

var _ utils.ErrorExplained = portInUseError{}

func (e portInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use", e.port)
}

func (e portInUseError) ExplainError() string {
	return fmt.Sprintf("Stop the process listening on port %d or pick a different port with --port.", e.port)
}
