package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kong"

	"github.com/MKhiriev/api-activity/internal/adapter"
	"github.com/MKhiriev/api-activity/internal/logger"
)

const appName = "api-activity-client"

const (
	outputJSON  = "json"
	outputTable = "table"
)

var ErrNoAdapterFactory = errors.New("no server adapter factory provided")

// AdapterFactory builds the [adapter.ServerAdapter] used by the commands once
// the global flags are known. [adapter.NewHTTPServerAdapter] satisfies it.
type AdapterFactory func(address string, timeout time.Duration, logger *logger.Logger) (adapter.ServerAdapter, error)

type App struct {
	newAdapter AdapterFactory
	version    string

	stdout io.Writer
	stderr io.Writer
}

func NewApp(newAdapter AdapterFactory, version string, stdout, stderr io.Writer) (*App, error) {
	if newAdapter == nil {
		return nil, ErrNoAdapterFactory
	}

	return &App{
		newAdapter: newAdapter,
		version:    version,
		stdout:     stdout,
		stderr:     stderr,
	}, nil
}

var _ Client = (*App)(nil)

// session is what every command receives from kong next to the context.
type session struct {
	server adapter.ServerAdapter
	logger *logger.Logger
	out    io.Writer
	output string
}

func (a *App) Run(ctx context.Context, args []string) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description("Command line client of the api-activity HTTP server."),
		kong.UsageOnError(),
		kong.Writers(a.stdout, a.stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{"version": a.version},
	)
	if err != nil {
		return fmt.Errorf("failed creating the Kong parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("failed parsing CLI arguments: %w", err)
	}

	log := logger.NewConsoleLogger(appName, a.stderr, cli.LogLevel)
	server, err := a.newAdapter(cli.Address, cli.Timeout, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(&session{server: server, logger: log, out: a.stdout, output: cli.Output})

	log.Debug().Str("command", kctx.Command()).Str("address", cli.Address).Msg("running command")

	//nolint:wrapcheck // command errors are already descriptive.
	return kctx.Run()
}

// printResult writes v as indented JSON or, with --output=table, as a
// FIELD/VALUE table.
func (s *session) printResult(v any) error {
	if s.output == outputTable {
		rows, err := fieldRows(v)
		if err != nil {
			return fmt.Errorf("render result: %w", err)
		}
		return renderTable([]string{"Field", "Value"}, rows, s.out)
	}

	encoder := json.NewEncoder(s.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (s *session) printText(text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}
