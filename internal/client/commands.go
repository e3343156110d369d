package client

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alecthomas/kong"

	"github.com/MKhiriev/api-activity/internal/adapter"
	"github.com/MKhiriev/api-activity/internal/workers"
	"github.com/MKhiriev/api-activity/models"
)

// CLI is the command line interface of the api-activity client.
type CLI struct {
	Hello        HelloCmd        `kong:"cmd,help='Fetch the greeting.'"`
	Square       SquareCmd       `kong:"cmd,help='Compute the area of a square.'"`
	Echo         EchoCmd         `kong:"cmd,help='Echo query arguments back.'"`
	Register     RegisterCmd     `kong:"cmd,help='Register a new user.'"`
	Sensitive    SensitiveCmd    `kong:"cmd,help='Access the protected endpoint.'"`
	ServerVer    ServerVerCmd    `kong:"cmd,name='server-version',help='Fetch the server version.'"`
	RegisterRace RegisterRaceCmd `kong:"cmd,help='Register one username from many concurrent requests.'"`

	Address  string           `kong:"short='a',env='SERVER_ADDRESS',default='localhost:8080',help='Server address (host:port or URL).'"`
	Timeout  time.Duration    `kong:"env='CLIENT_TIMEOUT',default='10s',help='Timeout of a single request.'"`
	Output   string           `kong:"short='o',enum='json,table',default='json',help='Result format (json or table).'"`
	LogLevel string           `kong:"env='CLIENT_LOG_LEVEL',enum='debug,info,warn,error',default='warn',help='Client logging level.'"`
	Version  kong.VersionFlag `kong:"help='Output version and exit.'"`
}

type HelloCmd struct{}

func (c *HelloCmd) Run(ctx context.Context, s *session) error {
	greeting, err := s.server.Hello(ctx)
	if err != nil {
		return err
	}
	return s.printResult(greeting)
}

type SquareCmd struct {
	Num int64 `arg:"" help:"Side of the square (non-negative)."`
}

func (c *SquareCmd) Run(ctx context.Context, s *session) error {
	area, err := s.server.Square(ctx, c.Num)
	if err != nil {
		return err
	}
	return s.printResult(area)
}

type EchoCmd struct {
	Arg1 *string `help:"Value sent as arg1; omitted when not set."`
	Arg2 *string `help:"Value sent as arg2; omitted when not set."`
}

func (c *EchoCmd) Run(ctx context.Context, s *session) error {
	args, err := s.server.Echo(ctx, c.Arg1, c.Arg2)
	if err != nil {
		return err
	}
	return s.printResult(args)
}

// CredentialArgs is shared by the commands that take a username and password.
type CredentialArgs struct {
	Username string `arg:"" help:"Username."`
	Password string `arg:"" help:"Password."`
}

func (c CredentialArgs) credentials() models.Credentials {
	return models.Credentials{Username: c.Username, Password: c.Password}
}

type RegisterCmd struct {
	CredentialArgs `embed:""`
}

func (c *RegisterCmd) Run(ctx context.Context, s *session) error {
	registered, err := s.server.Register(ctx, c.credentials())
	if err != nil {
		return err
	}
	return s.printResult(registered)
}

type SensitiveCmd struct {
	CredentialArgs `embed:""`
}

func (c *SensitiveCmd) Run(ctx context.Context, s *session) error {
	sensitive, err := s.server.Sensitive(ctx, c.credentials())
	if err != nil {
		return err
	}
	return s.printResult(sensitive)
}

type ServerVerCmd struct{}

func (c *ServerVerCmd) Run(ctx context.Context, s *session) error {
	version, err := s.server.Version(ctx)
	if err != nil {
		return err
	}
	return s.printText(version)
}

type RegisterRaceCmd struct {
	CredentialArgs `embed:""`

	Requests int `short:"n" default:"10" help:"Number of concurrent registrations."`
}

// RaceSummary counts the outcomes of a register-race run.
type RaceSummary struct {
	Requests   int `json:"requests"`
	Registered int `json:"registered"`
	Conflicts  int `json:"conflicts"`
	Failed     int `json:"failed"`
}

var ErrInvalidRequestCount = errors.New("number of requests must be positive")

func (c *RegisterRaceCmd) Run(ctx context.Context, s *session) error {
	if c.Requests <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRequestCount, c.Requests)
	}

	var registered, conflicts, failed atomic.Int64
	credentials := c.credentials()

	pool := workers.NewWorkers()
	for range c.Requests {
		pool.Add(workers.WorkerFunc(func(ctx context.Context) {
			_, err := s.server.Register(ctx, credentials)
			switch {
			case err == nil:
				registered.Add(1)
			case errors.Is(err, adapter.ErrConflict):
				conflicts.Add(1)
			default:
				s.logger.Warn().Err(err).Msg("registration request failed")
				failed.Add(1)
			}
		}))
	}
	pool.Run(ctx)

	return s.printResult(RaceSummary{
		Requests:   c.Requests,
		Registered: int(registered.Load()),
		Conflicts:  int(conflicts.Load()),
		Failed:     int(failed.Load()),
	})
}
