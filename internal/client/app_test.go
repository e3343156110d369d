package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/api-activity/internal/adapter"
	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/mock"
	"github.com/MKhiriev/api-activity/models"
)

type testApp struct {
	app     *App
	server  *mock.MockServerAdapter
	stdout  *bytes.Buffer
	address string
	timeout time.Duration
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	ta := &testApp{
		server: mock.NewMockServerAdapter(ctrl),
		stdout: &bytes.Buffer{},
	}

	factory := func(address string, timeout time.Duration, _ *logger.Logger) (adapter.ServerAdapter, error) {
		ta.address = address
		ta.timeout = timeout
		return ta.server, nil
	}

	app, err := NewApp(factory, "test", ta.stdout, &bytes.Buffer{})
	require.NoError(t, err)
	ta.app = app

	return ta
}

func TestNewApp_NoFactory(t *testing.T) {
	_, err := NewApp(nil, "", &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoAdapterFactory)
}

func TestRun_GlobalFlags(t *testing.T) {
	ta := newTestApp(t)
	ta.server.EXPECT().Hello(gomock.Any()).Return(models.Greeting{Message: "Hello World!"}, nil)

	err := ta.app.Run(context.Background(), []string{"--address", "example.com:9000", "--timeout", "3s", "hello"})

	require.NoError(t, err)
	assert.Equal(t, "example.com:9000", ta.address)
	assert.Equal(t, 3*time.Second, ta.timeout)
	assert.JSONEq(t, `{"message":"Hello World!"}`, ta.stdout.String())
}

func TestRun_AddressFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "env-host:7000")

	ta := newTestApp(t)
	ta.server.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	err := ta.app.Run(context.Background(), []string{"server-version"})

	require.NoError(t, err)
	assert.Equal(t, "env-host:7000", ta.address)
	assert.Equal(t, "1.2.3\n", ta.stdout.String())
}

func TestRun_Square(t *testing.T) {
	ta := newTestApp(t)
	ta.server.EXPECT().Square(gomock.Any(), int64(4)).Return(models.SquareArea{Shape: "Square", Area: 16}, nil)

	err := ta.app.Run(context.Background(), []string{"square", "4"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"Shape":"Square","Area":16}`, ta.stdout.String())
}

func TestRun_Echo(t *testing.T) {
	ta := newTestApp(t)
	ta.server.EXPECT().Echo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg1, arg2 *string) (models.EchoArgs, error) {
			require.NotNil(t, arg1)
			assert.Equal(t, "foo", *arg1)
			assert.Nil(t, arg2)
			return models.EchoArgs{Arg1: arg1}, nil
		})

	err := ta.app.Run(context.Background(), []string{"echo", "--arg1", "foo"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"arg1":"foo","arg2":null}`, ta.stdout.String())
}

func TestRun_RegisterAndSensitive(t *testing.T) {
	alice := models.Credentials{Username: "alice", Password: "s3cret"}

	t.Run("register", func(t *testing.T) {
		ta := newTestApp(t)
		ta.server.EXPECT().Register(gomock.Any(), alice).
			Return(models.RegisterResponse{Message: "user registered", Username: "alice"}, nil)

		require.NoError(t, ta.app.Run(context.Background(), []string{"register", "alice", "s3cret"}))
		assert.JSONEq(t, `{"message":"user registered","username":"alice"}`, ta.stdout.String())
	})

	t.Run("sensitive rejected", func(t *testing.T) {
		ta := newTestApp(t)
		ta.server.EXPECT().Sensitive(gomock.Any(), alice).
			Return(models.SensitiveResponse{}, fmt.Errorf("%w: invalid username or password", adapter.ErrUnauthorized))

		err := ta.app.Run(context.Background(), []string{"sensitive", "alice", "s3cret"})

		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.Empty(t, ta.stdout.String())
	})
}

func TestRun_RegisterRace(t *testing.T) {
	ta := newTestApp(t)

	var calls atomic.Int32
	ta.server.EXPECT().Register(gomock.Any(), gomock.Any()).Times(8).
		DoAndReturn(func(context.Context, models.Credentials) (models.RegisterResponse, error) {
			switch calls.Add(1) {
			case 1:
				return models.RegisterResponse{Username: "alice"}, nil
			case 2:
				return models.RegisterResponse{}, adapter.ErrServiceUnavailable
			default:
				return models.RegisterResponse{}, adapter.ErrConflict
			}
		})

	err := ta.app.Run(context.Background(), []string{"register-race", "alice", "s3cret", "-n", "8"})
	require.NoError(t, err)

	var summary RaceSummary
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &summary))
	assert.Equal(t, RaceSummary{Requests: 8, Registered: 1, Conflicts: 6, Failed: 1}, summary)
}

func TestRun_RegisterRace_InvalidCount(t *testing.T) {
	ta := newTestApp(t)

	err := ta.app.Run(context.Background(), []string{"register-race", "alice", "s3cret", "-n", "0"})

	assert.ErrorIs(t, err, ErrInvalidRequestCount)
}

func TestRun_AdapterFactoryFails(t *testing.T) {
	failing := func(string, time.Duration, *logger.Logger) (adapter.ServerAdapter, error) {
		return nil, adapter.ErrInvalidAddress
	}
	app, err := NewApp(failing, "", &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	err = app.Run(context.Background(), []string{"hello"})

	assert.ErrorIs(t, err, adapter.ErrInvalidAddress)
}

func TestRun_UnknownCommand(t *testing.T) {
	ta := newTestApp(t)

	err := ta.app.Run(context.Background(), []string{"nope"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, adapter.ErrInvalidAddress))
	assert.Contains(t, err.Error(), "failed parsing CLI arguments")
}

func TestRun_TableOutput(t *testing.T) {
	ta := newTestApp(t)
	ta.server.EXPECT().Hello(gomock.Any()).Return(models.Greeting{Message: "Hello World!"}, nil)

	err := ta.app.Run(context.Background(), []string{"--output", "table", "hello"})

	require.NoError(t, err)
	assert.Contains(t, ta.stdout.String(), "message")
	assert.Contains(t, ta.stdout.String(), "Hello World!")
	assert.NotContains(t, ta.stdout.String(), "{")
}

func TestRun_InvalidOutput(t *testing.T) {
	ta := newTestApp(t)

	err := ta.app.Run(context.Background(), []string{"--output", "xml", "hello"})

	assert.Error(t, err)
}
