package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/utils"
	"github.com/MKhiriev/api-activity/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] talking to address ("host:port" or a full URL).
//
// Returns [ErrInvalidAddress] if address is empty or cannot be parsed.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Hello(ctx context.Context) (models.Greeting, error) {
	var greeting models.Greeting

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&greeting).
		Get("/")
	if err != nil {
		return models.Greeting{}, fmt.Errorf("hello request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Greeting{}, err
	}

	return greeting, nil
}

func (h *httpServerAdapter) Square(ctx context.Context, num int64) (models.SquareArea, error) {
	var area models.SquareArea

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("num", strconv.FormatInt(num, 10)).
		SetResult(&area).
		Get("/square/{num}")
	if err != nil {
		return models.SquareArea{}, fmt.Errorf("square request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SquareArea{}, err
	}

	return area, nil
}

func (h *httpServerAdapter) Echo(ctx context.Context, arg1, arg2 *string) (models.EchoArgs, error) {
	var args models.EchoArgs

	req := h.client.R().
		SetContext(ctx).
		SetResult(&args)
	if arg1 != nil {
		req.SetQueryParam("arg1", *arg1)
	}
	if arg2 != nil {
		req.SetQueryParam("arg2", *arg2)
	}

	resp, err := req.Get("/echo")
	if err != nil {
		return models.EchoArgs{}, fmt.Errorf("echo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EchoArgs{}, err
	}

	return args, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&registered).
		Put("/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	h.logger.Debug().Object("credentials", credentials).Msg("registered on server")
	return registered, nil
}

func (h *httpServerAdapter) Sensitive(ctx context.Context, credentials models.Credentials) (models.SensitiveResponse, error) {
	var sensitive models.SensitiveResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("username", credentials.Username).
		SetHeader("password", credentials.Password).
		SetResult(&sensitive).
		Get("/sensitive")
	if err != nil {
		return models.SensitiveResponse{}, fmt.Errorf("sensitive request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SensitiveResponse{}, err
	}

	return sensitive, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
