package tss

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/xingzheai/tss-annotator/pkg/auth"
)

// CodeOK is the envelope code signalling application-level success.
const CodeOK = 200

const DefaultUserAgent = "SD separation edition"

type Config struct {
	Host      string
	Bucket    string
	UserAgent string
}

// Client is the transport shared by every remote operation. Calls to the
// service host carry the current credential and are unwrapped from the
// {code, data} envelope; calls to storage URLs are sent bare.
type Client struct {
	config  Config
	tokens  auth.TokenProvider
	api     *resty.Client
	storage *resty.Client
}

func NewClient(config Config, tokens auth.TokenProvider) *Client {
	config.Host = strings.TrimRight(config.Host, "/")
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &Client{
		config:  config,
		tokens:  tokens,
		api:     resty.New().SetBaseURL(config.Host),
		storage: resty.New(),
	}
}

func (c *Client) Host() string {
	return c.config.Host
}

func (c *Client) Bucket() string {
	return c.config.Bucket
}

type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

// Call sends a JSON request to path on the service host within timeout and
// decodes the envelope payload into out. A nil out discards the payload.
func (c *Client) Call(ctx context.Context, method, path string, timeout time.Duration, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.api.R().
		SetContext(ctx).
		SetHeader("Authorization", c.tokens.CurrentToken()).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", c.config.UserAgent)
	if body != nil {
		req.SetBody(body)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if !res.IsSuccess() {
		return fmt.Errorf("%s %s: %w: %d", method, path, ErrResponseStatusNotOK, res.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(res.Body(), &env); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
	}

	if env.Code != CodeOK {
		return fmt.Errorf("%s %s: %w: %d", method, path, ErrApplicationCode, env.Code)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
	}

	return nil
}

// PutObject writes data to a pre-signed storage URL. The URL carries its own
// authorization, so no credential is attached and no timeout is applied.
func (c *Client) PutObject(ctx context.Context, url, contentType string, data []byte) error {
	res, err := c.storage.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(url)
	if err != nil {
		return err
	}

	if !res.IsSuccess() {
		return fmt.Errorf("%w: %d", ErrResponseStatusNotOK, res.StatusCode())
	}

	return nil
}

// GetObject downloads the body of url within timeout.
func (c *Client) GetObject(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := c.storage.R().SetContext(ctx).Execute(http.MethodGet, url)
	if err != nil {
		return nil, err
	}

	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: %d", ErrResponseStatusNotOK, res.StatusCode())
	}

	return res.Body(), nil
}

var (
	ErrResponseStatusNotOK = errors.New("response status not OK")
	ErrMalformedResponse   = errors.New("malformed response body")
	ErrApplicationCode     = errors.New("service returned failure code")
)
