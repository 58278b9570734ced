// SPDX-License-Identifier: Apache-2.0

package dhis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dishtools/dishctl/internal/config"
	"github.com/dishtools/dishctl/internal/logger"
	"github.com/dishtools/dishctl/internal/utils"
	"github.com/go-resty/resty/v2"
)

// ClientConfig carries the settings needed to construct a [Client].
type ClientConfig struct {
	// BaseURL is the root of the DHIS2 web API. Relative request URLs
	// are resolved against it; absolute URLs bypass it.
	BaseURL string
	// Auth is the "username:password" credential string.
	Auth string
	// Timeout is the per-request limit. Zero or negative falls back to
	// [config.DefaultTimeout].
	Timeout time.Duration
	// PayloadFile, when non-empty, receives a local echo of every
	// outgoing JSON body.
	PayloadFile string
}

// Client posts import payloads to the DHIS2 web API.
type Client struct {
	http        *resty.Client
	payloadFile string

	log *logger.Logger
}

// New constructs a Client from cfg. The credential string is split into
// basic-auth parts; the base URL is trimmed of trailing slashes.
func New(cfg ClientConfig, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	if username, password, ok := strings.Cut(cfg.Auth, ":"); ok {
		cli.SetBasicAuth(username, password)
	}

	return &Client{http: cli, payloadFile: cfg.PayloadFile, log: log}
}

// PostFile reads the file at path and POSTs its raw bytes to url with
// the given content type. A read failure is returned without any HTTP
// traffic; the caller decides whether to continue. The returned Result
// classifies the response status: 2xx counts as uploaded, everything
// else as failed.
func (c *Client) PostFile(ctx context.Context, url, path, contentType string) (Result, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}, fmt.Errorf("read upload source: %w", err)
	}

	c.log.Debug().Str("url", url).Str("source", path).Int("bytes", len(body)).Msg("uploading file")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(url)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}, fmt.Errorf("post file: %w", err)
	}

	res := Result{StatusCode: resp.StatusCode(), Body: resp.Body()}
	if utils.Is2xx(resp.StatusCode()) {
		res.Outcome = OutcomeImported
	} else {
		res.Outcome = OutcomeFailed
		res.Err = httpError(resp)
	}

	return res, nil
}

// PostJSON serializes payload and POSTs it to url with content type
// application/json. When the client carries a payload-file path, the
// serialized body is first echoed there; an echo write failure is
// recorded on the result and the request proceeds regardless.
//
// The response is classified into the three-way import branch: 2xx and
// 409 are the success family (the body is decoded as JSON, 409 carries
// [ErrConflict]); 401 carries [ErrUnauthorized]; everything else is a
// generic failure with status code and raw body. The returned error is
// non-nil only when no response was obtained at all.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) (Result, error) {
	var res Result

	if c.payloadFile != "" {
		res.EchoErr = c.echoPayload(payload)
	}

	c.log.Debug().Str("url", url).Msg("posting json")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res, fmt.Errorf("post json: %w", err)
	}

	res.StatusCode = resp.StatusCode()
	res.Body = resp.Body()

	switch {
	case utils.Is2xx(resp.StatusCode()):
		res.Outcome = OutcomeImported
		res.Response = decodeBody(resp.Body())
	case resp.StatusCode() == http.StatusConflict:
		res.Outcome = OutcomeConflict
		res.Err = ErrConflict
		res.Response = decodeBody(resp.Body())
	case resp.StatusCode() == http.StatusUnauthorized:
		res.Outcome = OutcomeUnauthorized
		res.Err = ErrUnauthorized
	default:
		res.Outcome = OutcomeFailed
		res.Err = httpError(resp)
	}

	return res, nil
}

func (c *Client) echoPayload(payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	if err := os.WriteFile(c.payloadFile, body, 0o644); err != nil {
		return fmt.Errorf("write payload file: %w", err)
	}

	return nil
}

func decodeBody(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil
	}

	return v
}

func httpError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
