// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package remote talks to the password evaluation service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is where the evaluation service listens by default.
const DefaultEndpoint = "http://localhost:8000"

var ErrUnexpectedStatus = errors.New("unexpected response status")

type Client struct {
	endpoint string
	http     *retryablehttp.Client
}

// NewClient creates a client for the service at endpoint. retryMax is the number
// of retries on connection errors and 5xx responses; 0 disables retries.
func NewClient(endpoint string, retryMax int) *Client {
	return &Client{
		endpoint: endpoint,
		http:     initHttpClient(retryMax),
	}
}

func initHttpClient(retryMax int) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// The evaluator logs its own failures.
	client.Logger = nil
	client.RetryMax = retryMax
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 1 * time.Second
	// Hand back the last response instead of a generic "giving up" error.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return client
}

// Evaluate posts the password to the service. Cancelling ctx aborts the call;
// the returned error then wraps ctx.Err().
func (c *Client) Evaluate(ctx context.Context, password string) (Verdict, error) {
	body, err := json.Marshal(evaluateRequest{Action: ActionEvaluate, Password: password})
	if err != nil {
		return Verdict{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "pwdstrength/1.0")

	res, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			return Verdict{}, fmt.Errorf("%w: %s", ctxErr, err)
		}
		return Verdict{}, err
	}

	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing evaluation response body")
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		return Verdict{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
	}

	var verdict Verdict
	if err = json.NewDecoder(res.Body).Decode(&verdict); err != nil {
		return Verdict{}, fmt.Errorf("decoding evaluation response: %w", err)
	}

	return verdict, nil
}
