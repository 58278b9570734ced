// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net/http"
	"time"
)

// DefaultTimeout is the request timeout applied to every outbound call.
// Imports of large payloads can run for a very long time on the server
// side, so the limit is deliberately generous.
const DefaultTimeout = time.Hour

// DHIS holds the connection settings for the target DHIS2 instance.
//
// Struct tags:
//   - json — keys inside the "dhis" object of dish.json.
//   - env  — environment variable overrides, prefixed with DHIS_
//     (caarlos0/env).
type DHIS struct {
	// Username is the basic-auth user name for the DHIS2 API.
	// Env: DHIS_USERNAME
	Username string `env:"USERNAME" json:"username"`

	// Password is the basic-auth password for the DHIS2 API.
	// Env: DHIS_PASSWORD
	Password string `env:"PASSWORD" json:"password"`

	// BaseURL is the root URL of the DHIS2 web API
	// (e.g. "https://play.dhis2.org/demo/api").
	// Env: DHIS_BASE_URL
	BaseURL string `env:"BASE_URL" json:"baseUrl"`
}

// Config is the top-level configuration for the dishctl helpers. It is
// loaded once at startup via [Load] and passed by injection into the
// components that need it; there is no process-wide lazy singleton.
type Config struct {
	DHIS DHIS `envPrefix:"DHIS_" json:"dhis"`
}

// Auth returns the colon-joined "username:password" credential string
// used for HTTP basic auth against the DHIS2 API.
func (c *Config) Auth() string {
	return c.DHIS.Username + ":" + c.DHIS.Password
}

// RequestOptions is a short-lived bundle of settings for one class of
// outbound request. Values are derived from [Config] on every call and
// carry no identity of their own.
type RequestOptions struct {
	Auth    string
	Method  string
	Timeout time.Duration
}

// Options groups the request option bundles for the three HTTP methods
// the importer uses.
type Options struct {
	Get    RequestOptions
	Post   RequestOptions
	Delete RequestOptions
}

// Options builds fresh request option bundles from the configuration.
// All three share the credential string and the fixed [DefaultTimeout].
func (c *Config) Options() Options {
	auth := c.Auth()
	return Options{
		Get:    RequestOptions{Auth: auth, Method: http.MethodGet, Timeout: DefaultTimeout},
		Post:   RequestOptions{Auth: auth, Method: http.MethodPost, Timeout: DefaultTimeout},
		Delete: RequestOptions{Auth: auth, Method: http.MethodDelete, Timeout: DefaultTimeout},
	}
}
