// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the API credential, base URL, and timeout into one
// explicit Settings value. Resolution happens once per invocation; the result
// is passed by value and never re-read mid-call, so tests can substitute a
// fake credential and endpoint freely.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the API origin used when no override is configured.
const DefaultBaseURL = "https://api.exa.ai"

// DefaultTimeout bounds each network call.
const DefaultTimeout = 30 * time.Second

// secretsDir holds plain-text key files, one secret per file. Declared as a
// var so tests can point it at a temp directory.
var secretsDir = ".secrets"

const apiKeySecretFile = "exa-api-key"

// ErrMissingCredential is returned when no API key could be resolved. It is
// raised before any request is attempted.
var ErrMissingCredential = errors.New("missing API key: set EXA_API_KEY or pass --api-key")

// Settings holds the resolved credential and endpoint for one invocation.
type Settings struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Overrides carries command-line flag values, which outrank every other
// source.
type Overrides struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Resolve builds Settings from, in order of precedence, flag overrides, the
// environment (EXA_API_KEY / EXA_API_BASE, bound through v), the config
// file, and the .secrets/ key file. A missing or empty API key is fatal.
func Resolve(v *viper.Viper, o Overrides) (Settings, error) {
	apiKey := firstNonBlank(o.APIKey, v.GetString("api_key"), readSecret(apiKeySecretFile))
	if apiKey == "" {
		return Settings{}, ErrMissingCredential
	}

	baseURL := firstNonBlank(o.BaseURL, v.GetString("api_base"), DefaultBaseURL)

	timeout := o.Timeout
	if timeout <= 0 {
		timeout = v.GetDuration("timeout")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return Settings{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
	}, nil
}

// readSecret returns the trimmed contents of a key file under secretsDir, or
// "" when the file is absent or unreadable. Missing secrets are not errors;
// the resolver just moves on.
func readSecret(name string) string {
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
