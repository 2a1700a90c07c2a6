// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/config"
)

// newClient resolves settings once from flags, environment, and config file,
// and builds the API client for this invocation.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	apiBase, _ := cmd.Flags().GetString("api-base")
	seconds, _ := cmd.Flags().GetUint64("timeout")

	var timeout time.Duration
	if seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	settings, err := config.Resolve(viper.GetViper(), config.Overrides{
		APIKey:  apiKey,
		BaseURL: apiBase,
		Timeout: timeout,
	})
	if err != nil {
		return nil, err
	}
	return api.NewClient(settings), nil
}

// printResponse writes the API response to stdout, indented when --pretty is
// set. The payload is printed as-is; result shapes belong to the API.
func printResponse(cmd *cobra.Command, payload any) error {
	pretty, _ := cmd.Flags().GetBool("pretty")
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(payload)
}

// addBodyFlags registers the raw-override flags shared by every request
// command.
func addBodyFlags(cmd *cobra.Command) {
	cmd.Flags().String("body", "", "raw JSON object merged over flag-derived fields (wins on conflict; beats --body-file)")
	cmd.Flags().String("body-file", "", "path to a JSON file used like --body")
}

// bodyFlags reads the raw-override flags.
func bodyFlags(cmd *cobra.Command) (inline, file string) {
	inline, _ = cmd.Flags().GetString("body")
	file, _ = cmd.Flags().GetString("body-file")
	return inline, file
}
