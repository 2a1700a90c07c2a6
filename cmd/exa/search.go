package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/payload"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the web",
	Long: `Search runs a web search and prints the ranked results. The query comes
from --query or from a "query" field in the raw body.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "search query")
	addBodyFlags(searchCmd)

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	inline, file := bodyFlags(cmd)

	body, err := payload.NewBuilder().
		String("query", query).
		Build(inline, file)
	if err != nil {
		return err
	}
	if err := payload.RequireString(body, "query"); err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	resp, err := client.Post(cmd.Context(), api.PathSearch, body)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}
