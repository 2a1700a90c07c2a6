package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/payload"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Fetch search context for a query",
	Long: `Context returns web content packaged for use as model context rather
than as ranked results.`,
	RunE: runContext,
}

func init() {
	contextCmd.Flags().String("query", "", "context query")
	addBodyFlags(contextCmd)

	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
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
	resp, err := client.Post(cmd.Context(), api.PathContext, body)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}
