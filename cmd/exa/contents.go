package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/payload"
)

var contentsCmd = &cobra.Command{
	Use:   "contents",
	Short: "Fetch page contents for URLs or result ids",
	Long: `Contents retrieves the text of previously found pages. Provide --urls,
--ids, or both; at least one must be present after the raw body is merged.`,
	RunE: runContents,
}

func init() {
	contentsCmd.Flags().StringSlice("urls", nil, "URLs to fetch (comma-separated)")
	contentsCmd.Flags().StringSlice("ids", nil, "result ids to fetch (comma-separated)")
	addBodyFlags(contentsCmd)

	rootCmd.AddCommand(contentsCmd)
}

func runContents(cmd *cobra.Command, args []string) error {
	urls, _ := cmd.Flags().GetStringSlice("urls")
	ids, _ := cmd.Flags().GetStringSlice("ids")
	inline, file := bodyFlags(cmd)

	body, err := payload.NewBuilder().
		StringList("urls", urls).
		StringList("ids", ids).
		Build(inline, file)
	if err != nil {
		return err
	}
	if err := payload.RequireAny(body, "urls", "ids"); err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	resp, err := client.Post(cmd.Context(), api.PathContents, body)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}
