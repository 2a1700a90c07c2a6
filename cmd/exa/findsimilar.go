package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/payload"
)

var findSimilarCmd = &cobra.Command{
	Use:   "find-similar",
	Short: "Find pages similar to a URL",
	RunE:  runFindSimilar,
}

func init() {
	findSimilarCmd.Flags().String("url", "", "URL to find similar pages for")
	addBodyFlags(findSimilarCmd)

	rootCmd.AddCommand(findSimilarCmd)
}

func runFindSimilar(cmd *cobra.Command, args []string) error {
	u, _ := cmd.Flags().GetString("url")
	inline, file := bodyFlags(cmd)

	body, err := payload.NewBuilder().
		String("url", u).
		Build(inline, file)
	if err != nil {
		return err
	}
	if err := payload.RequireString(body, "url"); err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	resp, err := client.Post(cmd.Context(), api.PathFindSimilar, body)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}
