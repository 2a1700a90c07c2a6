package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/payload"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Ask a question and get a cited answer",
	Long: `Answer runs the question through search and answer generation and prints
the answer with citations. Streaming is disabled so the response arrives as
one JSON document; a raw body with "stream": true can re-enable it.`,
	RunE: runAnswer,
}

func init() {
	answerCmd.Flags().String("query", "", "question to answer")
	addBodyFlags(answerCmd)

	rootCmd.AddCommand(answerCmd)
}

func runAnswer(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	inline, file := bodyFlags(cmd)

	body, err := payload.NewBuilder().
		String("query", query).
		Bool("stream", false).
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
	resp, err := client.Post(cmd.Context(), api.PathAnswer, body)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}
