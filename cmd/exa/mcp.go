// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/exa-cli/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Work with the hosted MCP server (url, tools)",
	Long: `Mcp builds configuration for the hosted Exa MCP server. These commands
are purely local: no network call and no API key required.`,
}

// --- url subcommand ---

var mcpURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the MCP server URL for a tool selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		selector, _ := cmd.Flags().GetString("tools")
		u, err := mcp.BuildURL(selector)
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	},
}

// --- tools subcommand ---

var mcpToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools available on the MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		asYAML, _ := cmd.Flags().GetBool("yaml")
		switch {
		case asJSON:
			return mcp.FormatJSON(os.Stdout)
		case asYAML:
			return mcp.FormatYAML(os.Stdout)
		default:
			mcp.FormatNames(os.Stdout)
			return nil
		}
	},
}

func init() {
	mcpURLCmd.Flags().String("tools", "", `tools to enable: "all" or a comma-separated list (default: server's default set)`)

	mcpToolsCmd.Flags().Bool("json", false, "output the manifest as JSON with descriptions")
	mcpToolsCmd.Flags().Bool("yaml", false, "output the manifest as YAML with descriptions")

	mcpCmd.AddCommand(mcpURLCmd)
	mcpCmd.AddCommand(mcpToolsCmd)
	rootCmd.AddCommand(mcpCmd)
}
