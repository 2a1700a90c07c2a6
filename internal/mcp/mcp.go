// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcp builds configuration URLs for the hosted Exa MCP server and
// exposes its static tool manifest. Everything here is pure: no network, no
// credential use, deterministic output for a given input.
package mcp

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// BaseURL is the hosted MCP server endpoint.
const BaseURL = "https://mcp.exa.ai/mcp"

// Tool is one remote tool integration: a name usable in the tools selector
// and a short human description.
type Tool struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// manifest is the static tool list. Not derived from any network call.
var manifest = []Tool{
	{"web_search_exa", "Real-time web search returning ranked results"},
	{"web_search_advanced_exa", "Web search with filters and content options"},
	{"get_code_context_exa", "Search code repositories and documentation for context"},
	{"deep_search_exa", "Multi-hop search that follows leads across sources"},
	{"crawling_exa", "Extract the contents of a specific URL"},
	{"company_research_exa", "Research a company across the web"},
	{"people_search_exa", "Find people and public profile information"},
	{"deep_researcher_start", "Start an asynchronous deep research task"},
	{"deep_researcher_check", "Check the status and result of a research task"},
}

// Manifest returns a copy of the static tool list.
func Manifest() []Tool {
	out := make([]Tool, len(manifest))
	copy(out, manifest)
	return out
}

// BuildURL returns the MCP configuration URL for the given tools selector.
// An empty selector yields the bare endpoint (server default tool set),
// "all" enables every tool in the manifest, and anything else is passed
// through as a comma-separated list after trimming blanks and stray commas.
func BuildURL(selector string) (string, error) {
	switch selector {
	case "":
		return BaseURL, nil
	case "all":
		names := make([]string, len(manifest))
		for i, t := range manifest {
			names[i] = t.Name
		}
		return BaseURL + "?tools=" + strings.Join(names, ","), nil
	default:
		trimmed := strings.Trim(strings.TrimSpace(selector), ",")
		if trimmed == "" {
			return "", fmt.Errorf("tools list is empty")
		}
		return BaseURL + "?tools=" + trimmed, nil
	}
}

// FormatNames writes one tool name per line, the plain default output.
func FormatNames(w io.Writer) {
	for _, t := range manifest {
		fmt.Fprintln(w, t.Name)
	}
}

// FormatJSON writes the manifest as indented JSON.
func FormatJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(manifest)
}

// FormatYAML writes the manifest as YAML.
func FormatYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(manifest)
}
