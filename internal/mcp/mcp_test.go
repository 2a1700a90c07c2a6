// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     string
		wantErr  bool
	}{
		{"no selector", "", BaseURL, false},
		{
			"all tools",
			"all",
			BaseURL + "?tools=web_search_exa,web_search_advanced_exa,get_code_context_exa,deep_search_exa,crawling_exa,company_research_exa,people_search_exa,deep_researcher_start,deep_researcher_check",
			false,
		},
		{"explicit list", "web_search_exa,crawling_exa", BaseURL + "?tools=web_search_exa,crawling_exa", false},
		{"single tool", "deep_search_exa", BaseURL + "?tools=deep_search_exa", false},
		{"stray commas trimmed", ",web_search_exa,", BaseURL + "?tools=web_search_exa", false},
		{"whitespace trimmed", "  web_search_exa  ", BaseURL + "?tools=web_search_exa", false},
		{"empty list", "  ,  ", "", true},
		{"only commas", ",,,", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURL(tt.selector)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildURLDeterministic(t *testing.T) {
	a, err := BuildURL("all")
	require.NoError(t, err)
	b, err := BuildURL("all")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	sub, err := BuildURL("toolA,toolB")
	require.NoError(t, err)
	assert.NotEqual(t, a, sub)
	assert.Equal(t, BaseURL+"?tools=toolA,toolB", sub)
}

func TestManifestIsStableCopy(t *testing.T) {
	m := Manifest()
	require.Len(t, m, 9)

	// Mutating the returned slice must not affect later calls.
	m[0].Name = "tampered"
	assert.Equal(t, "web_search_exa", Manifest()[0].Name)

	for _, tool := range Manifest() {
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}
}

func TestFormatNames(t *testing.T) {
	var buf bytes.Buffer
	FormatNames(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "web_search_exa", lines[0])
	assert.Equal(t, "deep_researcher_check", lines[8])
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf))

	var decoded []Tool
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, Manifest(), decoded)
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(&buf))

	var decoded []Tool
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, Manifest(), decoded)
}
