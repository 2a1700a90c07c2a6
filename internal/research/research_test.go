// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/config"
	"github.com/pdiddy/exa-cli/internal/payload"
)

func testClient(baseURL string) *api.Client {
	return api.NewClient(config.Settings{APIKey: "k", BaseURL: baseURL, Timeout: 10 * time.Second})
}

func TestStartExtractsTaskID(t *testing.T) {
	var capturedBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/research/v0/tasks", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &capturedBody))
		fmt.Fprint(w, `{"id":"task-42"}`)
	}))
	defer ts.Close()

	got, err := Start(context.Background(), testClient(ts.URL), "survey recent fusion results", "", "")
	require.NoError(t, err)

	assert.Equal(t, "task-42", got.TaskID)
	assert.Equal(t, map[string]any{"instructions": "survey recent fusion results"}, capturedBody)
	assert.Equal(t, map[string]any{"id": "task-42"}, got.Response)
}

func TestStartRawOverrideWinsOverFlag(t *testing.T) {
	var capturedBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &capturedBody))
		fmt.Fprint(w, `{"id":"t"}`)
	}))
	defer ts.Close()

	_, err := Start(context.Background(), testClient(ts.URL),
		"from flag", `{"instructions":"from body","model":"exa-research-pro"}`, "")
	require.NoError(t, err)

	assert.Equal(t, "from body", capturedBody["instructions"])
	assert.Equal(t, "exa-research-pro", capturedBody["model"])
}

func TestStartMissingInstructionsNoCall(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer ts.Close()

	_, err := Start(context.Background(), testClient(ts.URL), "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing instructions")
	assert.Equal(t, 0, calls)
}

func TestStartMalformedBodyNoCall(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer ts.Close()

	_, err := Start(context.Background(), testClient(ts.URL), "x", `{"instructions"`, "")

	var invalid *payload.InvalidRawBodyError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, calls)
}

func TestStartMissingIDIsMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no id field", `{"status":"pending"}`},
		{"id not a string", `{"id":17}`},
		{"response not an object", `["task-1"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			_, err := Start(context.Background(), testClient(ts.URL), "instr", "", "")
			var malformed *api.MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, "id", malformed.Field)
		})
	}
}

func TestCheckUsesReturnedIDUnmodified(t *testing.T) {
	// Full round trip: the id handed to Check must reach the server exactly
	// as Start returned it.
	var checkPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			fmt.Fprint(w, `{"id":"task-abc-123"}`)
			return
		}
		checkPath = r.URL.Path
		fmt.Fprint(w, `{"id":"task-abc-123","status":"running"}`)
	}))
	defer ts.Close()

	client := testClient(ts.URL)
	started, err := Start(context.Background(), client, "instr", "", "")
	require.NoError(t, err)

	got, err := Check(context.Background(), client, started.TaskID)
	require.NoError(t, err)

	assert.Equal(t, "/research/v0/tasks/task-abc-123", checkPath)
	assert.Equal(t, "running", got.Status)
}

func TestCheckEscapesTaskID(t *testing.T) {
	var rawPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		fmt.Fprint(w, `{"status":"pending"}`)
	}))
	defer ts.Close()

	_, err := Check(context.Background(), testClient(ts.URL), "task/with spaces")
	require.NoError(t, err)
	assert.Equal(t, "/research/v0/tasks/task%2Fwith%20spaces", rawPath)
}

func TestCheckCompletedCarriesResultVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"id":"t","status":"completed","data":{"report":"findings"}}`)
	}))
	defer ts.Close()

	got, err := Check(context.Background(), testClient(ts.URL), "t")
	require.NoError(t, err)

	assert.Equal(t, "completed", got.Status)
	resp, ok := got.Response.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"report": "findings"}, resp["data"])
}

func TestCheckMissingTaskID(t *testing.T) {
	_, err := Check(context.Background(), testClient("http://unused.invalid"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing task_id")
}

func TestCheckRemoteErrorPassthrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"task not found"}`)
	}))
	defer ts.Close()

	_, err := Check(context.Background(), testClient(ts.URL), "gone")
	var remote *api.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusNotFound, remote.StatusCode)
	assert.Equal(t, `{"error":"task not found"}`, remote.Body)
}
