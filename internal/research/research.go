// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research drives the two-phase research job protocol: submit
// instructions and receive an opaque task id, then separately poll status for
// that id. Start and Check are independent single calls — the remote service
// owns the task state machine (pending → running → completed/failed) and any
// polling cadence belongs to the caller.
package research

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pdiddy/exa-cli/internal/api"
	"github.com/pdiddy/exa-cli/internal/payload"
)

// StartResult holds the submitted task's id and the full response body.
type StartResult struct {
	TaskID   string
	Response any
}

// CheckResult holds the remote-reported status and the full response body.
// Status is empty when the response carries no status field.
type CheckResult struct {
	Status   string
	Response any
}

// Start submits research instructions and returns the task id assigned by
// the service. The body is built through the usual merge engine, so a raw
// override can supply or replace any field, including the instructions.
func Start(ctx context.Context, client *api.Client, instructions, rawInline, rawFile string) (StartResult, error) {
	body, err := payload.NewBuilder().
		String("instructions", instructions).
		Build(rawInline, rawFile)
	if err != nil {
		return StartResult{}, err
	}
	if err := payload.RequireString(body, "instructions"); err != nil {
		return StartResult{}, err
	}

	resp, err := client.Post(ctx, api.PathResearchTasks, body)
	if err != nil {
		return StartResult{}, err
	}

	taskID := stringField(resp, "id")
	if taskID == "" {
		return StartResult{}, &api.MalformedResponseError{Field: "id"}
	}
	return StartResult{TaskID: taskID, Response: resp}, nil
}

// Check queries the current state of a task. The id is passed back exactly
// as returned by Start, escaped only for URL safety.
func Check(ctx context.Context, client *api.Client, taskID string) (CheckResult, error) {
	if taskID == "" {
		return CheckResult{}, fmt.Errorf("missing task_id")
	}

	resp, err := client.Get(ctx, api.PathResearchTasks+"/"+url.PathEscape(taskID))
	if err != nil {
		return CheckResult{}, err
	}
	return CheckResult{Status: stringField(resp, "status"), Response: resp}, nil
}

// stringField returns v[key] when v is an object holding a string there.
func stringField(v any, key string) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}
