// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/exa-cli/internal/history"
	"github.com/pdiddy/exa-cli/internal/research"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Run asynchronous research tasks (start, check, tasks)",
	Long: `Research tasks run asynchronously on the API side. Start submits the
instructions and prints the response including the assigned task id; check
queries the task's current status by id. The CLI never waits on a task —
polling cadence is yours. Started and checked ids are also recorded in a
local ledger (see "research tasks"), which stores no result content.`,
}

// --- start subcommand ---

var researchStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Submit research instructions and print the assigned task id",
	RunE:  runResearchStart,
}

func runResearchStart(cmd *cobra.Command, args []string) error {
	instructions, _ := cmd.Flags().GetString("instructions")
	inline, file := bodyFlags(cmd)

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	started, err := research.Start(cmd.Context(), client, instructions, inline, file)
	if err != nil {
		return err
	}

	if ledger := openLedger(cmd); ledger != nil {
		defer ledger.Close()
		if err := ledger.Record(cmd.Context(), started.TaskID, instructions); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record task: %v\n", err)
		}
	}

	return printResponse(cmd, started.Response)
}

// --- check subcommand ---

var researchCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the status and result of a research task",
	RunE:  runResearchCheck,
}

func runResearchCheck(cmd *cobra.Command, args []string) error {
	taskID, _ := cmd.Flags().GetString("task-id")

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	checked, err := research.Check(cmd.Context(), client, taskID)
	if err != nil {
		return err
	}

	if checked.Status != "" {
		if ledger := openLedger(cmd); ledger != nil {
			defer ledger.Close()
			if err := ledger.UpdateStatus(cmd.Context(), taskID, checked.Status); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not update task status: %v\n", err)
			}
		}
	}

	return printResponse(cmd, checked.Response)
}

// --- tasks subcommand ---

var researchTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List research tasks recorded in the local ledger",
	RunE:  runResearchTasks,
}

func runResearchTasks(cmd *cobra.Command, args []string) error {
	path := ledgerPath()
	if path == "" {
		return fmt.Errorf("no history database path: set history_db or EXA_HISTORY_DB")
	}
	ledger, err := history.Open(path)
	if err != nil {
		return err
	}
	defer ledger.Close()

	tasks, err := ledger.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No recorded tasks.")
		return nil
	}

	fmt.Printf("%-28s  %-10s  %-20s  %s\n", "Task ID", "Status", "Started", "Instructions")
	fmt.Println(strings.Repeat("-", 100))
	for _, t := range tasks {
		status := t.LastStatus
		if status == "" {
			status = "-"
		}
		started := "-"
		if !t.CreatedAt.IsZero() {
			started = t.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		instructions := t.Instructions
		if len(instructions) > 40 {
			instructions = instructions[:37] + "..."
		}
		fmt.Printf("%-28s  %-10s  %-20s  %s\n", t.ID, status, started, instructions)
	}
	return nil
}

// openLedger opens the task ledger for best-effort recording. It returns nil
// when history is disabled or unavailable; a request never fails because the
// ledger does.
func openLedger(cmd *cobra.Command) *history.Ledger {
	if disabled, _ := cmd.Flags().GetBool("no-history"); disabled {
		return nil
	}
	path := ledgerPath()
	if path == "" {
		return nil
	}
	ledger, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open task ledger: %v\n", err)
		return nil
	}
	return ledger
}

// ledgerPath returns the history database path: config key history_db (or
// EXA_HISTORY_DB), then the per-user default.
func ledgerPath() string {
	if p := viper.GetString("history_db"); p != "" {
		return p
	}
	return history.DefaultPath()
}

func init() {
	researchStartCmd.Flags().String("instructions", "", "research instructions")
	addBodyFlags(researchStartCmd)

	researchCheckCmd.Flags().String("task-id", "", "task id returned by research start")

	researchCmd.PersistentFlags().Bool("no-history", false, "skip the local task ledger")

	researchCmd.AddCommand(researchStartCmd)
	researchCmd.AddCommand(researchCheckCmd)
	researchCmd.AddCommand(researchTasksCmd)
	rootCmd.AddCommand(researchCmd)
}
