package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	corereconcile "workforce-manager/core/reconcile"
	"workforce-manager/feature/timesheet"
	"workforce-manager/feature/timesheet/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	requestFile string
	dryRunEdit  bool
	yesConfirm  bool
)

// timesheetCmd is the parent command for timesheet operations.
var timesheetCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Edit timesheets and inspect their history",
}

// timesheetReconcileCmd applies an edit read from a JSON file.
var timesheetReconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a timesheet with an edited snapshot",
	Long: `Reads an update request (timesheetId, editorId, after and optional before
snapshot) from a JSON file, prints the per-kind plan and applies it after confirmation.

When the request carries no changes, the scalar field changes are derived from
the stored state so a change log entry is written.

Examples:
  # Show the plan only
  timesheet reconcile --file update.json --dry-run

  # Apply without the interactive prompt
  timesheet reconcile --file update.json --yes`,
	RunE: runTimesheetReconcile,
}

// timesheetHistoryCmd prints the change log of a timesheet.
var timesheetHistoryCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Print the change log entries of a timesheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimesheetHistory,
}

func init() {
	timesheetCmd.AddCommand(timesheetReconcileCmd, timesheetHistoryCmd)

	timesheetReconcileCmd.Flags().StringVarP(&requestFile, "file", "f", "", "Path to the update request JSON")
	timesheetReconcileCmd.Flags().BoolVar(&dryRunEdit, "dry-run", false, "Print the plan without writing")
	timesheetReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the edit (non-interactive)")
	_ = timesheetReconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(timesheetCmd)
}

func readUpdateRequest(path string) (timesheet.UpdateRequest, error) {
	var req timesheet.UpdateRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return req, nil
}

func runTimesheetReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := readUpdateRequest(requestFile)
	if err != nil {
		return err
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	l := rt.logger
	defer func() { _ = l.Sync() }()

	if _, err := rt.withCache().withStorage(ctx); err != nil {
		return err
	}
	svc := rt.timesheetService()

	l.Info("Planning timesheet edit", zap.Uint("timesheet_id", req.TimesheetID), zap.String("editor_id", req.EditorID))
	reports, err := svc.PlanUpdate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to plan edit: %w", err)
	}
	printPlan(l, reports)

	if len(req.Changes) == 0 {
		stored, err := reconcile.LoadSnapshot(ctx, rt.db, req.TimesheetID)
		if err != nil {
			return fmt.Errorf("failed to load timesheet %d: %w", req.TimesheetID, err)
		}
		before := stored
		if req.Before != nil {
			before = *req.Before
		}
		req.Changes = timesheet.DescribeChanges(before, req.After)
	}
	for _, c := range req.Changes {
		l.Info("Field change", zap.String("field", c.Field), zap.Any("old", c.Old), zap.Any("new", c.New))
	}

	if dryRunEdit {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirmEdit() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	summary, err := svc.UpdateTimesheet(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to apply edit: %w", err)
	}
	l.Info("Timesheet updated",
		zap.Uint("timesheet_id", summary.TimesheetID),
		zap.Int("version", summary.Version),
		zap.String("change_log_id", summary.ChangeLogID),
		zap.String("editor", summary.EditorFullName),
		zap.String("owner", summary.UserFullName),
		zap.Int("notifications_acknowledged", summary.NotificationsAcknowledged),
	)
	return nil
}

// printPlan logs one line per kind and one per write.
func printPlan(l *zap.Logger, reports []corereconcile.Report) {
	for _, r := range reports {
		l.Info("Planned kind",
			zap.String("kind", r.Kind),
			zap.Int("added", r.Summary.Added),
			zap.Int("updated", r.Summary.Updated),
			zap.Int("deleted", r.Summary.Deleted),
			zap.Int("unchanged", r.Summary.Unchanged),
		)
		for _, a := range r.Actions {
			l.Info("Planned action", zap.String("kind", r.Kind), zap.String("type", string(a.Type)), zap.String("key", a.Key))
		}
	}
}

// confirmEdit prompts the user for confirmation or uses --yes flag.
func confirmEdit() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to apply this edit: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func runTimesheetHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timesheet id %q: %w", args[0], err)
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	logs, err := rt.timesheetService().ListChangeLogs(ctx, uint(id))
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Change history of timesheet %d ===\n", id)
	if len(logs) == 0 {
		fmt.Println("No changes recorded.")
	}
	for _, entry := range logs {
		fmt.Printf("%s  %s by %s  (%d changes, status change: %t)\n",
			entry.ChangedAt.Format("2006-01-02 15:04:05"), entry.ID, entry.ChangedByID,
			entry.NumberOfChanges, entry.WasStatusChange)
		fmt.Printf("  reason: %s\n", entry.ChangeReason)
		changes, err := entry.FieldChanges()
		if err != nil {
			return fmt.Errorf("failed to decode changes of %s: %w", entry.ID, err)
		}
		for _, c := range changes {
			fmt.Printf("  - %s: %v -> %v\n", c.Field, c.Old, c.New)
		}
	}
	return nil
}
