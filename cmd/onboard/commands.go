package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
)

const commandHelp = `commands:
  add -name N -email E -role R -department D [-start YYYY-MM-DD]
  list [-q text] [-status all|not_started|in_progress|completed]
  show <employee-id>
  toggle <employee-id> <task-id>
  add-task <employee-id> <title...>
  complete [-force] <employee-id>
  options
`

var (
	errUsage        = errors.New("invalid usage")
	errTasksPending = errors.New("all tasks must be completed before marking the employee as fully onboarded")
)

func run(ctx context.Context, args []string, out io.Writer, svc onboarding.UseCase) error {
	if len(args) == 0 {
		return fmt.Errorf("command is required: %w", errUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add":
		return runAdd(ctx, rest, out, svc)
	case "list":
		return runList(ctx, rest, out, svc)
	case "show":
		return runShow(ctx, rest, out, svc)
	case "toggle":
		return runToggle(ctx, rest, out, svc)
	case "add-task":
		return runAddTask(ctx, rest, out, svc)
	case "complete":
		return runComplete(ctx, rest, out, svc)
	case "options":
		return runOptions(out)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %v: %w", fs.Name(), err, errUsage)
	}
	return nil
}

func runAdd(ctx context.Context, args []string, out io.Writer, svc onboarding.UseCase) error {
	fs := newFlagSet("add")
	var in onboarding.CreateEmployeeInput
	fs.StringVar(&in.FullName, "name", "", "full name")
	fs.StringVar(&in.Email, "email", "", "email address")
	fs.StringVar(&in.JobRole, "role", "", "job role")
	fs.StringVar(&in.Department, "department", "", "department")
	fs.StringVar(&in.StartDate, "start", "", "start date (YYYY-MM-DD)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	created, err := svc.CreateEmployee(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created employee %s\n\n", created.ID)
	return printEmployee(out, *created)
}

func runList(ctx context.Context, args []string, out io.Writer, svc onboarding.UseCase) error {
	fs := newFlagSet("list")
	query := fs.String("q", "", "search by name or email")
	rawStatus := fs.String("status", "all", "status filter")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	status, err := onboarding.ParseStatus(*rawStatus)
	if err != nil {
		return err
	}

	result, err := svc.ListEmployees(ctx, onboarding.ListEmployeesInput{Query: *query, Status: status})
	if err != nil {
		return err
	}

	if len(result.Employees) == 0 {
		fmt.Fprintln(out, "No employees found. Add a new employee to get started.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tDEPARTMENT\tSTATUS\tPROGRESS")
	for _, row := range result.Employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d%%\n",
			row.Employee.ID,
			row.Employee.FullName,
			row.Employee.Email,
			row.Employee.Department,
			statusLabel(row.Status),
			onboarding.RoundedProgress(row.Employee),
		)
	}
	return tw.Flush()
}

func runShow(ctx context.Context, args []string, out io.Writer, svc onboarding.UseCase) error {
	if len(args) != 1 {
		return fmt.Errorf("show needs <employee-id>: %w", errUsage)
	}

	found, err := svc.GetEmployee(ctx, onboarding.GetEmployeeInput{ID: args[0]})
	if err != nil {
		return err
	}
	return printEmployee(out, *found)
}

func runToggle(ctx context.Context, args []string, out io.Writer, svc onboarding.UseCase) error {
	if len(args) != 2 {
		return fmt.Errorf("toggle needs <employee-id> <task-id>: %w", errUsage)
	}

	updated, err := svc.ToggleTask(ctx, onboarding.ToggleTaskInput{EmployeeID: args[0], TaskID: args[1]})
	if err != nil {
		return err
	}
	return printEmployee(out, *updated)
}

func runAddTask(ctx context.Context, args []string, out io.Writer, svc onboarding.UseCase) error {
	if len(args) < 2 {
		return fmt.Errorf("add-task needs <employee-id> <title...>: %w", errUsage)
	}

	updated, err := svc.AddCustomTask(ctx, onboarding.AddCustomTaskInput{
		EmployeeID: args[0],
		Title:      strings.Join(args[1:], " "),
	})
	if err != nil {
		return err
	}
	return printEmployee(out, *updated)
}

// runComplete は進捗 100% の社員だけを完了にします。-force で確認を省略できます。
func runComplete(ctx context.Context, args []string, out io.Writer, svc onboarding.UseCase) error {
	fs := newFlagSet("complete")
	force := fs.Bool("force", false, "mark as fully onboarded even with pending tasks")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("complete needs <employee-id>: %w", errUsage)
	}
	id := fs.Arg(0)

	if !*force {
		found, err := svc.GetEmployee(ctx, onboarding.GetEmployeeInput{ID: id})
		if err != nil {
			return err
		}
		if !found.IsFullyOnboarded && onboarding.ProgressPercent(*found) < 100 {
			return errTasksPending
		}
	}

	updated, err := svc.MarkFullyOnboarded(ctx, onboarding.MarkFullyOnboardedInput{EmployeeID: id})
	if err != nil {
		return err
	}
	return printEmployee(out, *updated)
}

func runOptions(out io.Writer) error {
	fmt.Fprintln(out, "Departments:")
	for _, d := range onboarding.Departments {
		fmt.Fprintf(out, "  %s\n", d)
	}
	fmt.Fprintln(out, "Job roles:")
	for _, r := range onboarding.JobRoles {
		fmt.Fprintf(out, "  %s\n", r)
	}
	return nil
}

func printEmployee(out io.Writer, e onboarding.Employee) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", e.FullName)
	fmt.Fprintf(tw, "ID:\t%s\n", e.ID)
	fmt.Fprintf(tw, "Email:\t%s\n", e.Email)
	fmt.Fprintf(tw, "Department:\t%s\n", e.Department)
	fmt.Fprintf(tw, "Job Role:\t%s\n", e.JobRole)
	fmt.Fprintf(tw, "Start Date:\t%s\n", onboarding.StartDateLabel(e))
	fmt.Fprintf(tw, "Status:\t%s\n", statusLabel(onboarding.ClassifyStatus(e)))
	fmt.Fprintf(tw, "Progress:\t%d%% Complete (%d of %d tasks)\n",
		onboarding.RoundedProgress(e), e.CompletedTaskCount(), e.TaskCount())
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DONE\tTASK ID\tTITLE")
	for _, t := range e.Tasks {
		done := "[ ]"
		if t.Completed {
			done = "[x]"
		}
		title := t.Title
		if t.IsCustom {
			title += " (custom)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", done, t.ID, title)
	}
	return tw.Flush()
}

func statusLabel(s onboarding.Status) string {
	switch s {
	case onboarding.StatusNotStarted:
		return "Not Started"
	case onboarding.StatusInProgress:
		return "In Progress"
	case onboarding.StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
