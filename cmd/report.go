package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tallybook/tallybook"
	"github.com/tallybook/tallybook/renderer"
)

type reportAddCmd struct {
	title    string
	employee string
	from     string
	to       string
	expenses string
}

func (*reportAddCmd) Name() string     { return "report-add" }
func (*reportAddCmd) Synopsis() string { return "bundle expenses into an expense report" }
func (*reportAddCmd) Usage() string {
	return `tally report-add -title <title> -employee <id> -expenses <id,id,...> [-from <date> -to <date>]

  Creates a pending expense report bundling references to the given
  expenses. The report total is computed from them and recomputed whenever
  the membership changes.
`
}

func (c *reportAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Report title (required).")
	f.StringVar(&c.employee, "employee", "", "Submitting employee id (required).")
	f.StringVar(&c.from, "from", "", "Period start (defaults to the current month).")
	f.StringVar(&c.to, "to", "", "Period end.")
	f.StringVar(&c.expenses, "expenses", "", "Comma-separated expense ids.")
}

func (c *reportAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" || c.employee == "" {
		fmt.Fprintln(os.Stderr, "Error: -title and -employee are required.")
		return subcommands.ExitUsageError
	}
	period, err := parsePeriod(c.from, c.to)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	e, err := resolveEmployee(book, c.employee)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	var ids []tallybook.ID
	for _, s := range strings.Split(c.expenses, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		x, err := resolveExpense(book, s)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
		ids = append(ids, x.ID)
	}
	r, err := book.AddReport(book.Active(), c.title, period, e.ID, ids)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created report %q (%s), total %s\n", r.Title, r.ID.Short(), r.Total)
	return subcommands.ExitSuccess
}

type reportShowCmd struct{}

func (*reportShowCmd) Name() string     { return "report-show" }
func (*reportShowCmd) Synopsis() string { return "show an expense report" }
func (*reportShowCmd) Usage() string {
	return `tally report-show <report-id>

  Shows an expense report and the expenses it references.
`
}

func (*reportShowCmd) SetFlags(*flag.FlagSet) {}

func (c *reportShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one report id.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	r, err := resolveReport(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReportMarkdown(r, book.Expense))
	return subcommands.ExitSuccess
}

type reportApproveCmd struct {
	by     string
	date   string
	reject bool
}

func (*reportApproveCmd) Name() string     { return "report-approve" }
func (*reportApproveCmd) Synopsis() string { return "approve or reject a pending expense report" }
func (*reportApproveCmd) Usage() string {
	return `tally report-approve [-reject] -by <name> [-date <date>] <report-id>

  Approves a pending expense report, or rejects it with -reject. The
  referenced expenses keep their own statuses.
`
}

func (c *reportApproveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "", "Who decides (required).")
	f.StringVar(&c.date, "date", "", "Decision date (defaults to today).")
	f.BoolVar(&c.reject, "reject", false, "Reject instead of approving.")
}

func (c *reportApproveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.by == "" {
		fmt.Fprintln(os.Stderr, "Error: expected -by and exactly one report id.")
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	r, err := resolveReport(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if c.reject {
		err = book.RejectReport(r.ID, c.by, on)
	} else {
		err = book.ApproveReport(r.ID, c.by, on)
	}
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report %q is now %s\n", r.Title, r.Status)
	return subcommands.ExitSuccess
}

type reportReimburseCmd struct {
	date      string
	method    string
	reference string
}

func (*reportReimburseCmd) Name() string     { return "report-reimburse" }
func (*reportReimburseCmd) Synopsis() string { return "mark an approved expense report reimbursed" }
func (*reportReimburseCmd) Usage() string {
	return `tally report-reimburse [-date <date>] [-method <method>] [-reference <ref>] <report-id>

  Marks an approved expense report reimbursed, recording how the money
  came back.
`
}

func (c *reportReimburseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Reimbursement date (defaults to today).")
	f.StringVar(&c.method, "method", "bank-transfer", "Reimbursement method.")
	f.StringVar(&c.reference, "reference", "", "Reimbursement reference.")
}

func (c *reportReimburseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one report id.")
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	r, err := resolveReport(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := book.ReimburseReport(r.ID, on, tallybook.PaymentMethod(c.method), c.reference); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report %q reimbursed on %s\n", r.Title, on)
	return subcommands.ExitSuccess
}

// resolveReport accepts a full identifier or its unambiguous short prefix.
func resolveReport(book *tallybook.Book, arg string) (*tallybook.ExpenseReport, error) {
	if r, err := book.Report(tallybook.ID(arg)); err == nil {
		return r, nil
	}
	reports, err := book.ReportsOf(book.Active())
	if err != nil {
		return nil, err
	}
	var found *tallybook.ExpenseReport
	for _, r := range reports {
		if strings.HasPrefix(string(r.ID), arg) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous report id %q", arg)
			}
			found = r
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no report matches %q", arg)
	}
	return found, nil
}

type reportAmendCmd struct {
	report string
	add    string
	remove string
}

func (*reportAmendCmd) Name() string     { return "report-amend" }
func (*reportAmendCmd) Synopsis() string { return "add or remove an expense on a report" }
func (*reportAmendCmd) Usage() string {
	return `tally report-amend -report <id> [-add <expense id>] [-remove <expense id>]

  Adds an expense to, or removes one from, an expense report. The report
  total is recomputed; its approval status is untouched.
`
}

func (c *reportAmendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "report", "", "Report id (required).")
	f.StringVar(&c.add, "add", "", "Expense id to add.")
	f.StringVar(&c.remove, "remove", "", "Expense id to remove.")
}

func (c *reportAmendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.report == "" || (c.add == "" && c.remove == "") {
		fmt.Fprintln(os.Stderr, "Error: -report and one of -add or -remove are required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	r, err := resolveReport(book, c.report)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if c.add != "" {
		x, err := resolveExpense(book, c.add)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
		if err := book.AddExpenseToReport(r.ID, x.ID); err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	}
	if c.remove != "" {
		x, err := resolveExpense(book, c.remove)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
		if err := book.RemoveExpenseFromReport(r.ID, x.ID); err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	}
	r, err = book.Report(r.ID)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report %q now totals %s over %d expenses\n", r.Title, r.Total, len(r.ExpenseIDs))
	return subcommands.ExitSuccess
}
