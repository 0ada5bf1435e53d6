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

type expenseAddCmd struct {
	title    string
	details  string
	amount   float64
	category string
	date     string
	paidBy   string
	personal bool
}

func (*expenseAddCmd) Name() string     { return "expense-add" }
func (*expenseAddCmd) Synopsis() string { return "record an expense" }
func (*expenseAddCmd) Usage() string {
	return `tally expense-add -title <title> -amount <amount> [-category <category>] [-personal]

  Records a pending expense under the active company. With -personal the
  expense is paid from the owner's personal funds and a pending account
  transaction tracks the reimbursement.
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Expense title (required).")
	f.StringVar(&c.details, "details", "", "Expense description.")
	f.Float64Var(&c.amount, "amount", 0, "Expense amount (required).")
	f.StringVar(&c.category, "category", "other", "Expense category (travel, meals, equipment, ...).")
	f.StringVar(&c.date, "date", "", "Expense date (defaults to today).")
	f.StringVar(&c.paidBy, "paid-by", "", "Who paid the expense.")
	f.BoolVar(&c.personal, "personal", false, "Paid from the owner's personal funds.")
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.title == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -title and a positive -amount are required.")
		return subcommands.ExitUsageError
	}
	date, err := parseDate(c.date)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	x := tallybook.NewExpense(c.title, c.details, money(c.amount), tallybook.ExpenseCategory(c.category), date)
	x.PaidBy = c.paidBy
	if c.personal {
		if _, err := book.AddExpensePersonal(book.Active(), x); err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded personal expense %q (%s), pending reimbursement\n", x.Title, x.ID.Short())
		return subcommands.ExitSuccess
	}
	if err := book.AddExpense(book.Active(), x); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %q (%s)\n", x.Title, x.ID.Short())
	return subcommands.ExitSuccess
}

type expenseListCmd struct{}

func (*expenseListCmd) Name() string     { return "expense-list" }
func (*expenseListCmd) Synopsis() string { return "list the active company's expenses" }
func (*expenseListCmd) Usage() string {
	return `tally expense-list

  Lists the active company's expenses grouped by workflow status.
`
}

func (*expenseListCmd) SetFlags(*flag.FlagSet) {}

func (c *expenseListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	expenses, err := book.ExpensesOf(book.Active())
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ExpensesMarkdown(expenses))
	return subcommands.ExitSuccess
}

type expenseApproveCmd struct {
	by     string
	reject bool
}

func (*expenseApproveCmd) Name() string     { return "expense-approve" }
func (*expenseApproveCmd) Synopsis() string { return "approve or reject a pending expense" }
func (*expenseApproveCmd) Usage() string {
	return `tally expense-approve [-reject] -by <name> <expense-id>

  Approves a pending expense, or rejects it with -reject. An approved
  expense can no longer be rejected, and vice versa.
`
}

func (c *expenseApproveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "", "Who decides (required).")
	f.BoolVar(&c.reject, "reject", false, "Reject instead of approving.")
}

func (c *expenseApproveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.by == "" {
		fmt.Fprintln(os.Stderr, "Error: expected -by and exactly one expense id.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	x, err := resolveExpense(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if c.reject {
		err = book.RejectExpense(x.ID, c.by)
	} else {
		err = book.ApproveExpense(x.ID, c.by)
	}
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Expense %q is now %s\n", x.Title, x.Status)
	return subcommands.ExitSuccess
}

type expenseReimburseCmd struct {
	date string
}

func (*expenseReimburseCmd) Name() string     { return "expense-reimburse" }
func (*expenseReimburseCmd) Synopsis() string { return "mark an approved expense reimbursed" }
func (*expenseReimburseCmd) Usage() string {
	return `tally expense-reimburse [-date <date>] <expense-id>

  Marks an approved expense reimbursed. If the expense was paid from the
  owner's personal funds, the linked account transaction settles with it.
`
}

func (c *expenseReimburseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Reimbursement date (defaults to today).")
}

func (c *expenseReimburseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one expense id.")
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
	x, err := resolveExpense(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := book.ReimburseExpense(x.ID, on); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Expense %q reimbursed on %s\n", x.Title, on)
	return subcommands.ExitSuccess
}

// resolveExpense accepts a full identifier or its unambiguous short prefix.
func resolveExpense(book *tallybook.Book, arg string) (*tallybook.Expense, error) {
	if x, err := book.Expense(tallybook.ID(arg)); err == nil {
		return x, nil
	}
	expenses, err := book.ExpensesOf(book.Active())
	if err != nil {
		return nil, err
	}
	var found *tallybook.Expense
	for _, x := range expenses {
		if strings.HasPrefix(string(x.ID), arg) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous expense id %q", arg)
			}
			found = x
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no expense matches %q", arg)
	}
	return found, nil
}
