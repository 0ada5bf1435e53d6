package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tallybook/tallybook"
	"github.com/tallybook/tallybook/renderer"
)

type accountCmd struct {
	from string
	to   string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "show the personal account statement" }
func (*accountCmd) Usage() string {
	return `tally account [-from <date> -to <date>]

  Shows the owner's personal account: the period's transactions, most
  recent first, and the pending, settled and net totals.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Period start (defaults to the current month).")
	f.StringVar(&c.to, "to", "", "Period end.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	txs, err := book.AccountStatement(period)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountMarkdown(book.Account(), period, txs))
	return subcommands.ExitSuccess
}

type reimburseCmd struct {
	amount    float64
	date      string
	method    string
	reference string
	notes     string
}

func (*reimburseCmd) Name() string     { return "reimburse" }
func (*reimburseCmd) Synopsis() string { return "record money the company paid back to the owner" }
func (*reimburseCmd) Usage() string {
	return `tally reimburse -amount <amount> [-date <date>] [-method <method>] [-reference <ref>]

  Records a company reimbursement to the owner: a negative, already
  settled transaction on the personal account.
`
}

func (c *reimburseCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Reimbursed amount (required).")
	f.StringVar(&c.date, "date", "", "Reimbursement date (defaults to today).")
	f.StringVar(&c.method, "method", "bank-transfer", "Payment method.")
	f.StringVar(&c.reference, "reference", "", "Payment reference.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *reimburseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: a positive -amount is required.")
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
	if _, err := book.RecordReimbursement(money(c.amount), on, tallybook.PaymentMethod(c.method), c.reference, c.notes); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	_, _, net := tallybook.AccountTotals(book.Account())
	fmt.Printf("Recorded %s reimbursement, net owed is now %s\n", money(c.amount), net)
	return subcommands.ExitSuccess
}

type txCmd struct {
	status string
	date   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "update a personal-account transaction" }
func (*txCmd) Usage() string {
	return `tally tx -status reimbursed|cancelled <transaction id>

  Moves a pending personal-account transaction to a terminal status.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "New status: reimbursed or cancelled (required).")
	f.StringVar(&c.date, "date", "", "Settlement date (defaults to today).")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.status == "" {
		fmt.Fprintln(os.Stderr, "Error: -status and exactly one transaction id are required.")
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
	if err := book.UpdateTransactionStatus(tallybook.ID(f.Arg(0)), tallybook.TransactionStatus(c.status), on); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	_, _, net := tallybook.AccountTotals(book.Account())
	fmt.Printf("Transaction updated, net owed is now %s\n", net)
	return subcommands.ExitSuccess
}
