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

type slipCmd struct {
	employee  string
	from      string
	to        string
	pay       bool
	personal  bool
	method    string
	by        string
	reference string
	date      string
}

func (*slipCmd) Name() string     { return "slip" }
func (*slipCmd) Synopsis() string { return "generate a salary slip" }
func (*slipCmd) Usage() string {
	return `tally slip -employee <id> [-from <date> -to <date>] [-pay [-personal]]

  Generates a salary slip for an employee over a period, derived from the
  monthly salary, the period's advances, and the contained salary
  payments. With -pay the slip's net is also paid out and booked as a
  salaries expense.
`
}

func (c *slipCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.employee, "employee", "", "Employee id (required).")
	f.StringVar(&c.from, "from", "", "Period start (defaults to the current month).")
	f.StringVar(&c.to, "to", "", "Period end.")
	f.BoolVar(&c.pay, "pay", false, "Also record the payment of the slip's net.")
	f.BoolVar(&c.personal, "personal", false, "With -pay: the owner fronts the money.")
	f.StringVar(&c.method, "method", "", "Payment method (defaults to the latest contained payment's).")
	f.StringVar(&c.by, "by", "", "Who processed the payment (defaults likewise).")
	f.StringVar(&c.reference, "reference", "", "Payment reference (defaults likewise).")
	f.StringVar(&c.date, "date", "", "With -pay: payment date (defaults to today).")
}

func (c *slipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.employee == "" {
		fmt.Fprintln(os.Stderr, "Error: -employee is required.")
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

	var slip *tallybook.SalarySlip
	if c.pay {
		on, err := parseDate(c.date)
		if err != nil {
			fail(err)
			return subcommands.ExitUsageError
		}
		slip, err = book.GenerateSalarySlipTracked(book.Active(), e.ID, period, on,
			tallybook.PaymentMethod(c.method), c.by, c.reference, c.personal)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	} else {
		slip, err = book.GenerateSalarySlip(book.Active(), e.ID, period,
			tallybook.PaymentMethod(c.method), c.by, c.reference)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(renderer.RenderSalarySlip(slip))
	return subcommands.ExitSuccess
}
