package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/tallybook/tallybook"
)

type employeeAddCmd struct {
	name     string
	position string
	salary   float64
	join     string
	email    string
	phone    string
}

func (*employeeAddCmd) Name() string     { return "employee-add" }
func (*employeeAddCmd) Synopsis() string { return "add an employee to the active company" }
func (*employeeAddCmd) Usage() string {
	return `tally employee-add -name <name> -salary <monthly> [-position <position>] [-join <date>]

  Adds an employee to the active company.
`
}

func (c *employeeAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Employee name (required).")
	f.StringVar(&c.position, "position", "", "Position title.")
	f.Float64Var(&c.salary, "salary", 0, "Monthly salary (required).")
	f.StringVar(&c.join, "join", "", "Join date, YYYY-MM-DD (defaults to today).")
	f.StringVar(&c.email, "email", "", "Email address.")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
}

func (c *employeeAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.salary <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and a positive -salary are required.")
		return subcommands.ExitUsageError
	}
	join, err := parseDate(c.join)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	e := tallybook.NewEmployee(c.name, c.position, money(c.salary), join)
	e.Email = c.email
	e.Phone = c.phone
	if err := book.AddEmployee(book.Active(), e); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added employee %q (%s)\n", e.Name, e.ID.Short())
	return subcommands.ExitSuccess
}

type employeeListCmd struct{}

func (*employeeListCmd) Name() string     { return "employee-list" }
func (*employeeListCmd) Synopsis() string { return "list the active company's employees" }
func (*employeeListCmd) Usage() string {
	return `tally employee-list

  Lists the active company's employees with their balance as of today.
`
}

func (*employeeListCmd) SetFlags(*flag.FlagSet) {}

func (c *employeeListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	employees, err := book.Employees(book.Active())
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	today := tallybook.Today()
	var b strings.Builder
	b.WriteString("| ID | Name | Position | Monthly | Owed |\n|:---|:---|:---|---:|---:|\n")
	for _, e := range employees {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			e.ID.Short(), e.Name, e.Position, e.MonthlySalary, tallybook.CurrentBalance(e, today))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type advanceCmd struct {
	employee string
	amount   float64
	date     string
	reason   string
	method   string
	by       string
}

func (*advanceCmd) Name() string     { return "advance" }
func (*advanceCmd) Synopsis() string { return "record a salary advance" }
func (*advanceCmd) Usage() string {
	return `tally advance -employee <id> -amount <amount> [-date <date>] [-reason <reason>]

  Records a salary advance for an employee. Advances reduce the employee's
  balance and appear on salary slips covering their date.
`
}

func (c *advanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.employee, "employee", "", "Employee id (required).")
	f.Float64Var(&c.amount, "amount", 0, "Advance amount (required).")
	f.StringVar(&c.date, "date", "", "Advance date (defaults to today).")
	f.StringVar(&c.reason, "reason", "", "Reason for the advance.")
	f.StringVar(&c.method, "method", "cash", "Payment method.")
	f.StringVar(&c.by, "by", "", "Who processed the advance.")
}

func (c *advanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.employee == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -employee and a positive -amount are required.")
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
	e, err := resolveEmployee(book, c.employee)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if _, err := book.AddAdvance(e.ID, tallybook.SalaryAdvance{
		Amount:      money(c.amount),
		Date:        date,
		Reason:      c.reason,
		Method:      tallybook.PaymentMethod(c.method),
		ProcessedBy: c.by,
	}); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s advance for %s\n", money(c.amount), e.Name)
	return subcommands.ExitSuccess
}

type payCmd struct {
	employee   string
	amount     float64
	bonuses    float64
	deductions float64
	date       string
	from       string
	to         string
	method     string
	by         string
	reference  string
	personal   bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a salary payment" }
func (*payCmd) Usage() string {
	return `tally pay -employee <id> -amount <amount> -from <date> -to <date> [-personal]

  Records a salary instalment for a period, books the net as a salaries
  expense under the active company, and with -personal tracks it as
  personal money pending reimbursement.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.employee, "employee", "", "Employee id (required).")
	f.Float64Var(&c.amount, "amount", 0, "Payment amount (required).")
	f.Float64Var(&c.bonuses, "bonuses", 0, "Bonuses applied to this payment.")
	f.Float64Var(&c.deductions, "deductions", 0, "Deductions applied to this payment.")
	f.StringVar(&c.date, "date", "", "Payment date (defaults to today).")
	f.StringVar(&c.from, "from", "", "Period start (defaults to the current month).")
	f.StringVar(&c.to, "to", "", "Period end.")
	f.StringVar(&c.method, "method", "bank-transfer", "Payment method.")
	f.StringVar(&c.by, "by", "", "Who processed the payment.")
	f.StringVar(&c.reference, "reference", "", "Payment reference.")
	f.BoolVar(&c.personal, "personal", false, "The owner fronted this payment from personal funds.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.employee == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -employee and a positive -amount are required.")
		return subcommands.ExitUsageError
	}
	date, err := parseDate(c.date)
	if err != nil {
		fail(err)
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
	p := tallybook.SalaryPayment{
		Amount:      money(c.amount),
		Bonuses:     money(c.bonuses),
		Deductions:  money(c.deductions),
		Date:        date,
		Period:      period,
		Method:      tallybook.PaymentMethod(c.method),
		ProcessedBy: c.by,
		Reference:   c.reference,
	}
	if _, err := book.AddSalaryPaymentTracked(book.Active(), e.ID, p, c.personal); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Paid %s to %s for %s\n", money(c.amount), e.Name, period)
	return subcommands.ExitSuccess
}

type balanceCmd struct {
	employee string
	date     string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show what the books owe an employee" }
func (*balanceCmd) Usage() string {
	return `tally balance [-employee <id>] [-date <date>]

  Shows the salary balance of one employee, or of every employee of the
  active company: salary earned since the join date minus payments and
  advances.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.employee, "employee", "", "Employee id (defaults to all).")
	f.StringVar(&c.date, "date", "", "Compute the balance as of this date (defaults to today).")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := parseDate(c.date)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	var employees []*tallybook.Employee
	if c.employee != "" {
		e, err := resolveEmployee(book, c.employee)
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
		employees = append(employees, e)
	} else {
		employees, err = book.Employees(book.Active())
		if err != nil {
			fail(err)
			return subcommands.ExitFailure
		}
	}
	for _, e := range employees {
		fmt.Printf("%s: %s\n", e.Name, tallybook.CurrentBalance(e, asOf))
	}
	return subcommands.ExitSuccess
}

// resolveEmployee accepts a full identifier or its unambiguous short prefix,
// searching the whole book so records survive their company.
func resolveEmployee(book *tallybook.Book, arg string) (*tallybook.Employee, error) {
	if e, err := book.Employee(tallybook.ID(arg)); err == nil {
		return e, nil
	}
	var found *tallybook.Employee
	employees, err := book.Employees(book.Active())
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		if strings.HasPrefix(string(e.ID), arg) || e.Name == arg {
			if found != nil {
				return nil, fmt.Errorf("ambiguous employee %q", arg)
			}
			found = e
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no employee matches %q", arg)
	}
	return found, nil
}

type employeeDeleteCmd struct{}

func (*employeeDeleteCmd) Name() string     { return "employee-delete" }
func (*employeeDeleteCmd) Synopsis() string { return "delete an employee" }
func (*employeeDeleteCmd) Usage() string {
	return `tally employee-delete <id>

  Deletes an employee and removes it from its company's books.
`
}

func (*employeeDeleteCmd) SetFlags(*flag.FlagSet) {}

func (c *employeeDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one employee id is required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	e, err := resolveEmployee(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := book.DeleteEmployee(e.ID); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted employee %q\n", e.Name)
	return subcommands.ExitSuccess
}

type leaveCmd struct {
	employee string
	from     string
	to       string
	reason   string
	paid     bool
	by       string
}

func (*leaveCmd) Name() string     { return "leave" }
func (*leaveCmd) Synopsis() string { return "record an employee leave" }
func (*leaveCmd) Usage() string {
	return `tally leave -employee <id> -from <date> -to <date> [-reason <reason>] [-paid]

  Records an absence for an employee.
`
}

func (c *leaveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.employee, "employee", "", "Employee id (required).")
	f.StringVar(&c.from, "from", "", "First day of the leave (required).")
	f.StringVar(&c.to, "to", "", "Last day of the leave (required).")
	f.StringVar(&c.reason, "reason", "", "Reason for the leave.")
	f.BoolVar(&c.paid, "paid", true, "Whether the leave is paid.")
	f.StringVar(&c.by, "by", "", "Who approved the leave.")
}

func (c *leaveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.employee == "" || c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -employee, -from and -to are required.")
		return subcommands.ExitUsageError
	}
	start, err := tallybook.ParseDate(c.from)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	end, err := tallybook.ParseDate(c.to)
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
	if _, err := book.AddLeave(e.ID, tallybook.Leave{
		Start:      start,
		End:        end,
		Reason:     c.reason,
		Paid:       c.paid,
		ApprovedBy: c.by,
	}); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded leave for %s, %s to %s\n", e.Name, start, end)
	return subcommands.ExitSuccess
}

type dutyCmd struct {
	employee string
	from     string
	to       string
	overtime float64
	by       string
	notes    string
}

func (*dutyCmd) Name() string     { return "duty" }
func (*dutyCmd) Synopsis() string { return "record a worked span" }
func (*dutyCmd) Usage() string {
	return `tally duty -employee <id> -from <date> -to <date> [-overtime <hours>]

  Records a worked span for an employee, with optional overtime hours.
`
}

func (c *dutyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.employee, "employee", "", "Employee id (required).")
	f.StringVar(&c.from, "from", "", "First day of the span (required).")
	f.StringVar(&c.to, "to", "", "Last day of the span (required).")
	f.Float64Var(&c.overtime, "overtime", 0, "Overtime hours over the span.")
	f.StringVar(&c.by, "by", "", "Who verified the record.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *dutyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.employee == "" || c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -employee, -from and -to are required.")
		return subcommands.ExitUsageError
	}
	start, err := tallybook.ParseDate(c.from)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	end, err := tallybook.ParseDate(c.to)
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
	if _, err := book.AddDuty(e.ID, tallybook.DutyRecord{
		Start:      start,
		End:        end,
		Overtime:   decimal.NewFromFloat(c.overtime),
		VerifiedBy: c.by,
		Notes:      c.notes,
	}); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded duty for %s, %s to %s\n", e.Name, start, end)
	return subcommands.ExitSuccess
}
