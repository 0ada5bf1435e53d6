package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tallybook/tallybook"
)

type clientAddCmd struct {
	name    string
	company string
	email   string
	phone   string
}

func (*clientAddCmd) Name() string     { return "client-add" }
func (*clientAddCmd) Synopsis() string { return "add a client to the active company" }
func (*clientAddCmd) Usage() string {
	return `tally client-add -name <name> [-company <legal name>] [-email <email>] [-phone <phone>]

  Adds a client to the active company.
`
}

func (c *clientAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client name (required).")
	f.StringVar(&c.company, "company", "", "Client's legal company name.")
	f.StringVar(&c.email, "email", "", "Email address.")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
}

func (c *clientAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	client := tallybook.NewClient(c.name, c.company, c.email, c.phone)
	if err := book.AddClient(book.Active(), client); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added client %q (%s)\n", client.Name, client.ID.Short())
	return subcommands.ExitSuccess
}

type clientListCmd struct{}

func (*clientListCmd) Name() string     { return "client-list" }
func (*clientListCmd) Synopsis() string { return "list the active company's clients" }
func (*clientListCmd) Usage() string {
	return `tally client-list

  Lists the active company's clients with their contracted, paid and
  outstanding totals.
`
}

func (*clientListCmd) SetFlags(*flag.FlagSet) {}

func (c *clientListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	clients, err := book.Clients(book.Active())
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	b.WriteString("| ID | Name | Projects | Contracted | Paid | Balance |\n|:---|:---|---:|---:|---:|---:|\n")
	for _, client := range clients {
		contracted, paid, balance := tallybook.ClientTotals(client)
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s |\n",
			client.ID.Short(), client.Name, len(client.Projects), contracted, paid, balance)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type projectAddCmd struct {
	client  string
	name    string
	details string
	amount  float64
	start   string
}

func (*projectAddCmd) Name() string     { return "project-add" }
func (*projectAddCmd) Synopsis() string { return "add a project to a client" }
func (*projectAddCmd) Usage() string {
	return `tally project-add -client <id> -name <name> -amount <contract> [-start <date>]

  Adds an active project to a client.
`
}

func (c *projectAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client id (required).")
	f.StringVar(&c.name, "name", "", "Project name (required).")
	f.StringVar(&c.details, "details", "", "Project description.")
	f.Float64Var(&c.amount, "amount", 0, "Contract amount (required).")
	f.StringVar(&c.start, "start", "", "Start date (defaults to today).")
}

func (c *projectAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.client == "" || c.name == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -client, -name and a positive -amount are required.")
		return subcommands.ExitUsageError
	}
	start, err := parseDate(c.start)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	client, err := resolveClient(book, c.client)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	p := tallybook.NewProject(c.name, c.details, start, money(c.amount))
	if err := book.AddProject(client.ID, p); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added project %q (%s) to %s\n", p.Name, p.ID.Short(), client.Name)
	return subcommands.ExitSuccess
}

type projectPayCmd struct {
	client      string
	project     string
	amount      float64
	date        string
	kind        string
	method      string
	reference   string
	invoice     string
	bank        string
	bankAccount string
}

func (*projectPayCmd) Name() string     { return "project-pay" }
func (*projectPayCmd) Synopsis() string { return "record a payment received on a project" }
func (*projectPayCmd) Usage() string {
	return `tally project-pay -client <id> -project <id> -amount <amount> [-type advance|milestone|final]

  Records a payment received against a project contract. Overpaying is
  allowed; the project balance goes negative.
`
}

func (c *projectPayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client id (required).")
	f.StringVar(&c.project, "project", "", "Project id (required).")
	f.Float64Var(&c.amount, "amount", 0, "Payment amount (required).")
	f.StringVar(&c.date, "date", "", "Payment date (defaults to today).")
	f.StringVar(&c.kind, "type", "milestone", "Payment type: advance, milestone or final.")
	f.StringVar(&c.method, "method", "bank-transfer", "Payment method.")
	f.StringVar(&c.reference, "reference", "", "Payment reference.")
	f.StringVar(&c.invoice, "invoice", "", "Invoice number.")
	f.StringVar(&c.bank, "bank", "", "Bank name, for bank transfers.")
	f.StringVar(&c.bankAccount, "bank-account", "", "Account number, for bank transfers.")
}

func (c *projectPayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.client == "" || c.project == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -client, -project and a positive -amount are required.")
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
	client, err := resolveClient(book, c.client)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	project, err := resolveProject(client, c.project)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	pay := tallybook.ProjectPayment{
		Amount:        money(c.amount),
		Date:          date,
		Type:          tallybook.ProjectPaymentType(c.kind),
		Method:        tallybook.PaymentMethod(c.method),
		Reference:     c.reference,
		InvoiceNumber: c.invoice,
	}
	if c.bank != "" || c.bankAccount != "" {
		pay.Bank = &tallybook.BankTransferDetails{
			BankName:      c.bank,
			AccountNumber: c.bankAccount,
			TransferDate:  date,
		}
	}
	if _, err := book.AddProjectPayment(client.ID, project.ID, pay); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s on %s, balance %s\n",
		money(c.amount), project.Name, tallybook.ProjectBalance(project))
	return subcommands.ExitSuccess
}

// resolveClient accepts a full identifier, an unambiguous short prefix, or a name.
func resolveClient(book *tallybook.Book, arg string) (*tallybook.Client, error) {
	if c, err := book.Client(tallybook.ID(arg)); err == nil {
		return c, nil
	}
	clients, err := book.Clients(book.Active())
	if err != nil {
		return nil, err
	}
	var found *tallybook.Client
	for _, c := range clients {
		if strings.HasPrefix(string(c.ID), arg) || c.Name == arg {
			if found != nil {
				return nil, fmt.Errorf("ambiguous client %q", arg)
			}
			found = c
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no client matches %q", arg)
	}
	return found, nil
}

// resolveProject accepts a full identifier, an unambiguous short prefix, or a name.
func resolveProject(client *tallybook.Client, arg string) (*tallybook.Project, error) {
	if p := client.Project(tallybook.ID(arg)); p != nil {
		return p, nil
	}
	var found *tallybook.Project
	for _, p := range client.Projects {
		if strings.HasPrefix(string(p.ID), arg) || p.Name == arg {
			if found != nil {
				return nil, fmt.Errorf("ambiguous project %q", arg)
			}
			found = p
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no project of %s matches %q", client.Name, arg)
	}
	return found, nil
}

type contactAddCmd struct {
	client   string
	name     string
	position string
	phone    string
	email    string
	primary  bool
}

func (*contactAddCmd) Name() string     { return "contact-add" }
func (*contactAddCmd) Synopsis() string { return "add a contact person to a client" }
func (*contactAddCmd) Usage() string {
	return `tally contact-add -client <id> -name <name> [-primary]

  Adds a contact person to a client. Marking a contact primary clears the
  flag on the client's other contacts.
`
}

func (c *contactAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client id (required).")
	f.StringVar(&c.name, "name", "", "Contact name (required).")
	f.StringVar(&c.position, "position", "", "Position at the client.")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
	f.StringVar(&c.email, "email", "", "Email address.")
	f.BoolVar(&c.primary, "primary", false, "Make this the client's primary contact.")
}

func (c *contactAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.client == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -client and -name are required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	client, err := resolveClient(book, c.client)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if _, err := book.AddContact(client.ID, tallybook.ContactPerson{
		Name:     c.name,
		Position: c.position,
		Phone:    c.phone,
		Email:    c.email,
		Primary:  c.primary,
	}); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added contact %q to %s\n", c.name, client.Name)
	return subcommands.ExitSuccess
}
