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

type companyAddCmd struct {
	name    string
	address string
	phone   string
	email   string
}

func (*companyAddCmd) Name() string     { return "company-add" }
func (*companyAddCmd) Synopsis() string { return "create a new company" }
func (*companyAddCmd) Usage() string {
	return `tally company-add -name <name> [-address <address>] [-phone <phone>] [-email <email>]

  Creates a new company in the book. The new company is not made active;
  use company-switch for that.
`
}

func (c *companyAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Company name (required).")
	f.StringVar(&c.address, "address", "", "Postal address.")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
	f.StringVar(&c.email, "email", "", "Contact email.")
}

func (c *companyAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	company, err := book.AddCompany(c.name, c.address, c.phone, c.email)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created company %q (%s)\n", company.Name, company.ID.Short())
	return subcommands.ExitSuccess
}

type companyListCmd struct{}

func (*companyListCmd) Name() string     { return "company-list" }
func (*companyListCmd) Synopsis() string { return "list companies" }
func (*companyListCmd) Usage() string {
	return `tally company-list

  Lists the companies in the book. The active one is marked with a star.
`
}

func (*companyListCmd) SetFlags(*flag.FlagSet) {}

func (c *companyListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	b.WriteString("| | ID | Name | Email |\n|:---|:---|:---|:---|\n")
	for _, company := range book.Companies() {
		active := ""
		if company.ID == book.Active() {
			active = "*"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", active, company.ID.Short(), company.Name, company.Email)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type companySwitchCmd struct{}

func (*companySwitchCmd) Name() string     { return "company-switch" }
func (*companySwitchCmd) Synopsis() string { return "make another company the active one" }
func (*companySwitchCmd) Usage() string {
	return `tally company-switch <company-id>

  Makes the given company active. Records never move; only the active
  pointer changes.
`
}

func (*companySwitchCmd) SetFlags(*flag.FlagSet) {}

func (c *companySwitchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one company id.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	id, err := resolveCompany(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := book.SwitchCompany(id); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	company, _ := book.Company(id)
	fmt.Printf("Active company is now %q\n", company.Name)
	return subcommands.ExitSuccess
}

type companyDeleteCmd struct{}

func (*companyDeleteCmd) Name() string     { return "company-delete" }
func (*companyDeleteCmd) Synopsis() string { return "delete a company" }
func (*companyDeleteCmd) Usage() string {
	return `tally company-delete <company-id>

  Deletes a company. Its records stay in the book, reachable by identifier.
  Deleting the last company is refused.
`
}

func (*companyDeleteCmd) SetFlags(*flag.FlagSet) {}

func (c *companyDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one company id.")
		return subcommands.ExitUsageError
	}
	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	id, err := resolveCompany(book, f.Arg(0))
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	if err := book.DeleteCompany(id); err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted company %s\n", id.Short())
	return subcommands.ExitSuccess
}

// resolveCompany accepts a full identifier or its unambiguous short prefix.
func resolveCompany(book *tallybook.Book, arg string) (tallybook.ID, error) {
	var found tallybook.ID
	for _, c := range book.Companies() {
		if c.ID == tallybook.ID(arg) {
			return c.ID, nil
		}
		if strings.HasPrefix(string(c.ID), arg) {
			if !found.IsZero() {
				return "", fmt.Errorf("ambiguous company id %q", arg)
			}
			found = c.ID
		}
	}
	if found.IsZero() {
		return "", fmt.Errorf("no company matches %q", arg)
	}
	return found, nil
}
