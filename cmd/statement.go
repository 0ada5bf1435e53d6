package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tallybook/tallybook/renderer"
)

type statementCmd struct {
	client string
	from   string
	to     string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "generate a client statement" }
func (*statementCmd) Usage() string {
	return `tally statement -client <id> [-from <date> -to <date>]

  Generates a statement of a client's project payments over a period. A
  project without a payment in the period does not appear; a period with
  no payments at all is refused.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client id (required).")
	f.StringVar(&c.from, "from", "", "Period start (defaults to the current month).")
	f.StringVar(&c.to, "to", "", "Period end.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.client == "" {
		fmt.Fprintln(os.Stderr, "Error: -client is required.")
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
	client, err := resolveClient(book, c.client)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	s, err := book.GenerateClientStatement(book.Active(), client.ID, period)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderClientStatement(s))
	return subcommands.ExitSuccess
}
