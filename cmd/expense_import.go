package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/tallybook/tallybook"
)

// expenseImportCmd imports expenses from a JSON export of another tool.
// JSONPath expressions pick the rows and the fields, so the command adapts
// to whatever shape the exporter produced.
type expenseImportCmd struct {
	file     string
	rows     string
	title    string
	amount   string
	date     string
	category string
}

func (*expenseImportCmd) Name() string     { return "expense-import" }
func (*expenseImportCmd) Synopsis() string { return "import expenses from a JSON export" }
func (*expenseImportCmd) Usage() string {
	return `tally expense-import -file <export.json> [-rows <jsonpath>] [-title <jsonpath>] ...

  Imports expenses from a JSON export. The -rows expression selects the
  records; the field expressions apply to each record.

Usage Examples:
# Import from a flat array of {title, amount, date} objects.
$ tally expense-import -file export.json

# Import from a nested export.
$ tally expense-import -file export.json -rows '$.data.expenses[*]' -amount '$.total'
`
}

func (c *expenseImportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON export file (required).")
	f.StringVar(&c.rows, "rows", "$[*]", "JSONPath selecting the expense records.")
	f.StringVar(&c.title, "title", "$.title", "JSONPath of the title within a record.")
	f.StringVar(&c.amount, "amount", "$.amount", "JSONPath of the amount within a record.")
	f.StringVar(&c.date, "date", "$.date", "JSONPath of the date within a record.")
	f.StringVar(&c.category, "category", "$.category", "JSONPath of the category within a record.")
}

func (c *expenseImportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(c.file)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not valid JSON: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	rows, err := jsonpath.Get(c.rows, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting rows with %q: %v\n", c.rows, err)
		return subcommands.ExitFailure
	}
	records, ok := rows.([]interface{})
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q selected a %T, expected a list of records\n", c.rows, rows)
		return subcommands.ExitFailure
	}

	book, err := openBook()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	imported := 0
	for i, record := range records {
		x, err := c.decode(record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping record %d: %v\n", i+1, err)
			continue
		}
		if err := book.AddExpense(book.Active(), x); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping record %d: %v\n", i+1, err)
			continue
		}
		imported++
	}
	fmt.Printf("Imported %d of %d expenses from %s\n", imported, len(records), c.file)
	return subcommands.ExitSuccess
}

// decode extracts one expense from a record using the configured paths.
func (c *expenseImportCmd) decode(record interface{}) (*tallybook.Expense, error) {
	title, err := stringAt(record, c.title)
	if err != nil {
		return nil, err
	}
	rawAmount, err := jsonpath.Get(c.amount, record)
	if err != nil {
		return nil, fmt.Errorf("no amount at %q: %w", c.amount, err)
	}
	amount, ok := rawAmount.(float64)
	if !ok {
		return nil, fmt.Errorf("amount at %q is a %T, expected a number", c.amount, rawAmount)
	}
	rawDate, err := stringAt(record, c.date)
	if err != nil {
		return nil, err
	}
	date, err := tallybook.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}
	category := tallybook.OtherCategory
	if s, err := stringAt(record, c.category); err == nil {
		category = tallybook.ExpenseCategory(s)
	}
	return tallybook.NewExpense(title, "", money(amount), category, date), nil
}

func stringAt(record interface{}, path string) (string, error) {
	v, err := jsonpath.Get(path, record)
	if err != nil {
		return "", fmt.Errorf("nothing at %q: %w", path, err)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is a %T, expected a string", path, v)
	}
	return s, nil
}
