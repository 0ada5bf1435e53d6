// Package cmd implements the CLI application to manage a small business's books.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/kelseyhightower/envconfig"
	"github.com/tallybook/tallybook"
)

// Config is the environment configuration of the tally command, read from
// TALLY_* variables. Flags override it.
type Config struct {
	// Book is the directory holding the JSONL collections.
	Book string `default:".tally"`
	// Currency is the reporting currency code.
	Currency string `default:"USD"`
	// Owner names the personal account on first use.
	Owner string `default:"My Account"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var config Config

var bookDir = flag.String("book", "", "Path to the book directory (overrides TALLY_BOOK)")

func init() {
	if err := envconfig.Process("tally", &config); err != nil {
		log.Println("warning, invalid TALLY_* environment:", err)
	}
}

// openBook is the central function to open the book from the app book directory.
func openBook() (*tallybook.Book, error) {
	dir := config.Book
	if *bookDir != "" {
		dir = *bookDir
	}
	return tallybook.Open(tallybook.DirGateway{Dir: dir}, tallybook.Options{
		Currency: config.Currency,
		Owner:    config.Owner,
	})
}

// money builds a Money in the configured currency.
func money(v float64) tallybook.Money { return tallybook.M(v, config.Currency) }

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parsePeriod builds a period from -from/-to flag values. An empty pair
// defaults to the current month.
func parsePeriod(from, to string) (tallybook.Period, error) {
	if from == "" && to == "" {
		return tallybook.MonthOf(tallybook.Today()), nil
	}
	start, err := tallybook.ParseDate(from)
	if err != nil {
		return tallybook.Period{}, err
	}
	end, err := tallybook.ParseDate(to)
	if err != nil {
		return tallybook.Period{}, err
	}
	return tallybook.NewPeriod(start, end), nil
}

// parseDate parses a -date flag value, defaulting to today when empty.
func parseDate(s string) (tallybook.Date, error) {
	if s == "" {
		return tallybook.Today(), nil
	}
	return tallybook.ParseDate(s)
}

// fail prints the error and returns; commands use it to keep Execute bodies short.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
}
