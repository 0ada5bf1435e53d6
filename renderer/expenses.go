package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tallybook/tallybook"
)

// ExpensesMarkdown generates a markdown listing of expenses grouped by
// status, pending first since that is what needs acting on.
func ExpensesMarkdown(expenses []*tallybook.Expense) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Expenses\n\n")

	order := []tallybook.ExpenseStatus{
		tallybook.Pending, tallybook.Approved, tallybook.Reimbursed, tallybook.Rejected,
	}
	for _, status := range order {
		ConditionalBlock(r, func(w io.Writer) bool {
			var total tallybook.Money
			found := false
			for _, x := range expenses {
				if x.Status != status {
					continue
				}
				if !found {
					fmt.Fprintf(w, "## %s\n\n", title(string(status)))
					fmt.Fprintf(w, "| Date | Title | Category | Amount |\n")
					fmt.Fprintf(w, "|:---|:---|:---|---:|\n")
					found = true
				}
				fmt.Fprintf(w, "| %s | %s | %s | %s |\n", x.Date, x.Title, x.Category, x.Amount)
				total = total.Add(x.Amount)
			}
			if found {
				fmt.Fprintf(w, "\nTotal: %s\n\n", total)
			}
			return found
		})
	}
	return r.String()
}

// ReportMarkdown generates a markdown view of an expense report and the
// expenses it references. A dangling reference renders as such instead of
// silently disappearing.
func ReportMarkdown(r *tallybook.ExpenseReport, resolve func(tallybook.ID) (*tallybook.Expense, error)) string {
	b := &tableRenderer{Builder: &strings.Builder{}}
	b.Printf("# Expense Report: %s\n\n", r.Title)
	if r.Employee != "" {
		b.Printf("Submitted by %s", r.Employee)
		if !r.Submitted.IsZero() {
			b.Printf(" on %s", tallybook.DateOf(r.Submitted))
		}
		b.Printf(".\n\n")
	}
	b.Printf("Period: %s. Status: %s.\n\n", r.Period, r.Status)

	if len(r.ExpenseIDs) > 0 {
		b.Printf("| Date | Title | Status | Amount |\n")
		b.Printf("|:---|:---|:---|---:|\n")
		for _, id := range r.ExpenseIDs {
			x, err := resolve(id)
			if err != nil {
				b.Printf("| | *missing expense %s* | | |\n", id.Short())
				continue
			}
			b.Printf("| %s | %s | %s | %s |\n", x.Date, x.Title, x.Status, x.Amount)
		}
		b.Printf("\n")
	}
	b.Printf("**Total: %s**\n", r.Total)

	if r.Status == tallybook.Reimbursed {
		b.Printf("\nReimbursed on %s", r.ReimbursementDate)
		if r.ReimbursementMethod != "" {
			b.Printf(" by %s", r.ReimbursementMethod)
		}
		if r.ReimbursementRef != "" {
			b.Printf(" (ref %s)", r.ReimbursementRef)
		}
		b.Printf(".\n")
	}
	return b.String()
}

// tableRenderer formats markdown into a string builder.
type tableRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
