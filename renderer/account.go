package renderer

import (
	"fmt"
	"strings"

	"github.com/tallybook/tallybook"
)

// AccountMarkdown generates a markdown statement of the personal account:
// the period's transactions, most recent first, and the running totals.
func AccountMarkdown(a *tallybook.AccountBalance, period tallybook.Period, txs []tallybook.AccountTransaction) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("# Personal Account: %s\n\n", a.Owner)
	r.Printf("Period: %s\n\n", period)

	if len(txs) == 0 {
		r.Printf("No transaction in this period.\n\n")
	} else {
		r.Printf("| Date | Description | Type | Status | Amount |\n")
		r.Printf("|:---|:---|:---|:---|---:|\n")
		for _, tx := range txs {
			desc := tx.Description
			if desc == "" {
				desc = string(tx.Type)
			}
			r.Printf("| %s | %s | %s | %s | %s |\n", tx.Date, desc, tx.Type, tx.Status, tx.Amount.SignedString())
		}
		r.Printf("\n")
	}

	pending, reimbursed, net := tallybook.AccountTotals(a)
	r.Printf("| | Amount |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Pending | %s |\n", pending)
	r.Printf("| Settled | %s |\n", reimbursed)
	r.Printf("| **Net Owed** | **%s** |\n", net)
	return r.String()
}

// BalanceLine is a one-line summary of what the books owe an employee.
func BalanceLine(e *tallybook.Employee, asOf tallybook.Date) string {
	return fmt.Sprintf("%s: %s owed as of %s", e.Name, tallybook.CurrentBalance(e, asOf), asOf)
}
