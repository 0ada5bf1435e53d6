package tallybook

// Pure financial computations. Nothing here touches the store or the
// gateway; every function derives a value from the records it is given.

// monthDays is the fixed month length used for salary proration. Salaries
// are quoted per month and prorated on a 30-day month, whatever the
// calendar says.
const monthDays = 30

// ProratedSalary returns the salary earned over a period from a monthly
// rate: (days / 30) x monthly, exact.
func ProratedSalary(monthly Money, period Period) Money {
	return monthly.Prorate(period.Days(), monthDays)
}

// AdvancesIn sums the employee's advances dated inside the period,
// boundaries included.
func AdvancesIn(e *Employee, period Period) Money {
	var total Money
	for _, a := range e.Advances {
		if period.Contains(a.Date) {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// PaymentsContained returns the salary payments whose own period is fully
// contained in the given one. A payment straddling a boundary is excluded
// entirely; partial overlap never counts.
func PaymentsContained(e *Employee, period Period) []SalaryPayment {
	var out []SalaryPayment
	for _, p := range e.SalaryHistory {
		if period.Covers(p.Period) {
			out = append(out, p)
		}
	}
	return out
}

// CurrentBalance is what the books owe the employee as of a date: salary
// earned from the join date, minus everything paid, minus every advance.
func CurrentBalance(e *Employee, asOf Date) Money {
	if asOf.Before(e.JoinDate) {
		return M(0, e.MonthlySalary.Currency())
	}
	earned := ProratedSalary(e.MonthlySalary, Period{Start: e.JoinDate, End: asOf})
	return earned.Sub(e.TotalPaid()).Sub(e.TotalAdvances())
}

// ProjectTotalPaid sums every payment received against the project contract.
func ProjectTotalPaid(p *Project) Money {
	return sumMoney(p.Payments, func(pay ProjectPayment) Money { return pay.Amount })
}

// ProjectBalance is the contract amount minus everything received. An
// overpaid project has a negative balance; that is information, not an error.
func ProjectBalance(p *Project) Money {
	return p.ContractAmount.Sub(ProjectTotalPaid(p))
}

// ClientTotals aggregates a client's projects: total contracted, total
// received, and the remaining balance.
func ClientTotals(c *Client) (contracted, paid, balance Money) {
	for _, p := range c.Projects {
		contracted = contracted.Add(p.ContractAmount)
		paid = paid.Add(ProjectTotalPaid(p))
	}
	return contracted, paid, contracted.Sub(paid)
}

// AccountTotals aggregates the personal account: the sum still pending
// reimbursement, the sum already settled, and the net position summed over
// every transaction whatever its status. A positive net is money the books
// owe the owner.
func AccountTotals(a *AccountBalance) (pending, reimbursed, net Money) {
	for _, tx := range a.Transactions {
		net = net.Add(tx.Amount)
		switch tx.Status {
		case TxPending:
			pending = pending.Add(tx.Amount)
		case TxReimbursed:
			reimbursed = reimbursed.Add(tx.Amount)
		}
	}
	return pending, reimbursed, net
}
