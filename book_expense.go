package tallybook

import "time"

// Expense and expense-report operations. Reports hold references to
// expenses, never copies; a report total is recomputed from the referenced
// expenses whenever its membership changes.

// ExpensesOf returns the expenses owned by this company, in insertion order.
func (b *Book) ExpensesOf(companyID ID) ([]*Expense, error) {
	c, err := b.companies.Get(companyID)
	if err != nil {
		return nil, err
	}
	return b.expenses.Filter(func(id ID) bool { return c.Owns(KindExpense, id) }), nil
}

// Expense returns the expense with this identifier, regardless of company.
func (b *Book) Expense(id ID) (*Expense, error) { return b.expenses.Get(id) }

// AddExpense creates an expense under a company.
func (b *Book) AddExpense(companyID ID, x *Expense) error {
	if x.Title == "" {
		return invalidf("expense title is required")
	}
	if !x.Amount.IsPositive() {
		return invalidf("expense amount must be positive")
	}
	if x.Date.IsZero() {
		return invalidf("expense date is required")
	}
	if _, err := b.companies.Get(companyID); err != nil {
		return err
	}
	if x.Status == "" {
		x.Status = Pending
	}
	if _, err := b.expenses.Create(x); err != nil {
		return err
	}
	if err := b.attach(companyID, KindExpense, x.ID); err != nil {
		return err
	}
	return b.saveExpenses()
}

// UpdateExpense replaces a stored expense.
func (b *Book) UpdateExpense(x *Expense) error {
	if x.Title == "" {
		return invalidf("expense title is required")
	}
	if err := b.expenses.Update(x); err != nil {
		return err
	}
	return b.saveExpenses()
}

// DeleteExpense removes an expense, detaches it from its company, and drops
// the reference from any report that carried it, recomputing that report's
// total.
func (b *Book) DeleteExpense(id ID) error {
	if err := b.expenses.Delete(id); err != nil {
		return err
	}
	if err := b.detach(KindExpense, id); err != nil {
		return err
	}
	reportsTouched := false
	for _, r := range b.reports.List() {
		for i, ref := range r.ExpenseIDs {
			if ref == id {
				r.ExpenseIDs = append(r.ExpenseIDs[:i], r.ExpenseIDs[i+1:]...)
				r.Total = b.reportTotal(r)
				if err := b.reports.Update(r); err != nil {
					return err
				}
				reportsTouched = true
				break
			}
		}
	}
	if reportsTouched {
		if err := b.saveReports(); err != nil {
			return err
		}
	}
	return b.saveExpenses()
}

// ApproveExpense approves a pending expense.
func (b *Book) ApproveExpense(id ID, by string) error {
	x, err := b.expenses.Get(id)
	if err != nil {
		return err
	}
	if err := x.Approve(by); err != nil {
		return err
	}
	if err := b.expenses.Update(x); err != nil {
		return err
	}
	return b.saveExpenses()
}

// RejectExpense rejects a pending expense.
func (b *Book) RejectExpense(id ID, by string) error {
	x, err := b.expenses.Get(id)
	if err != nil {
		return err
	}
	if err := x.Reject(by); err != nil {
		return err
	}
	if err := b.expenses.Update(x); err != nil {
		return err
	}
	return b.saveExpenses()
}

// ReimburseExpense marks an approved expense reimbursed on a date, and
// settles any pending personal-account transaction that references it.
func (b *Book) ReimburseExpense(id ID, on Date) error {
	x, err := b.expenses.Get(id)
	if err != nil {
		return err
	}
	if err := x.MarkReimbursed(on); err != nil {
		return err
	}
	if err := b.expenses.Update(x); err != nil {
		return err
	}
	if err := b.saveExpenses(); err != nil {
		return err
	}
	for i := range b.account.Transactions {
		tx := &b.account.Transactions[i]
		if tx.RelatedExpenseID == id && tx.Status == TxPending {
			if err := b.account.UpdateStatus(tx.ID, TxReimbursed, on); err != nil {
				return err
			}
			return b.saveAccount()
		}
	}
	return nil
}

// reportTotal sums the amounts of the expenses a report references. A
// dangling reference contributes nothing.
func (b *Book) reportTotal(r *ExpenseReport) Money {
	total := b.money(0)
	for _, id := range r.ExpenseIDs {
		if x, err := b.expenses.Get(id); err == nil {
			total = total.Add(x.Amount)
		}
	}
	return total
}

// ReportsOf returns the expense reports owned by this company.
func (b *Book) ReportsOf(companyID ID) ([]*ExpenseReport, error) {
	c, err := b.companies.Get(companyID)
	if err != nil {
		return nil, err
	}
	return b.reports.Filter(func(id ID) bool { return c.Owns(KindExpenseReport, id) }), nil
}

// Report returns the expense report with this identifier.
func (b *Book) Report(id ID) (*ExpenseReport, error) { return b.reports.Get(id) }

// AddReport creates a pending expense report under a company, bundling the
// given expense references. Every reference must resolve, and the report
// total is computed from them at creation.
func (b *Book) AddReport(companyID ID, title string, period Period, employeeID ID, expenseIDs []ID) (*ExpenseReport, error) {
	if title == "" {
		return nil, invalidf("report title is required")
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if _, err := b.companies.Get(companyID); err != nil {
		return nil, err
	}
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return nil, err
	}
	for _, id := range expenseIDs {
		if _, err := b.expenses.Get(id); err != nil {
			return nil, err
		}
	}
	r := &ExpenseReport{
		ID:         NewID(),
		Title:      title,
		Period:     period,
		EmployeeID: employeeID,
		Employee:   e.Name,
		ExpenseIDs: expenseIDs,
		Status:     Pending,
		Submitted:  time.Now().UTC().Truncate(time.Second),
	}
	r.Total = b.reportTotal(r)
	if _, err := b.reports.Create(r); err != nil {
		return nil, err
	}
	if err := b.attach(companyID, KindExpenseReport, r.ID); err != nil {
		return nil, err
	}
	return r, b.saveReports()
}

// DeleteReport removes an expense report. The referenced expenses are
// untouched.
func (b *Book) DeleteReport(id ID) error {
	if err := b.reports.Delete(id); err != nil {
		return err
	}
	if err := b.detach(KindExpenseReport, id); err != nil {
		return err
	}
	return b.saveReports()
}

// ApproveReport approves a pending report. Its expenses keep their own
// statuses; report approval never cascades.
func (b *Book) ApproveReport(id ID, by string, on Date) error {
	r, err := b.reports.Get(id)
	if err != nil {
		return err
	}
	if err := r.Approve(by, on); err != nil {
		return err
	}
	if err := b.reports.Update(r); err != nil {
		return err
	}
	return b.saveReports()
}

// RejectReport rejects a pending report.
func (b *Book) RejectReport(id ID, by string, on Date) error {
	r, err := b.reports.Get(id)
	if err != nil {
		return err
	}
	if err := r.Reject(by, on); err != nil {
		return err
	}
	if err := b.reports.Update(r); err != nil {
		return err
	}
	return b.saveReports()
}

// ReimburseReport marks an approved report reimbursed.
func (b *Book) ReimburseReport(id ID, on Date, method PaymentMethod, reference string) error {
	r, err := b.reports.Get(id)
	if err != nil {
		return err
	}
	if err := r.MarkReimbursed(on, method, reference); err != nil {
		return err
	}
	if err := b.reports.Update(r); err != nil {
		return err
	}
	return b.saveReports()
}

// AddExpenseToReport adds an expense reference to a report and recomputes
// its total. Adding a reference the report already holds is a no-op.
func (b *Book) AddExpenseToReport(reportID, expenseID ID) error {
	r, err := b.reports.Get(reportID)
	if err != nil {
		return err
	}
	if _, err := b.expenses.Get(expenseID); err != nil {
		return err
	}
	for _, ref := range r.ExpenseIDs {
		if ref == expenseID {
			return nil
		}
	}
	r.ExpenseIDs = append(r.ExpenseIDs, expenseID)
	r.Total = b.reportTotal(r)
	if err := b.reports.Update(r); err != nil {
		return err
	}
	return b.saveReports()
}

// RemoveExpenseFromReport drops an expense reference from a report and
// recomputes its total.
func (b *Book) RemoveExpenseFromReport(reportID, expenseID ID) error {
	r, err := b.reports.Get(reportID)
	if err != nil {
		return err
	}
	for i, ref := range r.ExpenseIDs {
		if ref == expenseID {
			r.ExpenseIDs = append(r.ExpenseIDs[:i], r.ExpenseIDs[i+1:]...)
			r.Total = b.reportTotal(r)
			if err := b.reports.Update(r); err != nil {
				return err
			}
			return b.saveReports()
		}
	}
	return notFoundf("expense %s on report %q", expenseID.Short(), r.Title)
}
