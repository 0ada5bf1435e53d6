package tallybook

import (
	"fmt"
	"sort"
)

// Personal-funds operations. The single personal account records money the
// owner moved on a company's behalf; its linker operations create the
// business record and the matching account transaction in one logical step.

// Account returns the personal account.
func (b *Book) Account() *AccountBalance { return b.account }

// AddTransaction appends a transaction to the personal account. The
// identifier is assigned here if missing, and the status defaults to pending.
func (b *Book) AddTransaction(tx AccountTransaction) (ID, error) {
	if tx.Amount.IsZero() {
		return "", invalidf("transaction amount cannot be zero")
	}
	if tx.Date.IsZero() {
		return "", invalidf("transaction date is required")
	}
	if tx.ID.IsZero() {
		tx.ID = NewID()
	}
	if tx.Type == "" {
		tx.Type = OtherTx
	}
	if tx.Status == "" {
		tx.Status = TxPending
	}
	b.account.Add(tx)
	return tx.ID, b.saveAccount()
}

// UpdateTransactionStatus transitions a pending transaction to reimbursed or
// cancelled.
func (b *Book) UpdateTransactionStatus(id ID, status TransactionStatus, reimbursed Date) error {
	if err := b.account.UpdateStatus(id, status, reimbursed); err != nil {
		return err
	}
	return b.saveAccount()
}

// AccountStatement returns the account transactions dated inside the period,
// most recent first.
func (b *Book) AccountStatement(period Period) ([]AccountTransaction, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	var out []AccountTransaction
	for _, tx := range b.account.Transactions {
		if period.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out, nil
}

// RecordReimbursement records money the company paid back to the owner, as a
// negative-amount transaction that is already settled.
func (b *Book) RecordReimbursement(amount Money, on Date, method PaymentMethod, reference, notes string) (ID, error) {
	if !amount.IsPositive() {
		return "", invalidf("reimbursement amount must be positive")
	}
	tx := AccountTransaction{
		ID:                NewID(),
		Date:              on,
		Amount:            amount.Neg(),
		Description:       "company reimbursement",
		Type:              CompanyReimbursementTx,
		Status:            TxReimbursed,
		ReimbursementDate: on,
		Method:            method,
		Reference:         reference,
		Notes:             notes,
	}
	b.account.Add(tx)
	return tx.ID, b.saveAccount()
}

// AddExpensePersonal creates a company expense paid from the owner's
// personal funds: one expense record plus one pending account transaction
// referencing it. The expense follows the normal approval workflow; when it
// is reimbursed, the transaction settles with it.
func (b *Book) AddExpensePersonal(companyID ID, x *Expense) (ID, error) {
	x.PaidBy = b.account.Owner
	if err := b.AddExpense(companyID, x); err != nil {
		return "", err
	}
	tx := AccountTransaction{
		ID:               NewID(),
		Date:             x.Date,
		Amount:           x.Amount,
		Description:      x.Title,
		Type:             ExpensePaymentTx,
		RelatedExpenseID: x.ID,
		Status:           TxPending,
	}
	b.account.Add(tx)
	return tx.ID, b.saveAccount()
}

// recordSalaryExpense books a salary payment as a company expense in the
// salaries category, already approved and reimbursed: the money left on the
// payment date.
func (b *Book) recordSalaryExpense(companyID ID, e *Employee, amount Money, on Date, processedBy string) (*Expense, error) {
	x := NewExpense(
		fmt.Sprintf("Salary - %s", e.Name),
		fmt.Sprintf("Salary payment for %s", e.Name),
		amount, Salaries, on,
	)
	x.PaidBy = processedBy
	x.PaidByEmployeeID = e.ID
	x.Status = Reimbursed
	x.ReimbursementDate = on
	return x, b.AddExpense(companyID, x)
}

// AddSalaryPaymentTracked records a salary instalment and its company-side
// trail in one step: the payment on the employee, a salaries-category
// expense under the company, and a pending personal-account transaction
// when the owner fronted the money.
func (b *Book) AddSalaryPaymentTracked(companyID, employeeID ID, p SalaryPayment, personal bool) (ID, error) {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return "", err
	}
	payID, err := b.AddSalaryPayment(employeeID, p)
	if err != nil {
		return "", err
	}
	net := p.Amount.Add(p.Bonuses).Sub(p.Deductions)
	x, err := b.recordSalaryExpense(companyID, e, net, p.Date, p.ProcessedBy)
	if err != nil {
		return "", err
	}
	if personal {
		tx := AccountTransaction{
			ID:                NewID(),
			Date:              p.Date,
			Amount:            net,
			Description:       fmt.Sprintf("Salary - %s", e.Name),
			Type:              SalaryPaymentTx,
			RelatedExpenseID:  x.ID,
			RelatedEmployeeID: e.ID,
			Status:            TxPending,
		}
		b.account.Add(tx)
		if err := b.saveAccount(); err != nil {
			return "", err
		}
	}
	return payID, nil
}
