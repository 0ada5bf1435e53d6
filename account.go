package tallybook

import "time"

// TransactionType tells which flow produced a personal-account transaction.
type TransactionType string

const (
	SalaryPaymentTx        TransactionType = "salary-payment"
	ExpensePaymentTx       TransactionType = "expense-payment"
	CompanyReimbursementTx TransactionType = "company-reimbursement"
	PersonalDepositTx      TransactionType = "personal-deposit"
	OtherTx                TransactionType = "other"
)

// TransactionStatus is the reimbursement state of a personal-account
// transaction: pending -> reimbursed or pending -> cancelled, both terminal.
type TransactionStatus string

const (
	TxPending    TransactionStatus = "pending"
	TxReimbursed TransactionStatus = "reimbursed"
	TxCancelled  TransactionStatus = "cancelled"
)

// AccountTransaction records personal money moving on the company's behalf.
// A positive amount is money the owner spent and awaits reimbursement for; a
// negative amount is a reimbursement received.
type AccountTransaction struct {
	ID          ID              `json:"id"`
	Date        Date            `json:"date"`
	Amount      Money           `json:"amount"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type"`

	// Non-owning references, resolved by lookup.
	RelatedExpenseID  ID `json:"relatedExpenseId,omitempty"`
	RelatedEmployeeID ID `json:"relatedEmployeeId,omitempty"`

	Status            TransactionStatus `json:"status"`
	ReimbursementDate Date              `json:"reimbursementDate"`
	Method            PaymentMethod     `json:"method,omitempty"`
	Reference         string            `json:"reference,omitempty"`
	Notes             string            `json:"notes,omitempty"`
}

// AccountBalance is the personal-funds reconciliation ledger: an append-only
// list of transactions whose net sum is what the books owe the owner.
type AccountBalance struct {
	ID           ID                   `json:"id"`
	Owner        string               `json:"owner"`
	Transactions []AccountTransaction `json:"transactions,omitempty"`
	LastUpdated  time.Time            `json:"lastUpdated"`
}

// NewAccountBalance creates an empty personal account.
func NewAccountBalance(owner string) *AccountBalance {
	return &AccountBalance{ID: NewID(), Owner: owner, LastUpdated: time.Now().UTC().Truncate(time.Second)}
}

func (a *AccountBalance) touch() { a.LastUpdated = time.Now().UTC().Truncate(time.Second) }

// Add appends a transaction and bumps the account's last-updated timestamp.
func (a *AccountBalance) Add(tx AccountTransaction) {
	a.Transactions = append(a.Transactions, tx)
	a.touch()
}

// Transaction returns a pointer to the transaction with this identifier, or nil.
func (a *AccountBalance) Transaction(id ID) *AccountTransaction {
	for i := range a.Transactions {
		if a.Transactions[i].ID == id {
			return &a.Transactions[i]
		}
	}
	return nil
}

// UpdateStatus transitions a pending transaction to reimbursed or cancelled.
// Both destinations are terminal; there is no way back.
func (a *AccountBalance) UpdateStatus(id ID, status TransactionStatus, reimbursed Date) error {
	tx := a.Transaction(id)
	if tx == nil {
		return notFoundf("transaction %s", id.Short())
	}
	if tx.Status != TxPending {
		return invalidf("transaction %s is %s, a terminal status", id.Short(), tx.Status)
	}
	switch status {
	case TxReimbursed:
		tx.Status = TxReimbursed
		tx.ReimbursementDate = reimbursed
	case TxCancelled:
		tx.Status = TxCancelled
	default:
		return invalidf("cannot transition a pending transaction to %q", status)
	}
	a.touch()
	return nil
}
