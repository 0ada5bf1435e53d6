package tallybook

import (
	"errors"
	"testing"
)

func TestAddExpensePersonal(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	x := NewExpense("Server", "yearly hosting", USD(120), Software, MustParseDate("2025-02-01"))
	txID, err := b.AddExpensePersonal(company, x)
	if err != nil {
		t.Fatal(err)
	}

	// One expense in the company's books, one pending transaction linked to it.
	expenses, _ := b.ExpensesOf(company)
	if len(expenses) != 1 {
		t.Fatalf("expenses = %d, want 1", len(expenses))
	}
	if expenses[0].PaidBy != "Owner" {
		t.Errorf("paid by = %q, want the account owner", expenses[0].PaidBy)
	}
	tx := b.Account().Transaction(txID)
	if tx == nil {
		t.Fatal("transaction not recorded")
	}
	if tx.Status != TxPending || tx.RelatedExpenseID != x.ID || !tx.Amount.Equal(USD(120)) {
		t.Errorf("transaction = %+v", tx)
	}

	// Reimbursing the expense settles the linked transaction.
	if err := b.ApproveExpense(x.ID, "boss"); err != nil {
		t.Fatal(err)
	}
	on := MustParseDate("2025-02-15")
	if err := b.ReimburseExpense(x.ID, on); err != nil {
		t.Fatal(err)
	}
	tx = b.Account().Transaction(txID)
	if tx.Status != TxReimbursed || tx.ReimbursementDate != on {
		t.Errorf("transaction after reimbursement = %+v", tx)
	}
}

func TestTransactionTerminalStates(t *testing.T) {
	b := newTestBook(t)
	id, err := b.AddTransaction(AccountTransaction{
		Date: MustParseDate("2025-01-01"), Amount: USD(50), Type: OtherTx,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.UpdateTransactionStatus(id, TxCancelled, Date{}); err != nil {
		t.Fatal(err)
	}
	// Cancelled is terminal.
	if err := b.UpdateTransactionStatus(id, TxReimbursed, MustParseDate("2025-01-02")); !errors.Is(err, ErrValidation) {
		t.Errorf("transition out of cancelled: got %v, want a validation error", err)
	}
	// A pending transaction cannot transition to pending.
	id2, _ := b.AddTransaction(AccountTransaction{Date: MustParseDate("2025-01-01"), Amount: USD(10), Type: OtherTx})
	if err := b.UpdateTransactionStatus(id2, TxPending, Date{}); !errors.Is(err, ErrValidation) {
		t.Errorf("transition to pending: got %v, want a validation error", err)
	}
}

func TestRecordReimbursement(t *testing.T) {
	b := newTestBook(t)
	id, err := b.RecordReimbursement(USD(75), MustParseDate("2025-03-01"), BankTransfer, "TX-9", "")
	if err != nil {
		t.Fatal(err)
	}
	tx := b.Account().Transaction(id)
	if !tx.Amount.Equal(USD(-75)) {
		t.Errorf("amount = %s, want -75", tx.Amount)
	}
	if tx.Type != CompanyReimbursementTx || tx.Status != TxReimbursed {
		t.Errorf("transaction = %+v", tx)
	}
	if _, err := b.RecordReimbursement(USD(-5), MustParseDate("2025-03-01"), Cash, "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("negative reimbursement: got %v, want a validation error", err)
	}
}

func TestAccountStatement(t *testing.T) {
	b := newTestBook(t)
	dates := []string{"2025-01-05", "2025-01-20", "2025-02-10"}
	for _, d := range dates {
		if _, err := b.AddTransaction(AccountTransaction{Date: MustParseDate(d), Amount: USD(10), Type: OtherTx}); err != nil {
			t.Fatal(err)
		}
	}
	january := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	got, err := b.AccountStatement(january)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("statement = %d transactions, want 2", len(got))
	}
	// Most recent first.
	if got[0].Date != MustParseDate("2025-01-20") || got[1].Date != MustParseDate("2025-01-05") {
		t.Errorf("order = %s, %s", got[0].Date, got[1].Date)
	}
}

func TestSalaryPaymentTracked(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(company, e); err != nil {
		t.Fatal(err)
	}
	january := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	p := SalaryPayment{
		Amount: USD(2900), Bonuses: USD(200), Deductions: USD(100),
		Date: MustParseDate("2025-01-31"), Period: january, ProcessedBy: "Owner",
	}
	if _, err := b.AddSalaryPaymentTracked(company, e.ID, p, true); err != nil {
		t.Fatal(err)
	}

	// The payment is on the employee.
	e2, _ := b.Employee(e.ID)
	if len(e2.SalaryHistory) != 1 {
		t.Fatalf("salary history = %d, want 1", len(e2.SalaryHistory))
	}

	// The net left the company as a salaries expense, already settled.
	expenses, _ := b.ExpensesOf(company)
	if len(expenses) != 1 {
		t.Fatalf("expenses = %d, want 1", len(expenses))
	}
	if expenses[0].Category != Salaries || expenses[0].Status != Reimbursed {
		t.Errorf("expense = %+v", expenses[0])
	}
	if !expenses[0].Amount.Equal(USD(3000)) {
		t.Errorf("expense amount = %s, want the 3000 net", expenses[0].Amount)
	}

	// The owner fronted the money: a pending transaction tracks it,
	// referencing both the employee and the salary expense.
	txs := b.Account().Transactions
	if len(txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs))
	}
	if txs[0].Type != SalaryPaymentTx || txs[0].RelatedEmployeeID != e.ID || txs[0].Status != TxPending {
		t.Errorf("transaction = %+v", txs[0])
	}
	if txs[0].RelatedExpenseID != expenses[0].ID {
		t.Errorf("related expense = %q, want the salary expense %q", txs[0].RelatedExpenseID, expenses[0].ID)
	}
}
