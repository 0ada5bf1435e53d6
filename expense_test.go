package tallybook

import (
	"errors"
	"testing"
)

func pendingExpense() *Expense {
	return NewExpense("Taxi", "airport run", USD(45), Travel, MustParseDate("2025-03-01"))
}

func TestExpenseWorkflow(t *testing.T) {
	x := pendingExpense()
	if x.Status != Pending {
		t.Fatalf("new expense is %s, want pending", x.Status)
	}
	if err := x.Approve("boss"); err != nil {
		t.Fatal(err)
	}
	if x.Status != Approved || x.ApprovedBy != "boss" {
		t.Errorf("after approve: %s by %q", x.Status, x.ApprovedBy)
	}
	// Approving twice is illegal.
	if err := x.Approve("boss"); !errors.Is(err, ErrValidation) {
		t.Errorf("double approve: got %v, want a validation error", err)
	}
	// An approved expense cannot be rejected.
	if err := x.Reject("boss"); !errors.Is(err, ErrValidation) {
		t.Errorf("reject after approve: got %v, want a validation error", err)
	}
	on := MustParseDate("2025-03-10")
	if err := x.MarkReimbursed(on); err != nil {
		t.Fatal(err)
	}
	if x.Status != Reimbursed || x.ReimbursementDate != on {
		t.Errorf("after reimburse: %s on %s", x.Status, x.ReimbursementDate)
	}
	// Re-marking a reimbursed expense is an idempotent success.
	later := MustParseDate("2025-03-15")
	if err := x.MarkReimbursed(later); err != nil {
		t.Errorf("idempotent reimburse: %v", err)
	}
	if x.ReimbursementDate != later {
		t.Errorf("reimbursement date = %s, want %s", x.ReimbursementDate, later)
	}
}

func TestExpenseRejection(t *testing.T) {
	x := pendingExpense()
	if err := x.Reject("boss"); err != nil {
		t.Fatal(err)
	}
	if x.Status != Rejected || x.ApprovedBy != "boss" {
		t.Errorf("after reject: %s by %q", x.Status, x.ApprovedBy)
	}
	// A rejected expense is terminal.
	if err := x.Approve("boss"); !errors.Is(err, ErrValidation) {
		t.Errorf("approve after reject: got %v, want a validation error", err)
	}
	if err := x.MarkReimbursed(MustParseDate("2025-03-10")); !errors.Is(err, ErrValidation) {
		t.Errorf("reimburse after reject: got %v, want a validation error", err)
	}
	// A pending expense cannot be reimbursed directly.
	y := pendingExpense()
	if err := y.MarkReimbursed(MustParseDate("2025-03-10")); !errors.Is(err, ErrValidation) {
		t.Errorf("reimburse while pending: got %v, want a validation error", err)
	}
}

func TestReportMembership(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(company, e); err != nil {
		t.Fatal(err)
	}
	x1 := pendingExpense()
	x2 := NewExpense("Hotel", "", USD(200), Accommodation, MustParseDate("2025-03-02"))
	for _, x := range []*Expense{x1, x2} {
		if err := b.AddExpense(company, x); err != nil {
			t.Fatal(err)
		}
	}
	march := NewPeriod(MustParseDate("2025-03-01"), MustParseDate("2025-03-31"))
	r, err := b.AddReport(company, "March travel", march, e.ID, []ID{x1.ID})
	if err != nil {
		t.Fatal(err)
	}
	if !r.Total.Equal(USD(45)) {
		t.Errorf("report total = %s, want 45", r.Total)
	}
	if r.Employee != "Ann" {
		t.Errorf("report employee = %q", r.Employee)
	}

	if err := b.AddExpenseToReport(r.ID, x2.ID); err != nil {
		t.Fatal(err)
	}
	if r, _ = b.Report(r.ID); !r.Total.Equal(USD(245)) {
		t.Errorf("total after add = %s, want 245", r.Total)
	}
	// Adding a reference already on the report is a no-op.
	if err := b.AddExpenseToReport(r.ID, x2.ID); err != nil {
		t.Fatal(err)
	}
	if r, _ = b.Report(r.ID); len(r.ExpenseIDs) != 2 {
		t.Errorf("references = %d, want 2", len(r.ExpenseIDs))
	}

	if err := b.RemoveExpenseFromReport(r.ID, x1.ID); err != nil {
		t.Fatal(err)
	}
	if r, _ = b.Report(r.ID); !r.Total.Equal(USD(200)) {
		t.Errorf("total after remove = %s, want 200", r.Total)
	}

	// Deleting a referenced expense drops the reference and recomputes.
	if err := b.DeleteExpense(x2.ID); err != nil {
		t.Fatal(err)
	}
	if r, _ = b.Report(r.ID); len(r.ExpenseIDs) != 0 || !r.Total.IsZero() {
		t.Errorf("after expense delete: refs=%d total=%s", len(r.ExpenseIDs), r.Total)
	}
}

func TestReportStatusNeverCascades(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(company, e); err != nil {
		t.Fatal(err)
	}
	x := pendingExpense()
	if err := b.AddExpense(company, x); err != nil {
		t.Fatal(err)
	}
	march := NewPeriod(MustParseDate("2025-03-01"), MustParseDate("2025-03-31"))
	r, err := b.AddReport(company, "March travel", march, e.ID, []ID{x.ID})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.ApproveReport(r.ID, "boss", MustParseDate("2025-04-01")); err != nil {
		t.Fatal(err)
	}
	got, _ := b.Expense(x.ID)
	if got.Status != Pending {
		t.Errorf("expense status = %s after report approval, want pending", got.Status)
	}
	if err := b.ReimburseReport(r.ID, MustParseDate("2025-04-05"), BankTransfer, "TX-1"); err != nil {
		t.Fatal(err)
	}
	got, _ = b.Expense(x.ID)
	if got.Status != Pending {
		t.Errorf("expense status = %s after report reimbursement, want pending", got.Status)
	}
}
