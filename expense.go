package tallybook

import "time"

// ExpenseCategory classifies a company expense.
type ExpenseCategory string

const (
	Travel         ExpenseCategory = "travel"
	Accommodation  ExpenseCategory = "accommodation"
	Meals          ExpenseCategory = "meals"
	Equipment      ExpenseCategory = "equipment"
	Supplies       ExpenseCategory = "supplies"
	Transportation ExpenseCategory = "transportation"
	ClientMeeting  ExpenseCategory = "client-meeting"
	Marketing      ExpenseCategory = "marketing"
	Software       ExpenseCategory = "software"
	Training       ExpenseCategory = "training"
	Salaries       ExpenseCategory = "salaries"
	OtherCategory  ExpenseCategory = "other"
)

// ExpenseStatus is the approval state of an expense or an expense report.
type ExpenseStatus string

const (
	Pending    ExpenseStatus = "pending"
	Approved   ExpenseStatus = "approved"
	Reimbursed ExpenseStatus = "reimbursed"
	Rejected   ExpenseStatus = "rejected"
)

// Expense is money spent on the company's behalf, subject to an approval
// workflow: pending -> approved -> reimbursed, or pending -> rejected.
type Expense struct {
	ID       ID              `json:"id"`
	Title    string          `json:"title"`
	Details  string          `json:"details,omitempty"`
	Amount   Money           `json:"amount"`
	Category ExpenseCategory `json:"category"`
	Date     Date            `json:"date"`

	PaidBy           string `json:"paidBy,omitempty"`
	PaidByEmployeeID ID     `json:"paidByEmployeeId,omitempty"`

	Status ExpenseStatus `json:"status"`
	// ApprovedBy names the actor of the terminal decision: the approver on
	// approval, the rejecter on rejection.
	ApprovedBy        string        `json:"approvedBy,omitempty"`
	ReimbursementDate Date          `json:"reimbursementDate"`
	Method            PaymentMethod `json:"method,omitempty"`
	Reference         string        `json:"reference,omitempty"`
	Notes             string        `json:"notes,omitempty"`
}

// NewExpense creates a pending expense with a fresh identifier.
func NewExpense(title, details string, amount Money, category ExpenseCategory, date Date) *Expense {
	return &Expense{
		ID:       NewID(),
		Title:    title,
		Details:  details,
		Amount:   amount,
		Category: category,
		Date:     date,
		Status:   Pending,
	}
}

// Approve moves a pending expense to approved and records the approver.
func (x *Expense) Approve(by string) error {
	if x.Status != Pending {
		return invalidf("expense %q is %s, only a pending expense can be approved", x.Title, x.Status)
	}
	x.Status = Approved
	x.ApprovedBy = by
	return nil
}

// Reject moves a pending expense to rejected and records the rejecter.
// Rejecting an approved expense is not a legal transition.
func (x *Expense) Reject(by string) error {
	if x.Status != Pending {
		return invalidf("expense %q is %s, only a pending expense can be rejected", x.Title, x.Status)
	}
	x.Status = Rejected
	x.ApprovedBy = by
	return nil
}

// MarkReimbursed moves an approved expense to reimbursed and records the
// date. Re-marking an already reimbursed expense is an idempotent success.
func (x *Expense) MarkReimbursed(on Date) error {
	switch x.Status {
	case Approved, Reimbursed:
		x.Status = Reimbursed
		x.ReimbursementDate = on
		return nil
	default:
		return invalidf("expense %q is %s, only an approved expense can be reimbursed", x.Title, x.Status)
	}
}

// ExpenseReport bundles expense references for an employee over a period.
// The expense identifiers are references, not owned copies; the report's
// status is tracked independently of its expenses' statuses and never
// cascades to them.
type ExpenseReport struct {
	ID         ID     `json:"id"`
	Title      string `json:"title"`
	Period     Period `json:"period"`
	EmployeeID ID     `json:"employeeId"`
	Employee   string `json:"employee,omitempty"`

	ExpenseIDs []ID  `json:"expenseIds,omitempty"`
	Total      Money `json:"total"`

	Status       ExpenseStatus `json:"status"`
	Submitted    time.Time     `json:"submitted"`
	ApprovedBy   string        `json:"approvedBy,omitempty"`
	ApprovalDate Date          `json:"approvalDate"`

	ReimbursementDate   Date          `json:"reimbursementDate"`
	ReimbursementMethod PaymentMethod `json:"reimbursementMethod,omitempty"`
	ReimbursementRef    string        `json:"reimbursementRef,omitempty"`
	Notes               string        `json:"notes,omitempty"`
}

// Approve moves a pending report to approved.
func (r *ExpenseReport) Approve(by string, on Date) error {
	if r.Status != Pending {
		return invalidf("report %q is %s, only a pending report can be approved", r.Title, r.Status)
	}
	r.Status = Approved
	r.ApprovedBy = by
	r.ApprovalDate = on
	return nil
}

// Reject moves a pending report to rejected.
func (r *ExpenseReport) Reject(by string, on Date) error {
	if r.Status != Pending {
		return invalidf("report %q is %s, only a pending report can be rejected", r.Title, r.Status)
	}
	r.Status = Rejected
	r.ApprovedBy = by
	r.ApprovalDate = on
	return nil
}

// MarkReimbursed moves an approved report to reimbursed, recording how the
// money came back. Idempotent on an already reimbursed report.
func (r *ExpenseReport) MarkReimbursed(on Date, method PaymentMethod, reference string) error {
	switch r.Status {
	case Approved, Reimbursed:
		r.Status = Reimbursed
		r.ReimbursementDate = on
		r.ReimbursementMethod = method
		r.ReimbursementRef = reference
		return nil
	default:
		return invalidf("report %q is %s, only an approved report can be reimbursed", r.Title, r.Status)
	}
}
