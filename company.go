package tallybook

import (
	"slices"
	"time"
)

// Kind names a persisted entity collection. It doubles as the persistence
// gateway's collection name.
type Kind string

const (
	KindCompany         Kind = "companies"
	KindEmployee        Kind = "employees"
	KindClient          Kind = "clients"
	KindSalarySlip      Kind = "salary-slips"
	KindClientStatement Kind = "client-statements"
	KindExpense         Kind = "expenses"
	KindExpenseReport   Kind = "expense-reports"
	KindAccount         Kind = "account"
	KindSettings        Kind = "settings"
)

// ownedKinds are the kinds a company keeps an owned-identifier set for.
var ownedKinds = []Kind{
	KindEmployee, KindClient, KindSalarySlip,
	KindClientStatement, KindExpense, KindExpenseReport,
}

// Company is a tenant: the entity identifiers it claims define what is
// visible when it is the active company. The owned sets are weak references
// into the entity store; they never imply lifetime.
type Company struct {
	ID      ID        `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	Logo    string    `json:"logo,omitempty"`
	Active  bool      `json:"active"`
	Created time.Time `json:"created"`

	EmployeeIDs        []ID `json:"employeeIds,omitempty"`
	ClientIDs          []ID `json:"clientIds,omitempty"`
	SalarySlipIDs      []ID `json:"salarySlipIds,omitempty"`
	ClientStatementIDs []ID `json:"clientStatementIds,omitempty"`
	ExpenseIDs         []ID `json:"expenseIds,omitempty"`
	ExpenseReportIDs   []ID `json:"expenseReportIds,omitempty"`
}

// NewCompany creates a company with a fresh identifier and no owned entities.
func NewCompany(name, address, phone, email string) *Company {
	return &Company{
		ID:      NewID(),
		Name:    name,
		Address: address,
		Phone:   phone,
		Email:   email,
		Active:  true,
		Created: time.Now().UTC().Truncate(time.Second),
	}
}

// owned returns the owned-identifier set for a kind, or nil for kinds a
// company does not track.
func (c *Company) owned(kind Kind) *[]ID {
	switch kind {
	case KindEmployee:
		return &c.EmployeeIDs
	case KindClient:
		return &c.ClientIDs
	case KindSalarySlip:
		return &c.SalarySlipIDs
	case KindClientStatement:
		return &c.ClientStatementIDs
	case KindExpense:
		return &c.ExpenseIDs
	case KindExpenseReport:
		return &c.ExpenseReportIDs
	default:
		return nil
	}
}

// Owns reports whether the company claims the identifier for the given kind.
func (c *Company) Owns(kind Kind, id ID) bool {
	set := c.owned(kind)
	return set != nil && slices.Contains(*set, id)
}

// Attach adds an identifier to the company's owned set for a kind. Attaching
// an already-owned identifier is a no-op.
func (c *Company) Attach(kind Kind, id ID) {
	set := c.owned(kind)
	if set == nil || slices.Contains(*set, id) {
		return
	}
	*set = append(*set, id)
}

// Detach removes an identifier from the company's owned set for a kind.
// Detaching an unowned identifier is a no-op.
func (c *Company) Detach(kind Kind, id ID) {
	set := c.owned(kind)
	if set == nil {
		return
	}
	if i := slices.Index(*set, id); i >= 0 {
		*set = slices.Delete(*set, i, i+1)
	}
}
