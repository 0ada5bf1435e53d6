package tallybook

import "time"

// SalarySlip is an immutable snapshot of an employee's pay for a period.
// It is created only by the report generator and never edited afterwards,
// except by direct replacement.
type SalarySlip struct {
	ID         ID        `json:"id"`
	Employee   string    `json:"employee"`
	Position   string    `json:"position,omitempty"`
	Period     Period    `json:"period"`
	Base       Money     `json:"base"`
	Bonuses    Money     `json:"bonuses"`
	Deductions Money     `json:"deductions"`
	Advances   Money     `json:"advances"`
	Generated  time.Time `json:"generated"`

	Method      string `json:"method,omitempty"`
	ProcessedBy string `json:"processedBy,omitempty"`
	Reference   string `json:"reference,omitempty"`
	PaymentDate Date   `json:"paymentDate"`
	Notes       string `json:"notes,omitempty"`
}

// TotalEarnings is base plus bonuses.
func (s *SalarySlip) TotalEarnings() Money { return s.Base.Add(s.Bonuses) }

// TotalDeductions is deductions plus advances.
func (s *SalarySlip) TotalDeductions() Money { return s.Deductions.Add(s.Advances) }

// NetSalary is what the employee takes home: (base + bonuses) - (deductions + advances).
func (s *SalarySlip) NetSalary() Money { return s.TotalEarnings().Sub(s.TotalDeductions()) }

// PaymentRecord is a single payment line inside a statement summary.
type PaymentRecord struct {
	ID     ID     `json:"id"`
	Amount Money  `json:"amount"`
	Date   Date   `json:"date"`
	Type   string `json:"type,omitempty"`
}

// ProjectPaymentSummary aggregates one project's payments inside a statement period.
type ProjectPaymentSummary struct {
	ID             ID              `json:"id"`
	Project        string          `json:"project"`
	ContractAmount Money           `json:"contractAmount"`
	PaidAmount     Money           `json:"paidAmount"`
	Payments       []PaymentRecord `json:"payments,omitempty"`
}

// Balance is what remains due on the project contract after the period's payments.
func (p *ProjectPaymentSummary) Balance() Money { return p.ContractAmount.Sub(p.PaidAmount) }

// ClientStatement is an immutable snapshot of a client's project payments
// restricted to a date period. Created only by the report generator.
type ClientStatement struct {
	ID        ID                      `json:"id"`
	Client    string                  `json:"client"`
	Company   string                  `json:"company,omitempty"`
	Period    Period                  `json:"period"`
	Projects  []ProjectPaymentSummary `json:"projects"`
	Generated time.Time               `json:"generated"`
}

// TotalAmount sums the contract amounts of the projects on the statement.
func (s *ClientStatement) TotalAmount() Money {
	return sumMoney(s.Projects, func(p ProjectPaymentSummary) Money { return p.ContractAmount })
}

// TotalPaid sums the in-period payments of the projects on the statement.
func (s *ClientStatement) TotalPaid() Money {
	return sumMoney(s.Projects, func(p ProjectPaymentSummary) Money { return p.PaidAmount })
}

// BalanceDue is the statement-level contract total minus the in-period payments.
func (s *ClientStatement) BalanceDue() Money { return s.TotalAmount().Sub(s.TotalPaid()) }
