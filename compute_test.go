package tallybook

import "testing"

func payroll() *Employee {
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	return e
}

func TestProratedSalary(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		// 1st to 31st counts 30 days: a full month earns the full salary.
		{"2025-01-01", "2025-01-31", 3000},
		{"2025-01-01", "2025-01-16", 1500},
		{"2025-02-01", "2025-02-28", 2700},
		{"2025-01-15", "2025-01-15", 0},
	}
	for _, tt := range tests {
		p := NewPeriod(MustParseDate(tt.start), MustParseDate(tt.end))
		got := ProratedSalary(USD(3000), p)
		if !got.Equal(USD(tt.want)) {
			t.Errorf("ProratedSalary(3000, %s) = %s, want %v", p, got, tt.want)
		}
	}
}

func TestAdvancesIn(t *testing.T) {
	e := payroll()
	e.Advances = []SalaryAdvance{
		{ID: NewID(), Amount: USD(500), Date: MustParseDate("2025-01-10")},
		{ID: NewID(), Amount: USD(200), Date: MustParseDate("2025-02-10")},
		{ID: NewID(), Amount: USD(100), Date: MustParseDate("2025-01-31")}, // boundary, included
	}
	p := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	if got := AdvancesIn(e, p); !got.Equal(USD(600)) {
		t.Errorf("AdvancesIn = %s, want 600", got)
	}
}

func TestPaymentsContained(t *testing.T) {
	january := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	e := payroll()
	e.SalaryHistory = []SalaryPayment{
		{ID: NewID(), Amount: USD(1500), Date: MustParseDate("2025-01-16"),
			Period: NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-15"))},
		// Straddles the period boundary: excluded entirely.
		{ID: NewID(), Amount: USD(1500), Date: MustParseDate("2025-02-05"),
			Period: NewPeriod(MustParseDate("2025-01-16"), MustParseDate("2025-02-15"))},
	}
	got := PaymentsContained(e, january)
	if len(got) != 1 || !got[0].Amount.Equal(USD(1500)) {
		t.Errorf("PaymentsContained = %+v, want the single contained payment", got)
	}
}

func TestCurrentBalance(t *testing.T) {
	// One full 30-day month earned, a 500 advance taken: 2500 remains owed.
	e := payroll()
	e.Advances = []SalaryAdvance{
		{ID: NewID(), Amount: USD(500), Date: MustParseDate("2025-01-10")},
	}
	if got := CurrentBalance(e, MustParseDate("2025-01-31")); !got.Equal(USD(2500)) {
		t.Errorf("CurrentBalance = %s, want 2500", got)
	}

	// Before the join date nothing is owed.
	if got := CurrentBalance(e, MustParseDate("2024-12-01")); !got.IsZero() {
		t.Errorf("CurrentBalance before join = %s, want 0", got)
	}

	// Payments reduce the balance further.
	e.SalaryHistory = []SalaryPayment{
		{ID: NewID(), Amount: USD(2000), Date: MustParseDate("2025-01-31"),
			Period: NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))},
	}
	if got := CurrentBalance(e, MustParseDate("2025-01-31")); !got.Equal(USD(500)) {
		t.Errorf("CurrentBalance after payment = %s, want 500", got)
	}
}

func TestProjectBalance(t *testing.T) {
	p := NewProject("Site", "", MustParseDate("2025-01-01"), USD(5000))
	p.Payments = []ProjectPayment{
		{ID: NewID(), Amount: USD(2000), Date: MustParseDate("2025-01-10"), Type: AdvancePayment},
		{ID: NewID(), Amount: USD(1000), Date: MustParseDate("2025-02-10"), Type: MilestonePayment},
	}
	if got := ProjectTotalPaid(p); !got.Equal(USD(3000)) {
		t.Errorf("ProjectTotalPaid = %s, want 3000", got)
	}
	if got := ProjectBalance(p); !got.Equal(USD(2000)) {
		t.Errorf("ProjectBalance = %s, want 2000", got)
	}

	// Overpayment yields a negative balance, not an error.
	p.Payments = append(p.Payments, ProjectPayment{ID: NewID(), Amount: USD(3000), Date: MustParseDate("2025-03-01"), Type: FinalPayment})
	if got := ProjectBalance(p); !got.Equal(USD(-1000)) {
		t.Errorf("overpaid ProjectBalance = %s, want -1000", got)
	}
}

func TestClientTotals(t *testing.T) {
	c := NewClient("Acme", "", "", "")
	a := NewProject("A", "", MustParseDate("2025-01-01"), USD(5000))
	a.Payments = []ProjectPayment{{ID: NewID(), Amount: USD(3000), Date: MustParseDate("2025-01-10")}}
	b := NewProject("B", "", MustParseDate("2025-01-01"), USD(1000))
	c.Projects = []*Project{a, b}

	contracted, paid, balance := ClientTotals(c)
	if !contracted.Equal(USD(6000)) || !paid.Equal(USD(3000)) || !balance.Equal(USD(3000)) {
		t.Errorf("ClientTotals = %s, %s, %s", contracted, paid, balance)
	}
}

func TestAccountTotals(t *testing.T) {
	a := NewAccountBalance("Owner")
	a.Add(AccountTransaction{ID: NewID(), Date: MustParseDate("2025-01-01"), Amount: USD(100), Type: ExpensePaymentTx, Status: TxPending})
	a.Add(AccountTransaction{ID: NewID(), Date: MustParseDate("2025-01-02"), Amount: USD(200), Type: ExpensePaymentTx, Status: TxReimbursed})
	a.Add(AccountTransaction{ID: NewID(), Date: MustParseDate("2025-01-03"), Amount: USD(-150), Type: CompanyReimbursementTx, Status: TxReimbursed})
	a.Add(AccountTransaction{ID: NewID(), Date: MustParseDate("2025-01-04"), Amount: USD(999), Type: OtherTx, Status: TxCancelled})

	pending, reimbursed, net := AccountTotals(a)
	if !pending.Equal(USD(100)) {
		t.Errorf("pending = %s, want 100", pending)
	}
	if !reimbursed.Equal(USD(50)) {
		t.Errorf("reimbursed = %s, want 50", reimbursed)
	}
	// The net sums every transaction, the cancelled one included.
	if !net.Equal(USD(1149)) {
		t.Errorf("net = %s, want 1149", net)
	}
}
