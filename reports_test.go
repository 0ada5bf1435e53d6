package tallybook

import (
	"errors"
	"testing"
)

func TestGenerateSalarySlip(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(company, e); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddAdvance(e.ID, SalaryAdvance{Amount: USD(500), Date: MustParseDate("2025-01-10")}); err != nil {
		t.Fatal(err)
	}
	january := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	if _, err := b.AddSalaryPayment(e.ID, SalaryPayment{
		Amount: USD(2000), Date: MustParseDate("2025-01-31"), Period: january,
		Bonuses: USD(300), Deductions: USD(100),
		Method: BankTransfer, ProcessedBy: "boss", Reference: "PAY-1",
	}); err != nil {
		t.Fatal(err)
	}

	s, err := b.GenerateSalarySlip(company, e.ID, january, "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Base.Equal(USD(3000)) {
		t.Errorf("base = %s, want 3000", s.Base)
	}
	if !s.Advances.Equal(USD(500)) {
		t.Errorf("advances = %s, want 500", s.Advances)
	}
	if !s.Bonuses.Equal(USD(300)) || !s.Deductions.Equal(USD(100)) {
		t.Errorf("bonuses = %s, deductions = %s", s.Bonuses, s.Deductions)
	}
	// (3000 + 300) - (100 + 500)
	if !s.NetSalary().Equal(USD(2700)) {
		t.Errorf("net = %s, want 2700", s.NetSalary())
	}
	if s.Method != string(BankTransfer) || s.ProcessedBy != "boss" || s.Reference != "PAY-1" {
		t.Errorf("metadata = %q %q %q", s.Method, s.ProcessedBy, s.Reference)
	}

	// The slip is committed under the company.
	slips, err := b.SlipsOf(company)
	if err != nil || len(slips) != 1 {
		t.Fatalf("SlipsOf = %v, %v", slips, err)
	}
}

func TestSalarySlipMetadataFromLatestPayment(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(company, e); err != nil {
		t.Fatal(err)
	}
	january := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	half1 := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-15"))
	half2 := NewPeriod(MustParseDate("2025-01-16"), MustParseDate("2025-01-31"))
	b.AddSalaryPayment(e.ID, SalaryPayment{Amount: USD(1500), Date: MustParseDate("2025-01-16"), Period: half1, Reference: "OLD"})
	b.AddSalaryPayment(e.ID, SalaryPayment{Amount: USD(1500), Date: MustParseDate("2025-01-31"), Period: half2, Reference: "NEW"})

	s, err := b.GenerateSalarySlip(company, e.ID, january, "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Reference != "NEW" {
		t.Errorf("reference = %q, want the most recently dated payment's", s.Reference)
	}

	// With no contained payment at all, the metadata fields stay empty.
	february := NewPeriod(MustParseDate("2025-02-01"), MustParseDate("2025-02-28"))
	s, err = b.GenerateSalarySlip(company, e.ID, february, "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Method != "" || s.ProcessedBy != "" || s.Reference != "" || !s.PaymentDate.IsZero() {
		t.Errorf("metadata without payments = %q %q %q %s", s.Method, s.ProcessedBy, s.Reference, s.PaymentDate)
	}
}

func TestSalarySlipExplicitMetadataWins(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(company, e); err != nil {
		t.Fatal(err)
	}
	january := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	b.AddSalaryPayment(e.ID, SalaryPayment{
		Amount: USD(3000), Date: MustParseDate("2025-01-31"), Period: january,
		Method: Cash, ProcessedBy: "clerk", Reference: "PAY-9",
	})

	// Explicit arguments take the slip's metadata; blank ones fall back to
	// the contained payment.
	s, err := b.GenerateSalarySlip(company, e.ID, january, BankTransfer, "boss", "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Method != string(BankTransfer) || s.ProcessedBy != "boss" {
		t.Errorf("metadata = %q %q, want the explicit arguments", s.Method, s.ProcessedBy)
	}
	if s.Reference != "PAY-9" {
		t.Errorf("reference = %q, want the fallback from the contained payment", s.Reference)
	}
}

func TestGenerateClientStatement(t *testing.T) {
	b := newTestBook(t)
	company := b.Active()
	c := NewClient("Acme", "", "", "")
	if err := b.AddClient(company, c); err != nil {
		t.Fatal(err)
	}
	paid := NewProject("Site", "", MustParseDate("2025-01-01"), USD(5000))
	idle := NewProject("Backlog", "", MustParseDate("2025-01-01"), USD(9000))
	for _, p := range []*Project{paid, idle} {
		if err := b.AddProject(c.ID, p); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := b.AddProjectPayment(c.ID, paid.ID, ProjectPayment{
		Amount: USD(3000), Date: MustParseDate("2025-01-10"), Type: AdvancePayment,
	}); err != nil {
		t.Fatal(err)
	}

	january := NewPeriod(MustParseDate("2025-01-01"), MustParseDate("2025-01-31"))
	s, err := b.GenerateClientStatement(company, c.ID, january)
	if err != nil {
		t.Fatal(err)
	}
	// The project without an in-period payment does not appear.
	if len(s.Projects) != 1 || s.Projects[0].Project != "Site" {
		t.Fatalf("projects = %+v", s.Projects)
	}
	if !s.TotalPaid().Equal(USD(3000)) {
		t.Errorf("total paid = %s, want 3000", s.TotalPaid())
	}
	if !s.Projects[0].Balance().Equal(USD(2000)) {
		t.Errorf("balance = %s, want 2000", s.Projects[0].Balance())
	}

	// A period with no payment at all refuses to generate.
	june := NewPeriod(MustParseDate("2025-06-01"), MustParseDate("2025-06-30"))
	if _, err := b.GenerateClientStatement(company, c.ID, june); !errors.Is(err, ErrNoData) {
		t.Errorf("empty statement: got %v, want a no-data error", err)
	}
	// And it committed nothing.
	statements, _ := b.StatementsOf(company)
	if len(statements) != 1 {
		t.Errorf("statements = %d, want 1", len(statements))
	}
}
