package tallybook

import (
	"errors"
	"testing"
)

func TestOpenSeedsDefaults(t *testing.T) {
	gw := newMemGateway()
	b, err := Open(gw, Options{Currency: "USD", Owner: "Jane"})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Companies()) != 1 {
		t.Fatalf("companies = %d, want the seeded one", len(b.Companies()))
	}
	if b.Active().IsZero() {
		t.Error("no active company after first open")
	}
	if b.Account() == nil || b.Account().Owner != "Jane" {
		t.Errorf("account = %+v, want the seeded one", b.Account())
	}

	// Reopening the same gateway must not seed again.
	b2, err := Open(gw, Options{Currency: "USD"})
	if err != nil {
		t.Fatal(err)
	}
	if len(b2.Companies()) != 1 {
		t.Errorf("companies after reopen = %d, want 1", len(b2.Companies()))
	}
	if b2.Active() != b.Active() {
		t.Error("active company did not survive a reopen")
	}
	if b2.Account().ID != b.Account().ID {
		t.Error("personal account did not survive a reopen")
	}
}

func TestDeleteLastCompany(t *testing.T) {
	b := newTestBook(t)
	err := b.DeleteCompany(b.Active())
	if !errors.Is(err, ErrValidation) {
		t.Errorf("deleting the only company: got %v, want a validation error", err)
	}
}

func TestDeleteActiveCompanyReassigns(t *testing.T) {
	b := newTestBook(t)
	first := b.Active()
	second, err := b.AddCompany("Second", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteCompany(first); err != nil {
		t.Fatal(err)
	}
	if b.Active() != second.ID {
		t.Errorf("active = %s, want %s", b.Active().Short(), second.ID.Short())
	}
	if _, err := b.Company(first); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted company still found: %v", err)
	}
}

func TestSwitchCompany(t *testing.T) {
	b := newTestBook(t)
	second, err := b.AddCompany("Second", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SwitchCompany(second.ID); err != nil {
		t.Fatal(err)
	}
	if b.Active() != second.ID {
		t.Error("switch did not change the active company")
	}
	if err := b.SwitchCompany(NewID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("switch to unknown company: got %v, want a not-found error", err)
	}
}

func TestTenancyDisjointness(t *testing.T) {
	b := newTestBook(t)
	first := b.Active()
	second, err := b.AddCompany("Second", "", "", "")
	if err != nil {
		t.Fatal(err)
	}

	e := NewEmployee("Ann", "Engineer", USD(3000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(first, e); err != nil {
		t.Fatal(err)
	}

	// The employee is visible only through its owning company.
	own, err := b.Employees(first)
	if err != nil || len(own) != 1 {
		t.Fatalf("Employees(first) = %v, %v", own, err)
	}
	other, err := b.Employees(second.ID)
	if err != nil || len(other) != 0 {
		t.Fatalf("Employees(second) = %v, %v", other, err)
	}

	// Direct lookup ignores tenancy.
	if _, err := b.Employee(e.ID); err != nil {
		t.Errorf("direct lookup: %v", err)
	}

	// Deleting the entity detaches it from the owned set.
	if err := b.DeleteEmployee(e.ID); err != nil {
		t.Fatal(err)
	}
	c, _ := b.Company(first)
	if c.Owns(KindEmployee, e.ID) {
		t.Error("owned set still references a deleted employee")
	}
}

func TestDeleteCompanySoftDetaches(t *testing.T) {
	b := newTestBook(t)
	doomed, err := b.AddCompany("Doomed", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	e := NewEmployee("Bob", "Clerk", USD(1000), MustParseDate("2025-01-01"))
	if err := b.AddEmployee(doomed.ID, e); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteCompany(doomed.ID); err != nil {
		t.Fatal(err)
	}
	// The employee record survives, reachable by direct lookup only.
	if _, err := b.Employee(e.ID); err != nil {
		t.Errorf("employee lost with its company: %v", err)
	}
}
