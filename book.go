package tallybook

import (
	"fmt"
	"io"
)

// settings is the process-wide configuration persisted alongside the
// entity collections: today only the active company identifier.
type settings struct {
	ActiveCompany ID `json:"activeCompany"`
}

// Options configure a freshly opened book.
type Options struct {
	// Currency is the reporting currency code used for seeded records.
	Currency string
	// Owner names the personal account created when none exists.
	Owner string
}

// Book is the bookkeeping core: one in-memory collection per entity kind,
// the single personal account, and the persisted active-company setting.
// All operations are synchronous; the caller serializes them.
type Book struct {
	gw       Gateway
	currency string

	companies  *Collection[*Company]
	employees  *Collection[*Employee]
	clients    *Collection[*Client]
	slips      *Collection[*SalarySlip]
	statements *Collection[*ClientStatement]
	expenses   *Collection[*Expense]
	reports    *Collection[*ExpenseReport]
	account    *AccountBalance

	active ID
}

// Open loads a book from the gateway. On a first run it seeds one default
// company and one personal account, makes the company active, and persists
// both, so the book is never without a tenant.
func Open(gw Gateway, opts Options) (*Book, error) {
	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	if opts.Owner == "" {
		opts.Owner = "My Account"
	}
	b := &Book{
		gw:         gw,
		currency:   opts.Currency,
		companies:  NewCollection(KindCompany, func(c *Company) ID { return c.ID }),
		employees:  NewCollection(KindEmployee, func(e *Employee) ID { return e.ID }),
		clients:    NewCollection(KindClient, func(c *Client) ID { return c.ID }),
		slips:      NewCollection(KindSalarySlip, func(s *SalarySlip) ID { return s.ID }),
		statements: NewCollection(KindClientStatement, func(s *ClientStatement) ID { return s.ID }),
		expenses:   NewCollection(KindExpense, func(x *Expense) ID { return x.ID }),
		reports:    NewCollection(KindExpenseReport, func(r *ExpenseReport) ID { return r.ID }),
	}

	if err := loadInto(gw, b.companies); err != nil {
		return nil, err
	}
	if err := loadInto(gw, b.employees); err != nil {
		return nil, err
	}
	if err := loadInto(gw, b.clients); err != nil {
		return nil, err
	}
	if err := loadInto(gw, b.slips); err != nil {
		return nil, err
	}
	if err := loadInto(gw, b.statements); err != nil {
		return nil, err
	}
	if err := loadInto(gw, b.expenses); err != nil {
		return nil, err
	}
	if err := loadInto(gw, b.reports); err != nil {
		return nil, err
	}

	if err := b.loadAccount(opts.Owner); err != nil {
		return nil, err
	}

	if b.companies.Len() == 0 {
		seed := NewCompany("My Company", "123 Main Street", "555-1234", "contact@mycompany.com")
		if _, err := b.companies.Create(seed); err != nil {
			return nil, err
		}
		if err := b.saveCompanies(); err != nil {
			return nil, err
		}
	}

	if err := b.loadSettings(); err != nil {
		return nil, err
	}
	return b, nil
}

func loadInto[E any](gw Gateway, c *Collection[E]) error {
	r, err := gw.Load(c.Kind())
	if err != nil {
		return err
	}
	defer r.Close()
	return decodeCollection(r, c)
}

func (b *Book) loadAccount(owner string) error {
	r, err := b.gw.Load(KindAccount)
	if err != nil {
		return err
	}
	defer r.Close()
	var acc AccountBalance
	found, err := decodeOne(r, &acc)
	if err != nil {
		return fmt.Errorf("format error in %s: %w", KindAccount, err)
	}
	if found {
		b.account = &acc
		return nil
	}
	b.account = NewAccountBalance(owner)
	return b.saveAccount()
}

func (b *Book) loadSettings() error {
	r, err := b.gw.Load(KindSettings)
	if err != nil {
		return err
	}
	defer r.Close()
	var s settings
	found, err := decodeOne(r, &s)
	if err != nil {
		return fmt.Errorf("format error in %s: %w", KindSettings, err)
	}
	if found {
		if _, err := b.companies.Get(s.ActiveCompany); err == nil {
			b.active = s.ActiveCompany
			return nil
		}
		// The recorded active company is gone; fall back to the first one.
	}
	b.active = b.companies.List()[0].ID
	return b.saveSettings()
}

// Currency returns the book's reporting currency code.
func (b *Book) Currency() string { return b.currency }

// money builds a Money in the book's currency.
func (b *Book) money(v float64) Money { return M(v, b.currency) }

// save helpers: every mutating operation persists the collections it
// touched. A failed save is reported to the caller but does not roll back
// the in-memory mutation; memory and disk may diverge until the next
// successful save.

func (b *Book) saveCompanies() error {
	return b.gw.Save(KindCompany, func(w io.Writer) error { return encodeCollection(w, b.companies) })
}
func (b *Book) saveEmployees() error {
	return b.gw.Save(KindEmployee, func(w io.Writer) error { return encodeCollection(w, b.employees) })
}
func (b *Book) saveClients() error {
	return b.gw.Save(KindClient, func(w io.Writer) error { return encodeCollection(w, b.clients) })
}
func (b *Book) saveSlips() error {
	return b.gw.Save(KindSalarySlip, func(w io.Writer) error { return encodeCollection(w, b.slips) })
}
func (b *Book) saveStatements() error {
	return b.gw.Save(KindClientStatement, func(w io.Writer) error { return encodeCollection(w, b.statements) })
}
func (b *Book) saveExpenses() error {
	return b.gw.Save(KindExpense, func(w io.Writer) error { return encodeCollection(w, b.expenses) })
}
func (b *Book) saveReports() error {
	return b.gw.Save(KindExpenseReport, func(w io.Writer) error { return encodeCollection(w, b.reports) })
}
func (b *Book) saveAccount() error {
	return b.gw.Save(KindAccount, func(w io.Writer) error { return encodeOne(w, b.account) })
}
func (b *Book) saveSettings() error {
	return b.gw.Save(KindSettings, func(w io.Writer) error { return encodeOne(w, settings{ActiveCompany: b.active}) })
}

// SaveAll persists every collection. Useful after a bulk import.
func (b *Book) SaveAll() error {
	for _, save := range []func() error{
		b.saveCompanies, b.saveEmployees, b.saveClients, b.saveSlips,
		b.saveStatements, b.saveExpenses, b.saveReports, b.saveAccount, b.saveSettings,
	} {
		if err := save(); err != nil {
			return err
		}
	}
	return nil
}

// --- Companies and tenancy ---

// Companies returns all companies in insertion order.
func (b *Book) Companies() []*Company { return b.companies.List() }

// Company returns the company with this identifier.
func (b *Book) Company(id ID) (*Company, error) { return b.companies.Get(id) }

// Active returns the identifier of the active company.
func (b *Book) Active() ID { return b.active }

// ActiveCompany returns the active company.
func (b *Book) ActiveCompany() (*Company, error) { return b.companies.Get(b.active) }

// SwitchCompany makes another company the active one. It is an O(1)
// pointer change; no entity data moves.
func (b *Book) SwitchCompany(id ID) error {
	if _, err := b.companies.Get(id); err != nil {
		return err
	}
	b.active = id
	return b.saveSettings()
}

// AddCompany creates a new company.
func (b *Book) AddCompany(name, address, phone, email string) (*Company, error) {
	if name == "" {
		return nil, invalidf("company name is required")
	}
	c := NewCompany(name, address, phone, email)
	if _, err := b.companies.Create(c); err != nil {
		return nil, err
	}
	return c, b.saveCompanies()
}

// UpdateCompany replaces a stored company.
func (b *Book) UpdateCompany(c *Company) error {
	if c.Name == "" {
		return invalidf("company name is required")
	}
	if err := b.companies.Update(c); err != nil {
		return err
	}
	return b.saveCompanies()
}

// DeleteCompany removes a company. Deleting the last remaining company is
// refused; deleting the active company first hands "active" to another one.
// The entities the company owned are soft-detached: they stay in the store,
// reachable by direct identifier lookup only.
func (b *Book) DeleteCompany(id ID) error {
	if _, err := b.companies.Get(id); err != nil {
		return err
	}
	if b.companies.Len() == 1 {
		return invalidf("cannot delete the only company")
	}
	if b.active == id {
		for _, other := range b.companies.List() {
			if other.ID != id {
				if err := b.SwitchCompany(other.ID); err != nil {
					return err
				}
				break
			}
		}
	}
	if err := b.companies.Delete(id); err != nil {
		return err
	}
	return b.saveCompanies()
}

// attach adds an identifier to a company's owned set, in the same logical
// step as the entity's creation. Every tenant-scoped create goes through
// here so no entity is reachable only by direct lookup.
func (b *Book) attach(companyID ID, kind Kind, id ID) error {
	c, err := b.companies.Get(companyID)
	if err != nil {
		return err
	}
	c.Attach(kind, id)
	if err := b.companies.Update(c); err != nil {
		return err
	}
	return b.saveCompanies()
}

// detach removes an identifier from whichever company's owned set contains
// it. Called when the entity itself is deleted.
func (b *Book) detach(kind Kind, id ID) error {
	for _, c := range b.companies.List() {
		if c.Owns(kind, id) {
			c.Detach(kind, id)
			if err := b.companies.Update(c); err != nil {
				return err
			}
			return b.saveCompanies()
		}
	}
	return nil
}

// owner returns the company whose owned set contains the identifier, or nil.
func (b *Book) owner(kind Kind, id ID) *Company {
	for _, c := range b.companies.List() {
		if c.Owns(kind, id) {
			return c
		}
	}
	return nil
}
