package tallybook

// Employee operations. Every employee belongs to exactly one company; the
// owned set is updated in the same logical step as creation and deletion.

// Employees returns the employees owned by this company, in insertion order.
func (b *Book) Employees(companyID ID) ([]*Employee, error) {
	c, err := b.companies.Get(companyID)
	if err != nil {
		return nil, err
	}
	return b.employees.Filter(func(id ID) bool { return c.Owns(KindEmployee, id) }), nil
}

// Employee returns the employee with this identifier, regardless of company.
func (b *Book) Employee(id ID) (*Employee, error) { return b.employees.Get(id) }

// AddEmployee creates an employee under a company.
func (b *Book) AddEmployee(companyID ID, e *Employee) error {
	if e.Name == "" {
		return invalidf("employee name is required")
	}
	if e.MonthlySalary.IsNegative() {
		return invalidf("monthly salary cannot be negative")
	}
	if _, err := b.companies.Get(companyID); err != nil {
		return err
	}
	if _, err := b.employees.Create(e); err != nil {
		return err
	}
	if err := b.attach(companyID, KindEmployee, e.ID); err != nil {
		return err
	}
	return b.saveEmployees()
}

// UpdateEmployee replaces a stored employee.
func (b *Book) UpdateEmployee(e *Employee) error {
	if e.Name == "" {
		return invalidf("employee name is required")
	}
	if err := b.employees.Update(e); err != nil {
		return err
	}
	return b.saveEmployees()
}

// DeleteEmployee removes an employee and detaches it from its company.
func (b *Book) DeleteEmployee(id ID) error {
	if err := b.employees.Delete(id); err != nil {
		return err
	}
	if err := b.detach(KindEmployee, id); err != nil {
		return err
	}
	return b.saveEmployees()
}

// AddAdvance records a salary advance for an employee. The advance amount
// must be strictly positive.
func (b *Book) AddAdvance(employeeID ID, adv SalaryAdvance) (ID, error) {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return "", err
	}
	if !adv.Amount.IsPositive() {
		return "", invalidf("advance amount must be positive")
	}
	if adv.Date.IsZero() {
		return "", invalidf("advance date is required")
	}
	if adv.ID.IsZero() {
		adv.ID = NewID()
	}
	e.Advances = append(e.Advances, adv)
	if err := b.employees.Update(e); err != nil {
		return "", err
	}
	return adv.ID, b.saveEmployees()
}

// UpdateAdvance replaces an advance record by its identifier.
func (b *Book) UpdateAdvance(employeeID ID, adv SalaryAdvance) error {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return err
	}
	if !adv.Amount.IsPositive() {
		return invalidf("advance amount must be positive")
	}
	for i := range e.Advances {
		if e.Advances[i].ID == adv.ID {
			e.Advances[i] = adv
			if err := b.employees.Update(e); err != nil {
				return err
			}
			return b.saveEmployees()
		}
	}
	return notFoundf("advance %s for employee %s", adv.ID.Short(), e.Name)
}

// DeleteAdvance removes an advance record by its identifier.
func (b *Book) DeleteAdvance(employeeID, advanceID ID) error {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return err
	}
	for i := range e.Advances {
		if e.Advances[i].ID == advanceID {
			e.Advances = append(e.Advances[:i], e.Advances[i+1:]...)
			if err := b.employees.Update(e); err != nil {
				return err
			}
			return b.saveEmployees()
		}
	}
	return notFoundf("advance %s for employee %s", advanceID.Short(), e.Name)
}

// AddSalaryPayment records a salary instalment for an employee.
func (b *Book) AddSalaryPayment(employeeID ID, p SalaryPayment) (ID, error) {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return "", err
	}
	if !p.Amount.IsPositive() {
		return "", invalidf("salary payment amount must be positive")
	}
	if err := p.Period.Validate(); err != nil {
		return "", err
	}
	if p.Date.IsZero() {
		return "", invalidf("salary payment date is required")
	}
	if p.ID.IsZero() {
		p.ID = NewID()
	}
	e.SalaryHistory = append(e.SalaryHistory, p)
	if err := b.employees.Update(e); err != nil {
		return "", err
	}
	return p.ID, b.saveEmployees()
}

// UpdateSalaryPayment replaces a salary payment record by its identifier.
func (b *Book) UpdateSalaryPayment(employeeID ID, p SalaryPayment) error {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return err
	}
	if !p.Amount.IsPositive() {
		return invalidf("salary payment amount must be positive")
	}
	if err := p.Period.Validate(); err != nil {
		return err
	}
	for i := range e.SalaryHistory {
		if e.SalaryHistory[i].ID == p.ID {
			e.SalaryHistory[i] = p
			if err := b.employees.Update(e); err != nil {
				return err
			}
			return b.saveEmployees()
		}
	}
	return notFoundf("salary payment %s for employee %s", p.ID.Short(), e.Name)
}

// AddLeave records an absence for an employee.
func (b *Book) AddLeave(employeeID ID, l Leave) (ID, error) {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return "", err
	}
	if l.Start.IsZero() || l.End.IsZero() {
		return "", invalidf("leave requires a start and an end date")
	}
	if l.End.Before(l.Start) {
		return "", invalidf("leave ends before it starts")
	}
	if l.ID.IsZero() {
		l.ID = NewID()
	}
	e.Leaves = append(e.Leaves, l)
	if err := b.employees.Update(e); err != nil {
		return "", err
	}
	return l.ID, b.saveEmployees()
}

// AddDuty records a worked span for an employee.
func (b *Book) AddDuty(employeeID ID, d DutyRecord) (ID, error) {
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return "", err
	}
	if d.Start.IsZero() || d.End.IsZero() {
		return "", invalidf("duty record requires a start and an end date")
	}
	if d.End.Before(d.Start) {
		return "", invalidf("duty record ends before it starts")
	}
	if d.ID.IsZero() {
		d.ID = NewID()
	}
	e.Duties = append(e.Duties, d)
	if err := b.employees.Update(e); err != nil {
		return "", err
	}
	return d.ID, b.saveEmployees()
}
