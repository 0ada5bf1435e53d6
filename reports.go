package tallybook

import "time"

// Report generation. A generated report is a frozen snapshot: it copies the
// names and figures it needs at generation time and never follows its
// sources afterwards.

// SlipsOf returns the salary slips owned by this company.
func (b *Book) SlipsOf(companyID ID) ([]*SalarySlip, error) {
	c, err := b.companies.Get(companyID)
	if err != nil {
		return nil, err
	}
	return b.slips.Filter(func(id ID) bool { return c.Owns(KindSalarySlip, id) }), nil
}

// Slip returns the salary slip with this identifier.
func (b *Book) Slip(id ID) (*SalarySlip, error) { return b.slips.Get(id) }

// DeleteSlip removes a salary slip and detaches it from its company.
func (b *Book) DeleteSlip(id ID) error {
	if err := b.slips.Delete(id); err != nil {
		return err
	}
	if err := b.detach(KindSalarySlip, id); err != nil {
		return err
	}
	return b.saveSlips()
}

// GenerateSalarySlip builds a salary slip for an employee over a period and
// commits it under the company. The slip derives:
//
//   - the base from the monthly salary, prorated on the period's days,
//   - the advances from the advance records dated inside the period,
//   - bonuses and deductions from the salary payments whose own period is
//     fully contained in this one,
//   - payment metadata from the explicit arguments; a blank argument falls
//     back to the most recently dated contained payment, and absent any,
//     the metadata fields stay empty.
func (b *Book) GenerateSalarySlip(companyID, employeeID ID, period Period, method PaymentMethod, processedBy, reference string) (*SalarySlip, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if _, err := b.companies.Get(companyID); err != nil {
		return nil, err
	}
	e, err := b.employees.Get(employeeID)
	if err != nil {
		return nil, err
	}

	s := &SalarySlip{
		ID:          NewID(),
		Employee:    e.Name,
		Position:    e.Position,
		Period:      period,
		Base:        ProratedSalary(e.MonthlySalary, period),
		Advances:    AdvancesIn(e, period),
		Method:      string(method),
		ProcessedBy: processedBy,
		Reference:   reference,
		Generated:   time.Now().UTC().Truncate(time.Second),
	}

	contained := PaymentsContained(e, period)
	s.Bonuses = sumMoney(contained, func(p SalaryPayment) Money { return p.Bonuses })
	s.Deductions = sumMoney(contained, func(p SalaryPayment) Money { return p.Deductions })

	if latest := latestPayment(contained); latest != nil {
		if s.Method == "" {
			s.Method = string(latest.Method)
		}
		if s.ProcessedBy == "" {
			s.ProcessedBy = latest.ProcessedBy
		}
		if s.Reference == "" {
			s.Reference = latest.Reference
		}
		s.PaymentDate = latest.Date
		s.Notes = latest.Notes
	}

	if _, err := b.slips.Create(s); err != nil {
		return nil, err
	}
	if err := b.attach(companyID, KindSalarySlip, s.ID); err != nil {
		return nil, err
	}
	return s, b.saveSlips()
}

// latestPayment returns the most recently dated payment, or nil.
func latestPayment(payments []SalaryPayment) *SalaryPayment {
	var latest *SalaryPayment
	for i := range payments {
		if latest == nil || payments[i].Date.After(latest.Date) {
			latest = &payments[i]
		}
	}
	return latest
}

// GenerateSalarySlipTracked generates the slip, then records the full money
// trail of actually paying it: a salary payment on the employee for the
// slip's net, a salaries-category expense under the company, and, when the
// owner fronted the money, a pending personal-account transaction.
func (b *Book) GenerateSalarySlipTracked(companyID, employeeID ID, period Period, on Date, method PaymentMethod, processedBy, reference string, personal bool) (*SalarySlip, error) {
	s, err := b.GenerateSalarySlip(companyID, employeeID, period, method, processedBy, reference)
	if err != nil {
		return nil, err
	}
	p := SalaryPayment{
		Amount:      s.NetSalary(),
		Date:        on,
		Period:      period,
		Method:      method,
		ProcessedBy: processedBy,
		Reference:   reference,
	}
	if _, err := b.AddSalaryPaymentTracked(companyID, employeeID, p, personal); err != nil {
		return nil, err
	}
	return s, nil
}

// StatementsOf returns the client statements owned by this company.
func (b *Book) StatementsOf(companyID ID) ([]*ClientStatement, error) {
	c, err := b.companies.Get(companyID)
	if err != nil {
		return nil, err
	}
	return b.statements.Filter(func(id ID) bool { return c.Owns(KindClientStatement, id) }), nil
}

// Statement returns the client statement with this identifier.
func (b *Book) Statement(id ID) (*ClientStatement, error) { return b.statements.Get(id) }

// DeleteStatement removes a client statement and detaches it from its company.
func (b *Book) DeleteStatement(id ID) error {
	if err := b.statements.Delete(id); err != nil {
		return err
	}
	if err := b.detach(KindClientStatement, id); err != nil {
		return err
	}
	return b.saveStatements()
}

// GenerateClientStatement builds a statement of a client's project payments
// restricted to a period and commits it under the company. A project with no
// payment dated inside the period does not appear; when no project
// qualifies, the statement is refused with a no-data error rather than
// generated empty.
func (b *Book) GenerateClientStatement(companyID, clientID ID, period Period) (*ClientStatement, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	company, err := b.companies.Get(companyID)
	if err != nil {
		return nil, err
	}
	client, err := b.clients.Get(clientID)
	if err != nil {
		return nil, err
	}

	var projects []ProjectPaymentSummary
	for _, p := range client.Projects {
		var records []PaymentRecord
		var paid Money
		for _, pay := range p.Payments {
			if period.Contains(pay.Date) {
				records = append(records, PaymentRecord{
					ID: pay.ID, Amount: pay.Amount, Date: pay.Date, Type: string(pay.Type),
				})
				paid = paid.Add(pay.Amount)
			}
		}
		if len(records) == 0 {
			continue
		}
		projects = append(projects, ProjectPaymentSummary{
			ID:             p.ID,
			Project:        p.Name,
			ContractAmount: p.ContractAmount,
			PaidAmount:     paid,
			Payments:       records,
		})
	}
	if len(projects) == 0 {
		return nil, noDataf("no payment from %s in %s", client.Name, period)
	}

	s := &ClientStatement{
		ID:        NewID(),
		Client:    client.Name,
		Company:   company.Name,
		Period:    period,
		Projects:  projects,
		Generated: time.Now().UTC().Truncate(time.Second),
	}
	if _, err := b.statements.Create(s); err != nil {
		return nil, err
	}
	if err := b.attach(companyID, KindClientStatement, s.ID); err != nil {
		return nil, err
	}
	return s, b.saveStatements()
}
