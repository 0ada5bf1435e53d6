package tallybook

// Client operations. A client belongs to exactly one company; its projects,
// and their payments and milestones, are owned exclusively by the client
// record and addressed through it.

// Clients returns the clients owned by this company, in insertion order.
func (b *Book) Clients(companyID ID) ([]*Client, error) {
	c, err := b.companies.Get(companyID)
	if err != nil {
		return nil, err
	}
	return b.clients.Filter(func(id ID) bool { return c.Owns(KindClient, id) }), nil
}

// Client returns the client with this identifier, regardless of company.
func (b *Book) Client(id ID) (*Client, error) { return b.clients.Get(id) }

// AddClient creates a client under a company.
func (b *Book) AddClient(companyID ID, c *Client) error {
	if c.Name == "" {
		return invalidf("client name is required")
	}
	if _, err := b.companies.Get(companyID); err != nil {
		return err
	}
	if _, err := b.clients.Create(c); err != nil {
		return err
	}
	if err := b.attach(companyID, KindClient, c.ID); err != nil {
		return err
	}
	return b.saveClients()
}

// UpdateClient replaces a stored client.
func (b *Book) UpdateClient(c *Client) error {
	if c.Name == "" {
		return invalidf("client name is required")
	}
	if err := b.clients.Update(c); err != nil {
		return err
	}
	return b.saveClients()
}

// DeleteClient removes a client and detaches it from its company. The
// client's projects and their payment trail go with it.
func (b *Book) DeleteClient(id ID) error {
	if err := b.clients.Delete(id); err != nil {
		return err
	}
	if err := b.detach(KindClient, id); err != nil {
		return err
	}
	return b.saveClients()
}

// AddContact adds a contact person to a client. If the new contact is
// primary, any previous primary contact loses that mark.
func (b *Book) AddContact(clientID ID, p ContactPerson) (ID, error) {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return "", err
	}
	if p.Name == "" {
		return "", invalidf("contact name is required")
	}
	if p.ID.IsZero() {
		p.ID = NewID()
	}
	if p.Primary {
		for i := range c.Contacts {
			c.Contacts[i].Primary = false
		}
	}
	c.Contacts = append(c.Contacts, p)
	if err := b.clients.Update(c); err != nil {
		return "", err
	}
	return p.ID, b.saveClients()
}

// UpdateContact replaces a contact person by its identifier.
func (b *Book) UpdateContact(clientID ID, p ContactPerson) error {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return err
	}
	for i := range c.Contacts {
		if c.Contacts[i].ID == p.ID {
			if p.Primary && !c.Contacts[i].Primary {
				for j := range c.Contacts {
					c.Contacts[j].Primary = false
				}
			}
			c.Contacts[i] = p
			if err := b.clients.Update(c); err != nil {
				return err
			}
			return b.saveClients()
		}
	}
	return notFoundf("contact %s for client %s", p.ID.Short(), c.Name)
}

// DeleteContact removes a contact person by its identifier.
func (b *Book) DeleteContact(clientID, contactID ID) error {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return err
	}
	for i := range c.Contacts {
		if c.Contacts[i].ID == contactID {
			c.Contacts = append(c.Contacts[:i], c.Contacts[i+1:]...)
			if err := b.clients.Update(c); err != nil {
				return err
			}
			return b.saveClients()
		}
	}
	return notFoundf("contact %s for client %s", contactID.Short(), c.Name)
}

// AddProject adds a project to a client.
func (b *Book) AddProject(clientID ID, p *Project) error {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return err
	}
	if p.Name == "" {
		return invalidf("project name is required")
	}
	if p.ContractAmount.IsNegative() {
		return invalidf("contract amount cannot be negative")
	}
	if p.ID.IsZero() {
		p.ID = NewID()
	}
	if p.Status == "" {
		p.Status = Active
	}
	c.Projects = append(c.Projects, p)
	if err := b.clients.Update(c); err != nil {
		return err
	}
	return b.saveClients()
}

// UpdateProject replaces a client's project by its identifier.
func (b *Book) UpdateProject(clientID ID, p *Project) error {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return err
	}
	for i := range c.Projects {
		if c.Projects[i].ID == p.ID {
			c.Projects[i] = p
			if err := b.clients.Update(c); err != nil {
				return err
			}
			return b.saveClients()
		}
	}
	return notFoundf("project %s for client %s", p.ID.Short(), c.Name)
}

// DeleteProject removes a client's project by its identifier.
func (b *Book) DeleteProject(clientID, projectID ID) error {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return err
	}
	for i := range c.Projects {
		if c.Projects[i].ID == projectID {
			c.Projects = append(c.Projects[:i], c.Projects[i+1:]...)
			if err := b.clients.Update(c); err != nil {
				return err
			}
			return b.saveClients()
		}
	}
	return notFoundf("project %s for client %s", projectID.Short(), c.Name)
}

// AddMilestone adds a dated milestone to a client's project.
func (b *Book) AddMilestone(clientID, projectID ID, m ProjectMilestone) (ID, error) {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return "", err
	}
	p := c.Project(projectID)
	if p == nil {
		return "", notFoundf("project %s for client %s", projectID.Short(), c.Name)
	}
	if m.Title == "" {
		return "", invalidf("milestone title is required")
	}
	if m.ID.IsZero() {
		m.ID = NewID()
	}
	p.Milestones = append(p.Milestones, m)
	if err := b.clients.Update(c); err != nil {
		return "", err
	}
	return m.ID, b.saveClients()
}

// CompleteMilestone marks a milestone done on a date.
func (b *Book) CompleteMilestone(clientID, projectID, milestoneID ID, done Date) error {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return err
	}
	p := c.Project(projectID)
	if p == nil {
		return notFoundf("project %s for client %s", projectID.Short(), c.Name)
	}
	for i := range p.Milestones {
		if p.Milestones[i].ID == milestoneID {
			p.Milestones[i].Completed = true
			p.Milestones[i].Done = done
			if err := b.clients.Update(c); err != nil {
				return err
			}
			return b.saveClients()
		}
	}
	return notFoundf("milestone %s on project %s", milestoneID.Short(), p.Name)
}

// AddProjectPayment records a payment received against a project contract.
// The payment amount must be strictly positive; overpayment beyond the
// contract amount is allowed and shows up as a negative balance.
func (b *Book) AddProjectPayment(clientID, projectID ID, pay ProjectPayment) (ID, error) {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return "", err
	}
	p := c.Project(projectID)
	if p == nil {
		return "", notFoundf("project %s for client %s", projectID.Short(), c.Name)
	}
	if !pay.Amount.IsPositive() {
		return "", invalidf("project payment amount must be positive")
	}
	if pay.Date.IsZero() {
		return "", invalidf("project payment date is required")
	}
	if pay.ID.IsZero() {
		pay.ID = NewID()
	}
	p.Payments = append(p.Payments, pay)
	if err := b.clients.Update(c); err != nil {
		return "", err
	}
	return pay.ID, b.saveClients()
}

// DeleteProjectPayment removes a payment record from a project.
func (b *Book) DeleteProjectPayment(clientID, projectID, paymentID ID) error {
	c, err := b.clients.Get(clientID)
	if err != nil {
		return err
	}
	p := c.Project(projectID)
	if p == nil {
		return notFoundf("project %s for client %s", projectID.Short(), c.Name)
	}
	for i := range p.Payments {
		if p.Payments[i].ID == paymentID {
			p.Payments = append(p.Payments[:i], p.Payments[i+1:]...)
			if err := b.clients.Update(c); err != nil {
				return err
			}
			return b.saveClients()
		}
	}
	return notFoundf("payment %s on project %s", paymentID.Short(), p.Name)
}
