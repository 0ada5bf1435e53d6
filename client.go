package tallybook

// ContactPerson is a person to deal with at a client.
type ContactPerson struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Primary  bool   `json:"primary"`
	Notes    string `json:"notes,omitempty"`
}

// ProjectStatus tracks where a project stands in its lifecycle.
type ProjectStatus string

const (
	Proposed  ProjectStatus = "proposed"
	Active    ProjectStatus = "active"
	OnHold    ProjectStatus = "on-hold"
	Completed ProjectStatus = "completed"
	Cancelled ProjectStatus = "cancelled"
)

// ProjectPaymentType classifies a payment against a project contract.
type ProjectPaymentType string

const (
	AdvancePayment   ProjectPaymentType = "advance"
	MilestonePayment ProjectPaymentType = "milestone"
	FinalPayment     ProjectPaymentType = "final"
)

// BankTransferDetails carries the banking trail of a transfer payment.
type BankTransferDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	TransferDate  Date   `json:"transferDate"`
	BranchCode    string `json:"branchCode,omitempty"`
	SwiftCode     string `json:"swiftCode,omitempty"`
}

// ProjectPayment is a payment received against a project contract.
type ProjectPayment struct {
	ID            ID                   `json:"id"`
	Amount        Money                `json:"amount"`
	Date          Date                 `json:"date"`
	Type          ProjectPaymentType   `json:"type"`
	Method        PaymentMethod        `json:"method,omitempty"`
	Reference     string               `json:"reference,omitempty"`
	ReceivedBy    string               `json:"receivedBy,omitempty"`
	ReceivedFrom  string               `json:"receivedFrom,omitempty"`
	VerifiedBy    string               `json:"verifiedBy,omitempty"`
	InvoiceNumber string               `json:"invoiceNumber,omitempty"`
	Bank          *BankTransferDetails `json:"bank,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// ProjectMilestone is a dated, amount-bearing step of a project contract.
type ProjectMilestone struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Details   string `json:"details,omitempty"`
	DueDate   Date   `json:"dueDate"`
	Amount    Money  `json:"amount"`
	Completed bool   `json:"completed"`
	Done      Date   `json:"done"`
}

// Project is a contracted piece of work for a client. It exclusively owns
// its payment and milestone records.
type Project struct {
	ID             ID                 `json:"id"`
	Name           string             `json:"name"`
	Details        string             `json:"details,omitempty"`
	Start          Date               `json:"start"`
	End            Date               `json:"end"`
	ContractAmount Money              `json:"contractAmount"`
	Status         ProjectStatus      `json:"status"`
	Manager        string             `json:"manager,omitempty"`
	ContractRef    string             `json:"contractRef,omitempty"`
	ContractDate   Date               `json:"contractDate"`
	Payments       []ProjectPayment   `json:"payments,omitempty"`
	Milestones     []ProjectMilestone `json:"milestones,omitempty"`
}

// NewProject creates an active project with a fresh identifier.
func NewProject(name, details string, start Date, contractAmount Money) *Project {
	return &Project{
		ID:             NewID(),
		Name:           name,
		Details:        details,
		Start:          start,
		ContractAmount: contractAmount,
		Status:         Active,
	}
}

// Client is a customer of a company, owning its projects and contact persons.
type Client struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	About   string `json:"about,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`

	Address      Address `json:"address"`
	GSTNumber    string  `json:"gstNumber,omitempty"`
	TaxNumber    string  `json:"taxNumber,omitempty"`
	Registration string  `json:"registration,omitempty"`
	Website      string  `json:"website,omitempty"`
	Industry     string  `json:"industry,omitempty"`

	Contacts []ContactPerson `json:"contacts,omitempty"`
	Projects []*Project      `json:"projects,omitempty"`
}

// NewClient creates a client with a fresh identifier.
func NewClient(name, company, email, phone string) *Client {
	return &Client{ID: NewID(), Name: name, Company: company, Email: email, Phone: phone}
}

// Project returns the client's project with this identifier, or nil.
func (c *Client) Project(id ID) *Project {
	for _, p := range c.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}
