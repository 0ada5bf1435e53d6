package tallybook

import "github.com/shopspring/decimal"

// Gender of an employee, free of any business meaning beyond record keeping.
type Gender string

const (
	Male         Gender = "male"
	Female       Gender = "female"
	OtherGender  Gender = "other"
	NotSpecified Gender = "not-specified"
)

// PaymentMethod records how a payment was made.
type PaymentMethod string

const (
	Cash          PaymentMethod = "cash"
	BankTransfer  PaymentMethod = "bank-transfer"
	Check         PaymentMethod = "check"
	DigitalWallet PaymentMethod = "wallet"
	CreditCard    PaymentMethod = "credit-card"
	OnlinePayment PaymentMethod = "online"
	OtherMethod   PaymentMethod = "other"
)

// Address is a structured postal address.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// String joins the non-empty address components with ", ".
func (a Address) String() string {
	var s string
	for _, c := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if c == "" {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += c
	}
	return s
}

// EmergencyContact is the person to reach on an employee's behalf.
type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

// IdentificationType classifies an identification document.
type IdentificationType string

const (
	Passport       IdentificationType = "passport"
	DrivingLicense IdentificationType = "driving-license"
	NationalID     IdentificationType = "national-id"
	SocialSecurity IdentificationType = "social-security"
	OtherDocument  IdentificationType = "other"
)

// Identification is a document an employee identified themselves with.
type Identification struct {
	ID     ID                 `json:"id"`
	Type   IdentificationType `json:"type"`
	Number string             `json:"number"`
	Issued Date               `json:"issued"`
	Expiry Date               `json:"expiry"`
}

// SalaryAdvance records money handed to an employee ahead of their salary.
type SalaryAdvance struct {
	ID          ID            `json:"id"`
	Amount      Money         `json:"amount"`
	Date        Date          `json:"date"`
	Reason      string        `json:"reason,omitempty"`
	Method      PaymentMethod `json:"method,omitempty"`
	ProcessedBy string        `json:"processedBy,omitempty"`
	Reference   string        `json:"reference,omitempty"`
	Notes       string        `json:"notes,omitempty"`
}

// SalaryPayment records a salary instalment for a period, with the bonuses
// and deductions applied to it.
type SalaryPayment struct {
	ID          ID            `json:"id"`
	Amount      Money         `json:"amount"`
	Date        Date          `json:"date"`
	Period      Period        `json:"period"`
	Bonuses     Money         `json:"bonuses"`
	Deductions  Money         `json:"deductions"`
	Method      PaymentMethod `json:"method,omitempty"`
	ProcessedBy string        `json:"processedBy,omitempty"`
	Reference   string        `json:"reference,omitempty"`
	Notes       string        `json:"notes,omitempty"`
}

// Leave records an absence.
type Leave struct {
	ID         ID     `json:"id"`
	Start      Date   `json:"start"`
	End        Date   `json:"end"`
	Reason     string `json:"reason,omitempty"`
	Paid       bool   `json:"paid"`
	ApprovedBy string `json:"approvedBy,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// DutyRecord records a worked span, with optional overtime hours.
type DutyRecord struct {
	ID         ID              `json:"id"`
	Start      Date            `json:"start"`
	End        Date            `json:"end"`
	Overtime   decimal.Decimal `json:"overtime"`
	VerifiedBy string          `json:"verifiedBy,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Days returns the whole days covered by the leave.
func (l Leave) Days() int { return l.End.Sub(l.Start) }

// Days returns the whole days covered by the duty record.
func (d DutyRecord) Days() int { return d.End.Sub(d.Start) }

// Employee is a salaried member of a company. Its advance, salary, leave and
// duty lists are append-only but mutable in place by sub-record identifier.
type Employee struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Gender        Gender `json:"gender,omitempty"`
	BirthDate     Date   `json:"birthDate"`
	Position      string `json:"position,omitempty"`
	MonthlySalary Money  `json:"monthlySalary"`
	JoinDate      Date   `json:"joinDate"`

	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	AltPhone string  `json:"altPhone,omitempty"`
	Address  Address `json:"address"`

	Emergency       *EmergencyContact `json:"emergency,omitempty"`
	Identifications []Identification  `json:"identifications,omitempty"`

	Advances      []SalaryAdvance `json:"advances,omitempty"`
	SalaryHistory []SalaryPayment `json:"salaryHistory,omitempty"`
	Leaves        []Leave         `json:"leaves,omitempty"`
	Duties        []DutyRecord    `json:"duties,omitempty"`
}

// NewEmployee creates an employee with a fresh identifier.
func NewEmployee(name, position string, monthlySalary Money, joinDate Date) *Employee {
	return &Employee{
		ID:            NewID(),
		Name:          name,
		Gender:        NotSpecified,
		Position:      position,
		MonthlySalary: monthlySalary,
		JoinDate:      joinDate,
	}
}

// TotalAdvances sums every salary advance ever taken.
func (e *Employee) TotalAdvances() Money {
	return sumMoney(e.Advances, func(a SalaryAdvance) Money { return a.Amount })
}

// TotalPaid sums every salary payment ever made.
func (e *Employee) TotalPaid() Money {
	return sumMoney(e.SalaryHistory, func(p SalaryPayment) Money { return p.Amount })
}
