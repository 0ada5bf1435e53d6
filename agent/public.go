package agent

import (
	"context"
	"fmt"

	"github.com/tallybook/tallybook"
	"github.com/tallybook/tallybook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small business and is here to get information about his books:
			companies, employees, salaries, clients, projects, expenses and his personal account.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper creates the expert in charge of reading the user's book.
func NewBookkeeper(book *tallybook.Book) *Expert {
	lib := []Function{
		newEmployeesFunc(book),
		newExpensesFunc(book),
		newAccountFunc(book),
	}
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's books.
		He can list employees with their salary balances, list expenses by status,
		and report the state of the owner's personal account.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's books.
				You know how to use the Tools to extract relevant information about the
				active company: its employees, what they are owed, its expenses and
				their approval states, and the owner's personal account.
				Pardon the user's approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// errorResponse wraps an error into a function response.
func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func newEmployeesFunc(book *tallybook.Book) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Employees",
			Description: `Employees lists the active company's employees with their position,
			monthly salary and the balance the books owe them as of today.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One line per employee with name, position, monthly salary and balance owed.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			employees, err := book.Employees(book.Active())
			if err != nil {
				return errorResponse(id, "Employees", err)
			}
			out := ""
			today := tallybook.Today()
			for _, e := range employees {
				out += fmt.Sprintf("%s (%s), monthly %s. %s\n", e.Name, e.Position, e.MonthlySalary, renderer.BalanceLine(e, today))
			}
			return &genai.FunctionResponse{
				ID: id, Name: "Employees",
				Response: map[string]any{"output": out},
			}
		},
	}
}

func newExpensesFunc(book *tallybook.Book) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Expenses",
			Description: `Expenses lists the active company's expenses grouped by workflow
			status: pending, approved, reimbursed, rejected.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown listing of the expenses grouped by status with totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			expenses, err := book.ExpensesOf(book.Active())
			if err != nil {
				return errorResponse(id, "Expenses", err)
			}
			return &genai.FunctionResponse{
				ID: id, Name: "Expenses",
				Response: map[string]any{"output": renderer.ExpensesMarkdown(expenses)},
			}
		},
	}
}

func newAccountFunc(book *tallybook.Book) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Account",
			Description: `Account reports the owner's personal account: money spent on the
			company's behalf still pending reimbursement, money settled, and the net owed.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A short summary of the personal account position.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			a := book.Account()
			pending, reimbursed, net := tallybook.AccountTotals(a)
			out := fmt.Sprintf("Account of %s: pending %s, settled %s, net owed %s.",
				a.Owner, pending, reimbursed, net)
			return &genai.FunctionResponse{
				ID: id, Name: "Account",
				Response: map[string]any{"output": out},
			}
		},
	}
}
