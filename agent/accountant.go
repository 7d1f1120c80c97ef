package agent

import (
	"context"
	"fmt"

	"github.com/aultfarms/accounts"
	"github.com/aultfarms/accounts/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
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

			Learn about the expert skills available as Tools and ask the experts questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a farm and is here primarily to understand the farm's finances: income,
			expenses, account balances, and what must be reported at tax time.

			Devise a plan of questions to ask each expert and come up with the best response to
			the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// Loaders provides the accountant with the user's data. The functions are
// called on every tool call so the expert always sees the ledger as it is on
// disk.
type Loaders struct {
	Ledger   func() (*accounts.Ledger, error)
	Settings func() (accounts.Ten99Settings, error)
}

// NewAccountant creates the expert in charge of the farm's ledger.
func NewAccountant(loaders Loaders) *Expert {
	lib := []Function{
		profitLossFunc(loaders),
		balanceSheetsFunc(loaders),
		ten99Func(loaders),
	}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the farm's ledger.
		He can compute profit & loss reports, balance sheets, and 1099 totals per payee.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's farm ledger.
				You know how to use the Tools to extract relevant figures about the farm's finances.
				You are part of a team of experts; yours is everything recorded in the ledger. They
				might ask you questions in approximate language, figure out what they meant.

				The ledger has two views: 'mkt' values things at market, 'tax' follows the tax
				basis. Use the available tools to get
				  - a profit & loss report per year and view
				  - balance sheets per year and view
				  - 1099 totals per payee for a tax year
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// failure wraps an error into a function response.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// success wraps a markdown report into a function response.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var yearSchema = &genai.Schema{
	Type:        genai.TypeNumber,
	Description: "The report year, e.g. 2024. Defaults to the current year.",
}

var typeSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The ledger view: 'mkt' or 'tax'.",
}

func parseYear(args map[string]any) (int, error) {
	iyear, ok := args["year"]
	if !ok {
		return 0, nil
	}
	year, ok := iyear.(float64)
	if !ok {
		return 0, fmt.Errorf("argument 'year' is not a number as expected but %T", iyear)
	}
	return int(year), nil
}

func parseLedgerType(args map[string]any) (accounts.LedgerType, error) {
	ityp, ok := args["type"]
	if !ok {
		return accounts.Tax, nil
	}
	styp, ok := ityp.(string)
	if !ok {
		return accounts.Tax, fmt.Errorf("argument 'type' is not a string as expected but %T", ityp)
	}
	return accounts.ParseLedgerType(styp)
}

func profitLossFunc(loaders Loaders) *Func {
	const name = "ProfitLoss"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `ProfitLoss computes the farm's profit & loss for one year: income and expense
			totals per category, per cumulative quarter (Q1 through year-end).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": yearSchema,
					"type": typeSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted profit & loss report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := parseYear(args)
			if err != nil {
				return failure(id, name, err)
			}
			t, err := parseLedgerType(args)
			if err != nil {
				return failure(id, name, err)
			}
			ledger, err := loaders.Ledger()
			if err != nil {
				return failure(id, name, err)
			}
			pl, err := ledger.NewProfitLoss(t, year)
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, renderer.ProfitLossMarkdown(pl))
		},
	}
}

func balanceSheetsFunc(loaders Loaders) *Func {
	const name = "BalanceSheets"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `BalanceSheets computes the farm's balance sheets for one year: every account's
			balance as of the year end and each quarter end, rolled up by account family.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": yearSchema,
					"type": typeSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted set of balance sheets.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := parseYear(args)
			if err != nil {
				return failure(id, name, err)
			}
			t, err := parseLedgerType(args)
			if err != nil {
				return failure(id, name, err)
			}
			ledger, err := loaders.Ledger()
			if err != nil {
				return failure(id, name, err)
			}
			annual, err := ledger.NewAnnualBalanceSheet(accounts.BalanceSheetRequest{
				Type: t, Year: year, Quarters: true,
			})
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, renderer.AnnualBalanceSheetMarkdown(annual))
		},
	}
}

func ten99Func(loaders Loaders) *Func {
	const name = "Ten99"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Ten99 computes the 1099 totals per payee for one tax year, and lists payees
			who crossed the reporting threshold but are missing from the settings.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": yearSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted 1099 report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := parseYear(args)
			if err != nil {
				return failure(id, name, err)
			}
			ledger, err := loaders.Ledger()
			if err != nil {
				return failure(id, name, err)
			}
			settings, err := loaders.Settings()
			if err != nil {
				return failure(id, name, err)
			}
			result, err := ledger.NewTen99(settings, year)
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, renderer.Ten99Markdown(result))
		},
	}
}
