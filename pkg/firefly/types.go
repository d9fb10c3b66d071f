package firefly

import "github.com/shopspring/decimal"

type GenericApiResponse[T any] struct {
	Data T `json:"data"`
}

type TransactionRead struct {
	Id string `json:"id"`
}

type Account struct {
	Id         string            `json:"id"`
	Attributes AccountAttributes `json:"attributes"`
}

type AccountAttributes struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	CurrencyCode   string          `json:"currency_code"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Active         bool            `json:"active"`
}

// TransactionRequest is the Firefly write envelope. error_if_duplicate_hash
// stays false: the search-then-upsert flow owns duplicate detection, the
// hash check is only a last line of defence on create.
type TransactionRequest struct {
	ErrorIfDuplicateHash bool                `json:"error_if_duplicate_hash"`
	ApplyRules           bool                `json:"apply_rules"`
	GroupTitle           string              `json:"group_title"`
	Transactions         []*TransactionSplit `json:"transactions"`
}

type TransactionSplit struct {
	ExternalID          string `json:"external_id"`
	Type                string `json:"type"`
	Date                string `json:"date"`
	Amount              string `json:"amount"`
	CurrencyCode        string `json:"currency_code"`
	ForeignCurrencyCode string `json:"foreign_currency_code,omitempty"`
	ForeignAmount       string `json:"foreign_amount,omitempty"`
	CategoryName        string `json:"category_name,omitempty"`
	BudgetName          string `json:"budget_name,omitempty"`
	Description         string `json:"description"`
	Notes               string `json:"notes"`
	SourceID            string `json:"source_id,omitempty"`
	DestinationID       string `json:"destination_id,omitempty"`
	Reconciled          bool   `json:"reconciled"`
}
