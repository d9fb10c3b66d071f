package wise

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeCredit = TransactionType("CREDIT")
	TransactionTypeDebit  = TransactionType("DEBIT")
)

// Transaction is one normalized statement row. Built once by the fetcher,
// never mutated afterwards except for the account assignment.
type Transaction struct {
	ID           string
	Type         TransactionType
	Date         time.Time // UTC, truncated to whole seconds
	Amount       decimal.Decimal
	CurrencyCode string

	RawCategory  string
	CategoryName string
	BudgetName   string

	ForeignCode   string
	ForeignAmount decimal.Decimal

	Description string
	Notes       string

	SourceID      string
	DestinationID string
	Reconciled    bool
}

// CorrelationKey is embedded into the ledger description so a later run can
// find this exact transaction again.
func (t *Transaction) CorrelationKey() string {
	return t.ID + "-" + t.CurrencyCode
}

// AssignAccount sets exactly one of SourceID/DestinationID: debits spend
// from the account, credits arrive into it.
func (t *Transaction) AssignAccount(accountID string) {
	if t.Type == TransactionTypeDebit {
		t.SourceID = accountID
		t.DestinationID = ""
		return
	}

	t.DestinationID = accountID
	t.SourceID = ""
}

type FetchRequest struct {
	ProfileID string
	AccountID string
	Currency  string
	Start     time.Time
	End       time.Time
}

// Rows stay raw alongside the typed view so the audit notes can carry the
// provider payload verbatim.
type statementResponse struct {
	Transactions []json.RawMessage `json:"transactions"`
}

type statementRow struct {
	Type            string           `json:"type"`
	Date            string           `json:"date"`
	Amount          statementAmount  `json:"amount"`
	Details         statementDetails `json:"details"`
	ReferenceNumber string           `json:"referenceNumber"`
}

type statementAmount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

type statementDetails struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}
