package importer

import (
	"fmt"

	"github.com/psedge/firefly-wise-importer/pkg/firefly"
	"github.com/psedge/firefly-wise-importer/pkg/wise"
)

const ledgerDateFormat = "2006-01-02T15:04:05Z"

// BuildPayload maps a normalized transaction onto the Firefly write
// envelope. The correlation key rides inside the description so the next
// run's search finds this record again.
func BuildPayload(tx *wise.Transaction) *firefly.TransactionRequest {
	txType := "withdrawal"
	if tx.Type == wise.TransactionTypeCredit {
		txType = "deposit"
	}

	split := &firefly.TransactionSplit{
		ExternalID:    tx.ID,
		Type:          txType,
		Date:          tx.Date.Format(ledgerDateFormat),
		Amount:        tx.Amount.String(),
		CurrencyCode:  tx.CurrencyCode,
		CategoryName:  tx.CategoryName,
		BudgetName:    tx.BudgetName,
		Description:   fmt.Sprintf("%s (%s)", tx.Description, tx.CorrelationKey()),
		Notes:         tx.Notes,
		SourceID:      tx.SourceID,
		DestinationID: tx.DestinationID,
		Reconciled:    tx.Reconciled,
	}

	// A zero foreign amount means the conversion never got a usable rate,
	// not a zero-value transfer. Leave the fields off entirely.
	if tx.ForeignCode != "" && !tx.ForeignAmount.IsZero() {
		split.ForeignCurrencyCode = tx.ForeignCode
		split.ForeignAmount = tx.ForeignAmount.String()
	}

	return &firefly.TransactionRequest{
		ErrorIfDuplicateHash: false,
		ApplyRules:           false,
		GroupTitle:           "TW",
		Transactions:         []*firefly.TransactionSplit{split},
	}
}
