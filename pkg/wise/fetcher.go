package wise

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/psedge/firefly-wise-importer/pkg/category"
	"github.com/psedge/firefly-wise-importer/pkg/common"
	"github.com/psedge/firefly-wise-importer/pkg/rates"
)

const (
	intervalFormat = "2006-01-02T15:04:05Z"

	// Wise prefixes card purchases with boilerplate that would otherwise
	// drown the merchant name in Firefly.
	cardPrefix = "Card transaction of "
)

type RateSource interface {
	Daily(
		ctx context.Context,
		fromCode string,
		toCode string,
		start time.Time,
		end time.Time,
	) (rates.Series, error)
}

type Config struct {
	Client   *req.Client
	BaseURI  string
	ApiToken string

	Resolver *category.Resolver
	Rates    RateSource

	ConvertAmounts bool
	BaseCurrency   string
}

// Fetcher pulls one currency's statement rows for one window and normalizes
// them into Transactions.
type Fetcher struct {
	cfg *Config
}

func NewFetcher(cfg *Config) *Fetcher {
	return &Fetcher{
		cfg: cfg,
	}
}

func (f *Fetcher) Fetch(
	ctx context.Context,
	request *FetchRequest,
) ([]*Transaction, error) {
	start := request.Start.UTC().Truncate(time.Second)
	end := request.End.UTC().Truncate(time.Second)

	uri := fmt.Sprintf("%s/v3/profiles/%s/borderless-accounts/%s/statement.json",
		f.cfg.BaseURI, request.ProfileID, request.AccountID)

	var body statementResponse

	resp, err := f.cfg.Client.R().
		SetContext(ctx).
		SetBearerAuthToken(f.cfg.ApiToken).
		SetQueryParams(map[string]string{
			"intervalStart": start.Format(intervalFormat),
			"intervalEnd":   end.Format(intervalFormat),
			"currency":      request.Currency,
		}).
		SetSuccessResult(&body).
		Get(uri)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.WithStack(common.ErrUnauthorized)
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("failed to fetch statement: %v %s", resp.StatusCode, resp.String())
	}

	fxRates, err := f.windowRates(ctx, request.Currency, start, end)
	if err != nil {
		return nil, err
	}

	var transactions []*Transaction
	for _, raw := range body.Transactions {
		tx, parseErr := f.parseRow(ctx, raw, fxRates)
		if parseErr != nil {
			return nil, parseErr
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// windowRates fetches and backfills the rate series once per (currency,
// window). A nil series means conversion is off for this window; an empty
// one means the feed had nothing usable and conversions degrade to zero.
func (f *Fetcher) windowRates(
	ctx context.Context,
	currency string,
	start time.Time,
	end time.Time,
) (rates.Series, error) {
	if !f.cfg.ConvertAmounts || currency == f.cfg.BaseCurrency {
		return nil, nil
	}

	closes, err := f.cfg.Rates.Daily(ctx, currency, f.cfg.BaseCurrency, start, end)
	if err != nil {
		if errors.Is(err, common.ErrNoUsableRates) {
			zerolog.Ctx(ctx).Error().Err(err).
				Str("currency", currency).
				Msg("no usable rates for window, conversions degrade to zero")

			return rates.Series{}, nil
		}

		return nil, err
	}

	return rates.Backfill(closes, start, end), nil
}

func (f *Fetcher) parseRow(
	ctx context.Context,
	raw json.RawMessage,
	fxRates rates.Series,
) (*Transaction, error) {
	var row statementRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, errors.Wrap(err, "failed to parse statement row")
	}

	txType := TransactionType(row.Type)
	if txType != TransactionTypeCredit && txType != TransactionTypeDebit {
		return nil, errors.Newf("unsupported transaction type %q for %s", row.Type, row.ReferenceNumber)
	}

	date, err := time.Parse(time.RFC3339, row.Date)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse date %q for %s", row.Date, row.ReferenceNumber)
	}

	description := strings.TrimPrefix(row.Details.Description, cardPrefix)

	tx := &Transaction{
		ID:           row.ReferenceNumber,
		Type:         txType,
		Date:         date.UTC().Truncate(time.Second),
		Amount:       row.Amount.Value.Abs(),
		CurrencyCode: row.Amount.Currency,
		RawCategory:  row.Details.Category,
		Description:  description,
		Reconciled:   true,
	}

	classification, warning := f.cfg.Resolver.Resolve(tx.RawCategory, tx.Description)
	if warning != nil {
		zerolog.Ctx(ctx).Warn().
			Str("raw_category", warning.RawCategory).
			Str("description", warning.Description).
			Bool("excluded", warning.Excluded).
			Msg("category seen in transaction but not in category map")
	}

	tx.CategoryName = classification.Category
	tx.BudgetName = classification.Budget

	audit := map[string]interface{}{}
	if err = json.Unmarshal(raw, &audit); err != nil {
		return nil, errors.Wrap(err, "failed to parse statement row for audit")
	}

	if fxRates != nil {
		rate := fxRates.Rate(tx.Date)
		tx.ForeignCode = f.cfg.BaseCurrency
		tx.ForeignAmount = rate.Mul(tx.Amount).Round(2)

		audit["foreignAmount"] = tx.ForeignAmount
		audit["foreignFxRate"] = rate
	}

	notes, err := json.Marshal(audit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize audit payload")
	}

	tx.Notes = string(notes)

	return tx, nil
}
