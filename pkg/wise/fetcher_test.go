package wise_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/psedge/firefly-wise-importer/pkg/category"
	"github.com/psedge/firefly-wise-importer/pkg/common"
	"github.com/psedge/firefly-wise-importer/pkg/config"
	"github.com/psedge/firefly-wise-importer/pkg/rates"
	"github.com/psedge/firefly-wise-importer/pkg/wise"
)

const statementBody = `{
  "transactions": [
    {
      "type": "CREDIT",
      "date": "2024-05-06T10:30:00.123456Z",
      "amount": {"value": 150.25, "currency": "EUR"},
      "details": {"category": "groceries", "description": "Received money from Alice"},
      "referenceNumber": "TRANSFER-1"
    },
    {
      "type": "DEBIT",
      "date": "2024-05-07T08:00:00.000Z",
      "amount": {"value": -12.5, "currency": "EUR"},
      "details": {"description": "Card transaction of Coffee shop"},
      "referenceNumber": "CARD-2"
    }
  ]
}`

type stubRates struct {
	closes rates.Series
	err    error
	calls  int
}

func (s *stubRates) Daily(
	_ context.Context,
	_ string,
	_ string,
	_ time.Time,
	_ time.Time,
) (rates.Series, error) {
	s.calls++
	return s.closes, s.err
}

func newResolver() *category.Resolver {
	return category.NewResolver(map[string]config.CategoryMapping{
		"groceries": {Category: "Food", Budget: "Living"},
	}, config.DefaultExclusions)
}

func newFetcher(cl *req.Client, rateSource wise.RateSource, convert bool) *wise.Fetcher {
	return wise.NewFetcher(&wise.Config{
		Client:         cl,
		BaseURI:        "https://wise.example.com",
		ApiToken:       "wise-token",
		Resolver:       newResolver(),
		Rates:          rateSource,
		ConvertAmounts: convert,
		BaseCurrency:   "GBP",
	})
}

func fetchRequest() *wise.FetchRequest {
	return &wise.FetchRequest{
		ProfileID: "3750372",
		AccountID: "4067808",
		Currency:  "EUR",
		Start:     time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC),
	}
}

func TestFetchNormalizesRows(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	fetcher := newFetcher(cl, &stubRates{}, false)

	httpmock.RegisterResponder("GET",
		`=~^https://wise\.example\.com/v3/profiles/3750372/borderless-accounts/4067808/statement\.json`,
		func(request *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer wise-token", request.Header.Get("Authorization"))
			assert.Equal(t, "EUR", request.URL.Query().Get("currency"))
			assert.Equal(t, "2024-05-06T00:00:00Z", request.URL.Query().Get("intervalStart"))
			assert.Equal(t, "2024-05-10T23:59:59Z", request.URL.Query().Get("intervalEnd"))

			return httpmock.NewStringResponse(200, statementBody), nil
		})

	transactions, err := fetcher.Fetch(context.TODO(), fetchRequest())
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)

	credit := transactions[0]
	assert.Equal(t, "TRANSFER-1", credit.ID)
	assert.Equal(t, wise.TransactionTypeCredit, credit.Type)
	assert.Equal(t, time.Date(2024, 5, 6, 10, 30, 0, 0, time.UTC), credit.Date)
	assert.True(t, credit.Amount.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, "EUR", credit.CurrencyCode)
	assert.Equal(t, "Food", credit.CategoryName)
	assert.Equal(t, "Living", credit.BudgetName)
	assert.True(t, credit.Reconciled)
	assert.Empty(t, credit.ForeignCode)
	assert.True(t, credit.ForeignAmount.IsZero())
	assert.Contains(t, credit.Notes, "TRANSFER-1")

	debit := transactions[1]
	assert.Equal(t, wise.TransactionTypeDebit, debit.Type)
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "Coffee shop", debit.Description)
	assert.Empty(t, debit.CategoryName)
	assert.Empty(t, debit.BudgetName)
}

func TestFetchUnauthorized(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	fetcher := newFetcher(cl, &stubRates{}, false)

	httpmock.RegisterResponder("GET",
		`=~^https://wise\.example\.com/v3/profiles/`,
		httpmock.NewStringResponder(401, "unauthorized"))

	_, err := fetcher.Fetch(context.TODO(), fetchRequest())
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestFetchUpstreamError(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	fetcher := newFetcher(cl, &stubRates{}, false)

	httpmock.RegisterResponder("GET",
		`=~^https://wise\.example\.com/v3/profiles/`,
		httpmock.NewStringResponder(500, "boom"))

	_, err := fetcher.Fetch(context.TODO(), fetchRequest())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrUnauthorized))
}

func TestFetchConvertsAmounts(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	// closes for 3 of 5 days, the 7th is missing and carries the 6th forward
	rateSource := &stubRates{closes: rates.Series{
		"2024-05-06": decimal.RequireFromString("0.86"),
		"2024-05-08": decimal.RequireFromString("0.87"),
		"2024-05-10": decimal.RequireFromString("0.88"),
	}}

	fetcher := newFetcher(cl, rateSource, true)

	httpmock.RegisterResponder("GET",
		`=~^https://wise\.example\.com/v3/profiles/`,
		httpmock.NewStringResponder(200, statementBody))

	transactions, err := fetcher.Fetch(context.TODO(), fetchRequest())
	assert.NoError(t, err)
	assert.Equal(t, 1, rateSource.calls)
	assert.Len(t, transactions, 2)

	credit := transactions[0]
	assert.Equal(t, "GBP", credit.ForeignCode)
	assert.True(t, credit.ForeignAmount.Equal(decimal.RequireFromString("129.22")),
		credit.ForeignAmount.String())
	assert.Contains(t, credit.Notes, "foreignFxRate")

	// the 7th has no close, the 6th carries forward: 12.5 * 0.86
	debit := transactions[1]
	assert.True(t, debit.ForeignAmount.Equal(decimal.RequireFromString("10.75")),
		debit.ForeignAmount.String())
}

func TestFetchDegradesWithoutUsableRates(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	rateSource := &stubRates{err: common.ErrNoUsableRates}
	fetcher := newFetcher(cl, rateSource, true)

	httpmock.RegisterResponder("GET",
		`=~^https://wise\.example\.com/v3/profiles/`,
		httpmock.NewStringResponder(200, statementBody))

	transactions, err := fetcher.Fetch(context.TODO(), fetchRequest())
	assert.NoError(t, err)

	for _, tx := range transactions {
		assert.True(t, tx.ForeignAmount.IsZero())
	}
}

func TestFetchSameCurrencySkipsRates(t *testing.T) {
	cl := req.DefaultClient()
	httpmock.ActivateNonDefault(cl.GetClient())
	defer httpmock.DeactivateAndReset()

	rateSource := &stubRates{}
	fetcher := newFetcher(cl, rateSource, true)

	httpmock.RegisterResponder("GET",
		`=~^https://wise\.example\.com/v3/profiles/`,
		httpmock.NewStringResponder(200, `{"transactions":[]}`))

	request := fetchRequest()
	request.Currency = "GBP"

	transactions, err := fetcher.Fetch(context.TODO(), request)
	assert.NoError(t, err)
	assert.Empty(t, transactions)
	assert.Zero(t, rateSource.calls)
}
