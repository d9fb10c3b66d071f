package rates

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/psedge/firefly-wise-importer/pkg/common"
)

const (
	maxAttempts = 5
	retryDelay  = 5 * time.Second
)

// Fetcher downloads daily closes for a currency pair from the Yahoo Finance
// historical CSV endpoint. Pairs that do not trade on weekends or holidays
// come back sparse; callers run the result through Backfill.
type Fetcher struct {
	cl         *req.Client
	baseURI    string
	retryDelay time.Duration
}

func NewFetcher(
	cl *req.Client,
	baseURI string,
) *Fetcher {
	return &Fetcher{
		cl:         cl,
		baseURI:    baseURI,
		retryDelay: retryDelay,
	}
}

// WithRetryDelay overrides the fixed delay between feed attempts.
func (f *Fetcher) WithRetryDelay(delay time.Duration) *Fetcher {
	f.retryDelay = delay
	return f
}

// Daily fetches closes for fromCode/toCode over [start, end]. Non-2xx
// responses are retried with a fixed delay inside a bounded loop; running
// out of attempts is fatal for the run. A response with only "null" closes
// returns common.ErrNoUsableRates.
func (f *Fetcher) Daily(
	ctx context.Context,
	fromCode string,
	toCode string,
	start time.Time,
	end time.Time,
) (Series, error) {
	uri := fmt.Sprintf(
		"%s/v7/finance/download/%s%s=X?period1=%d&period2=%d&interval=1d&events=history",
		f.baseURI, fromCode, toCode, start.Unix(), end.Unix(),
	)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := f.cl.R().
			SetContext(ctx).
			Get(uri)
		if err != nil {
			return nil, err
		}

		if !resp.IsErrorState() {
			return f.parseCsv(resp.String())
		}

		lastErr = errors.Newf("got error response: %v %s", resp.StatusCode, resp.String())
		zerolog.Ctx(ctx).Warn().
			Int("attempt", attempt).
			Int("status", resp.StatusCode).
			Str("pair", fromCode+toCode).
			Msg("rate feed request failed")

		if attempt < maxAttempts {
			time.Sleep(f.retryDelay)
		}
	}

	return nil, errors.Wrapf(lastErr, "rate feed failed after %d attempts", maxAttempts)
}

// parseCsv reads the Date,Open,High,Low,Close,... layout, keeping only rows
// with a real close. "null" closes are non-trading days.
func (f *Fetcher) parseCsv(data string) (Series, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse rate feed csv")
	}

	if len(rows) <= 1 {
		return nil, errors.WithStack(common.ErrNoUsableRates)
	}

	closes := Series{}
	for _, row := range rows[1:] {
		if len(row) < 5 {
			continue
		}

		if row[4] == "null" || row[4] == "" {
			continue
		}

		close, parseErr := decimal.NewFromString(row[4])
		if parseErr != nil {
			return nil, errors.Wrapf(parseErr, "failed to parse close %q for %s", row[4], row[0])
		}

		closes[row[0]] = close
	}

	if len(closes) == 0 {
		return nil, errors.WithStack(common.ErrNoUsableRates)
	}

	return closes, nil
}
