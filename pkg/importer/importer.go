package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/psedge/firefly-wise-importer/pkg/common"
	"github.com/psedge/firefly-wise-importer/pkg/firefly"
	"github.com/psedge/firefly-wise-importer/pkg/wise"
)

type Config struct {
	Fetcher StatementFetcher
	Ledger  Ledger

	ProfileID string
	AccountID string

	Currencies       []string
	CurrencyAccounts map[string]string

	PeriodDays int
	DryRun     bool

	// Now is swappable for tests. Defaults to time.Now.
	Now func() time.Time
}

// Importer drives one run: window by window, currency by currency, fetch
// then reconcile. Everything is sequential, one request in flight at a time.
type Importer struct {
	cfg *Config
}

func NewImporter(cfg *Config) *Importer {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Importer{
		cfg: cfg,
	}
}

func (i *Importer) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().
		Str("run_id", uuid.NewString()).
		Logger()
	ctx = logger.WithContext(ctx)

	report := &strings.Builder{}

	for _, window := range PlanWindows(i.cfg.Now(), i.cfg.PeriodDays) {
		for _, currency := range i.cfg.Currencies {
			logger.Info().
				Str("currency", currency).
				Time("start", window.Start).
				Time("end", window.End).
				Msg("fetching transactions")

			transactions, err := i.cfg.Fetcher.Fetch(ctx, &wise.FetchRequest{
				ProfileID: i.cfg.ProfileID,
				AccountID: i.cfg.AccountID,
				Currency:  currency,
				Start:     window.Start,
				End:       window.End,
			})
			if err != nil {
				return err
			}

			logger.Info().
				Int("count", len(transactions)).
				Str("currency", currency).
				Msg("writing transactions")

			for _, tx := range transactions {
				accountID, ok := i.cfg.CurrencyAccounts[tx.CurrencyCode]
				if !ok {
					return errors.Wrapf(common.ErrMissingAccount, "currency %s", tx.CurrencyCode)
				}

				tx.AssignAccount(accountID)

				if err = i.reconcile(ctx, tx, report); err != nil {
					return err
				}
			}
		}
	}

	if i.cfg.DryRun {
		logger.Info().Msgf("dry run, nothing written:\n%s", report.String())
	}

	return nil
}

// reconcile performs the search-then-upsert cycle for one transaction:
// zero matches create, one match updates in place, anything more is
// corruption and stops the run.
func (i *Importer) reconcile(
	ctx context.Context,
	tx *wise.Transaction,
	report *strings.Builder,
) error {
	matches, err := i.cfg.Ledger.SearchTransactions(ctx, tx.CorrelationKey())
	if err != nil {
		return err
	}

	payload := BuildPayload(tx)

	switch {
	case len(matches) > 1:
		ids := lo.Map(matches, func(m *firefly.TransactionRead, _ int) string {
			return m.Id
		})

		return errors.Wrapf(common.ErrAmbiguousMatch, "key %s matched ids %v", tx.CorrelationKey(), ids)
	case len(matches) == 1:
		if i.cfg.DryRun {
			i.renderPlanned(report, "update "+matches[0].Id, payload)
			return nil
		}

		return i.cfg.Ledger.UpdateTransaction(ctx, matches[0].Id, payload)
	default:
		if i.cfg.DryRun {
			i.renderPlanned(report, "create", payload)
			return nil
		}

		err = i.cfg.Ledger.CreateTransaction(ctx, payload)
		if errors.Is(err, common.ErrDuplicate) {
			zerolog.Ctx(ctx).Error().
				Str("key", tx.CorrelationKey()).
				Msg("ledger rejected create as duplicate, skipping")

			return nil
		}

		return err
	}
}

func (i *Importer) renderPlanned(
	report *strings.Builder,
	action string,
	payload *firefly.TransactionRequest,
) {
	report.WriteString(fmt.Sprintf("%s: %s", action, spew.Sdump(payload.Transactions[0])))
	report.WriteString("====================\n")
}
