package main

import (
	"context"
	"os"

	"github.com/imroc/req/v3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/psedge/firefly-wise-importer/pkg/category"
	"github.com/psedge/firefly-wise-importer/pkg/config"
	"github.com/psedge/firefly-wise-importer/pkg/firefly"
	"github.com/psedge/firefly-wise-importer/pkg/importer"
	"github.com/psedge/firefly-wise-importer/pkg/rates"
	"github.com/psedge/firefly-wise-importer/pkg/wise"
)

const defaultRatesURI = "https://query1.finance.yahoo.com"

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := log.Logger.WithContext(context.Background())

	if err = newImporter(cfg).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().Msg("successfully ran TransferWise import")
}

func newImporter(cfg *config.Config) *importer.Importer {
	ratesURI := os.Getenv("RATES_BASE_URI")
	if ratesURI == "" {
		ratesURI = defaultRatesURI
	}

	fetcher := wise.NewFetcher(&wise.Config{
		Client:         req.DefaultClient(),
		BaseURI:        cfg.WiseBaseURI,
		ApiToken:       cfg.WiseToken,
		Resolver:       category.NewResolver(cfg.CategoryMap, cfg.TransferExclusions),
		Rates:          rates.NewFetcher(req.DefaultClient(), ratesURI),
		ConvertAmounts: cfg.ConvertAmounts,
		BaseCurrency:   cfg.BaseCurrency,
	})

	return importer.NewImporter(&importer.Config{
		Fetcher:          fetcher,
		Ledger:           firefly.NewFirefly(cfg.FireflyToken, cfg.FireflyBaseURI, req.DefaultClient()),
		ProfileID:        cfg.WiseProfileID,
		AccountID:        cfg.WiseAccountID,
		Currencies:       cfg.FetchCurrencies,
		CurrencyAccounts: cfg.CurrencyAccounts,
		PeriodDays:       cfg.FetchPeriodDays,
		DryRun:           cfg.DryRun,
	})
}
