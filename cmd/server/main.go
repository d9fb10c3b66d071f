package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog/log"

	"github.com/psedge/firefly-wise-importer/pkg/category"
	"github.com/psedge/firefly-wise-importer/pkg/config"
	"github.com/psedge/firefly-wise-importer/pkg/firefly"
	"github.com/psedge/firefly-wise-importer/pkg/importer"
	"github.com/psedge/firefly-wise-importer/pkg/rates"
	"github.com/psedge/firefly-wise-importer/pkg/wise"
)

const defaultRatesURI = "https://query1.finance.yahoo.com"

var apiKey string

func main() {
	apiKey = os.Getenv("API_KEY")

	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	r := mux.NewRouter()
	r.Handle("/api/import", NewHandler(newImporter(cfg)))

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("FUNCTIONS_CUSTOMHANDLER_PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler: r,
		Addr:    listenAddr,
		// imports over a long lookback can run for minutes
		WriteTimeout: 15 * time.Minute,
		ReadTimeout:  60 * time.Second,
	}

	panic(srv.ListenAndServe())
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
