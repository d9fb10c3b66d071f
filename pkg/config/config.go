package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Config is built once at startup and passed into every component. Nothing
// mutates it after Load returns.
type Config struct {
	WiseBaseURI    string
	FireflyBaseURI string
	WiseToken      string
	FireflyToken   string

	WiseProfileID string
	WiseAccountID string

	FetchPeriodDays int
	FetchCurrencies []string
	ConvertAmounts  bool
	BaseCurrency    string
	DryRun          bool

	// CategoryMap maps a raw Wise category key to ledger names.
	CategoryMap map[string]CategoryMapping

	// CurrencyAccounts maps a currency code to the Firefly asset account id
	// holding that currency.
	CurrencyAccounts map[string]string

	// TransferExclusions are description heuristics marking internal
	// transfers that should stay uncategorized. The defaults mirror one
	// specific deployment and belong in categories-map.json, not here.
	TransferExclusions Exclusions
}

type CategoryMapping struct {
	Category string `json:"category"`
	Budget   string `json:"budget"`
}

type Exclusions struct {
	Contains []string `json:"contains"`
	Exact    []string `json:"exact"`
}

type categoriesFile struct {
	Categories         map[string]CategoryMapping `json:"categories"`
	TransferExclusions *Exclusions                `json:"transfer_exclusions"`
}

// DefaultExclusions is applied when categories-map.json carries no
// transfer_exclusions key.
var DefaultExclusions = Exclusions{
	Contains: []string{"Converted", "Received"},
	Exact:    []string{"Sent money to Homerental Nordic AB"},
}

func Load(configDir string) (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.WiseBaseURI, err = requiredString("TRANSFERWISE_BASE_URI"); err != nil {
		return nil, err
	}
	if cfg.FireflyBaseURI, err = requiredString("FIREFLY_BASE_URI"); err != nil {
		return nil, err
	}
	if cfg.WiseToken, err = requiredString("TRANSFERWISE_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.FireflyToken, err = requiredString("FIREFLY_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.WiseProfileID, err = requiredString("TRANSFERWISE_PROFILE_ID"); err != nil {
		return nil, err
	}
	if cfg.WiseAccountID, err = requiredString("TRANSFERWISE_ACCOUNT_ID"); err != nil {
		return nil, err
	}
	if cfg.BaseCurrency, err = requiredString("BASE_CURRENCY"); err != nil {
		return nil, err
	}

	period, err := requiredString("FETCH_PERIOD")
	if err != nil {
		return nil, err
	}
	if cfg.FetchPeriodDays, err = strconv.Atoi(period); err != nil {
		return nil, errors.Wrap(err, "FETCH_PERIOD must be an integer number of days")
	}
	if cfg.FetchPeriodDays <= 0 {
		return nil, errors.Newf("FETCH_PERIOD must be positive, got %d", cfg.FetchPeriodDays)
	}

	currencies, err := requiredString("FETCH_CURRENCIES")
	if err != nil {
		return nil, err
	}
	for _, cur := range strings.Split(currencies, ",") {
		if cur = strings.TrimSpace(cur); cur != "" {
			cfg.FetchCurrencies = append(cfg.FetchCurrencies, cur)
		}
	}
	if len(cfg.FetchCurrencies) == 0 {
		return nil, errors.New("FETCH_CURRENCIES contains no currency codes")
	}

	if cfg.ConvertAmounts, err = requiredBool("CONVERT_AMOUNTS"); err != nil {
		return nil, err
	}

	if raw := os.Getenv("DRY_RUN"); raw != "" {
		if cfg.DryRun, err = strconv.ParseBool(raw); err != nil {
			return nil, errors.Wrap(err, "DRY_RUN must be a boolean")
		}
	}

	if err = cfg.loadCategories(configDir + "/categories-map.json"); err != nil {
		return nil, err
	}
	if err = cfg.loadAccounts(configDir + "/accounts.json"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadCategories(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	var file categoriesFile
	if err = json.Unmarshal(data, &file); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	// Older category maps are a flat object without the categories wrapper.
	if file.Categories == nil {
		if err = json.Unmarshal(data, &file.Categories); err != nil {
			return errors.Wrapf(err, "failed to parse %s", path)
		}
	}

	c.CategoryMap = file.Categories
	if file.TransferExclusions != nil {
		c.TransferExclusions = *file.TransferExclusions
	} else {
		c.TransferExclusions = DefaultExclusions
	}

	return nil
}

func (c *Config) loadAccounts(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	if err = json.Unmarshal(data, &c.CurrencyAccounts); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	if len(c.CurrencyAccounts) == 0 {
		return errors.Newf("%s maps no currencies", path)
	}

	return nil
}

func requiredString(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", errors.Newf("%s was not set in .env or ENV", key)
	}

	return val, nil
}

func requiredBool(key string) (bool, error) {
	val, err := requiredString(key)
	if err != nil {
		return false, err
	}

	parsed, err := strconv.ParseBool(strings.ToLower(val))
	if err != nil {
		return false, errors.Wrapf(err, "%s must be a boolean", key)
	}

	return parsed, nil
}
