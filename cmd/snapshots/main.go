package main

import (
	"context"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/imroc/req/v3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/psedge/firefly-wise-importer/pkg/config"
	"github.com/psedge/firefly-wise-importer/pkg/firefly"
)

// Records a daily balance snapshot of the Firefly accounts the importer
// writes to, so re-runs can be audited against balance drift.
func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	snapshots, err := fetchSnapshots(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to fetch account balances")
	}

	db, err := gorm.Open(postgres.Open(os.Getenv("POSTGRES_CONNECTION_STRING")), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	log.Info().Msg("[Db] start migrations")

	if err = m.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	tx := db.Begin()
	defer tx.Rollback()

	for _, snapshot := range snapshots {
		if err = tx.Clauses(clause.OnConflict{UpdateAll: true}).Save(&snapshot).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to save snapshot")
		}
	}

	if err = tx.Commit().Error; err != nil {
		log.Fatal().Err(err).Msg("failed to commit transaction")
	}

	log.Info().Int("count", len(snapshots)).Msg("recorded balance snapshots")
}

func fetchSnapshots(cfg *config.Config) ([]balanceSnapshot, error) {
	ffSvc := firefly.NewFirefly(cfg.FireflyToken, cfg.FireflyBaseURI, req.DefaultClient())

	accounts, err := ffSvc.ListAccounts(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	// only the accounts the importer targets
	targetIDs := lo.Values(cfg.CurrencyAccounts)
	now := time.Now().UTC()

	var snapshots []balanceSnapshot
	for _, account := range accounts {
		if !account.Attributes.Active {
			continue
		}

		if !lo.Contains(targetIDs, account.Id) {
			continue
		}

		snapshots = append(snapshots, balanceSnapshot{
			AccountID:    account.Id,
			Date:         now,
			CurrencyCode: account.Attributes.CurrencyCode,
			Balance:      account.Attributes.CurrentBalance,
			UpdatedAt:    now,
		})
	}

	return snapshots, nil
}
