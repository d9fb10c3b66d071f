package main

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2026_08_20_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists wise_importer_balance_snapshots
(
    account_id    text not null,
    date          date not null,
    currency_code text,
    balance       decimal,
    updated_at    timestamp,
    constraint wise_importer_balance_snapshots_pk
        primary key (account_id, date)
);
`).Error
			},
		},
	}
}
