package main

import (
	"time"

	"github.com/shopspring/decimal"
)

type balanceSnapshot struct {
	AccountID    string    `gorm:"primaryKey"`
	Date         time.Time `gorm:"type:date;primaryKey"`
	CurrencyCode string
	Balance      decimal.Decimal
	UpdatedAt    time.Time
}

func (s balanceSnapshot) TableName() string {
	return "wise_importer_balance_snapshots"
}
