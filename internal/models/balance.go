package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is an account balance at a calendar date. The amount is signed:
// a balance reported with a DBIT indicator is stored negated, unlike
// transaction amounts which keep their wire value.
type Balance struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`
	Date     time.Time       `json:"date" yaml:"date"`
}
