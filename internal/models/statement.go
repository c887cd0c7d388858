package models

import "time"

// Statement is one bank-to-customer statement: the account, the reporting
// period, the opening and closing balances when the document carries them,
// and the entries in document order.
type Statement struct {
	ID             string        `json:"statement_id" yaml:"statement_id"`
	CreatedTime    time.Time     `json:"created_time" yaml:"created_time"`
	FromTime       time.Time     `json:"from_time" yaml:"from_time"`
	ToTime         time.Time     `json:"to_time" yaml:"to_time"`
	AccountID      AccountID     `json:"account_id" yaml:"account_id"`
	OpeningBalance *Balance      `json:"opening_balance,omitempty" yaml:"opening_balance,omitempty"`
	ClosingBalance *Balance      `json:"closing_balance,omitempty" yaml:"closing_balance,omitempty"`
	Transactions   []Transaction `json:"transactions" yaml:"transactions"`
}
