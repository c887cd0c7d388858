package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized statement entry. The amount keeps the sign
// it had on the wire; direction is carried by Operation.
type Transaction struct {
	Ref            TransactionRef  `json:"ref" yaml:"ref"`
	EntryRef       string          `json:"entry_ref" yaml:"entry_ref"`
	Amount         decimal.Decimal `json:"amount" yaml:"amount"`
	Currency       string          `json:"currency" yaml:"currency"`
	Operation      Operation       `json:"operation" yaml:"operation"`
	ValDate        time.Time       `json:"val_date" yaml:"val_date"`
	BookDateTime   string          `json:"book_datetime,omitempty" yaml:"book_datetime,omitempty"`
	BAICode        string          `json:"bai_code,omitempty" yaml:"bai_code,omitempty"`
	RemoteInfo     string          `json:"remote_info,omitempty" yaml:"remote_info,omitempty"`
	AdditionalInfo string          `json:"additional_transaction_info,omitempty" yaml:"additional_transaction_info,omitempty"`
	RelatedAcctID  *AccountID      `json:"related_account_id,omitempty" yaml:"related_account_id,omitempty"`
	RelatedBankID  *BankID         `json:"related_account_bank_id,omitempty" yaml:"related_account_bank_id,omitempty"`
}

// Info combines remote info and additional transaction info into a single
// display string: equal values collapse to one, differing values join with
// " / ", and an absent side yields the other verbatim.
func (t Transaction) Info() string {
	remote := strings.TrimSpace(t.RemoteInfo)
	additional := strings.TrimSpace(t.AdditionalInfo)

	if remote != "" && additional != "" {
		if remote == additional {
			return remote
		}
		return remote + " / " + additional
	}
	if remote != "" {
		return remote
	}
	return additional
}

// RelatedAccount composes the related account and bank identifiers into one
// display string. The second return value reports presence: false when
// neither identifier was extracted.
func (t Transaction) RelatedAccount() (string, bool) {
	if t.RelatedAcctID == nil && t.RelatedBankID == nil {
		return "", false
	}
	var acct, bank string
	if t.RelatedAcctID != nil {
		acct = t.RelatedAcctID.String()
	}
	if t.RelatedBankID != nil {
		bank = t.RelatedBankID.String()
	}
	return acct + "/" + bank, true
}
