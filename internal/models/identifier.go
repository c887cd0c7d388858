package models

// BankID identifies a financial institution by BIC and/or a generic id.
// A BankID exists only when at least one field is present; extraction
// returns nil rather than an empty value when no underlying data exists.
type BankID struct {
	BIC string `json:"bic,omitempty" yaml:"bic,omitempty"`
	ID  string `json:"id,omitempty" yaml:"id,omitempty"`
}

// String prefers the BIC over the generic id.
func (b BankID) String() string {
	if b.BIC != "" {
		return b.BIC
	}
	return b.ID
}

// NewBankID returns a BankID when at least one of bic or id is non-empty,
// nil otherwise.
func NewBankID(bic, id string) *BankID {
	if bic == "" && id == "" {
		return nil
	}
	return &BankID{BIC: bic, ID: id}
}

// AccountID identifies an account by IBAN and/or a generic id. The same
// presence rule as BankID applies.
type AccountID struct {
	IBAN string `json:"iban,omitempty" yaml:"iban,omitempty"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

// String prefers the IBAN over the generic id.
func (a AccountID) String() string {
	if a.IBAN != "" {
		return a.IBAN
	}
	return a.ID
}

// NewAccountID returns an AccountID when at least one of iban or id is
// non-empty, nil otherwise.
func NewAccountID(iban, id string) *AccountID {
	if iban == "" && id == "" {
		return nil
	}
	return &AccountID{IBAN: iban, ID: id}
}
