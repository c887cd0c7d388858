package models

import "strings"

// TransactionRef is the reference bag of a transaction. Unlike BankID and
// AccountID it is always constructed, even when the reference subtree is
// absent: an all-empty value means "no reference data found".
type TransactionRef struct {
	MessageID          string `json:"message_id,omitempty" yaml:"message_id,omitempty"`
	EndToEndID         string `json:"end_to_end_id,omitempty" yaml:"end_to_end_id,omitempty"`
	AccountServicerRef string `json:"account_servicer_ref,omitempty" yaml:"account_servicer_ref,omitempty"`
	PaymentInfoID      string `json:"payment_info_id,omitempty" yaml:"payment_info_id,omitempty"`
	InstructionID      string `json:"instruction_id,omitempty" yaml:"instruction_id,omitempty"`
	MandateID          string `json:"mandate_id,omitempty" yaml:"mandate_id,omitempty"`
	ChequeNumber       string `json:"cheque_number,omitempty" yaml:"cheque_number,omitempty"`
	ClearingSystemRef  string `json:"clearing_system_ref,omitempty" yaml:"clearing_system_ref,omitempty"`
}

// String renders the populated fields as comma-separated key=value pairs.
func (r TransactionRef) String() string {
	pairs := make([]string, 0, 8)
	for _, kv := range []struct{ key, value string }{
		{"message_id", r.MessageID},
		{"end_to_end_id", r.EndToEndID},
		{"account_servicer_ref", r.AccountServicerRef},
		{"payment_info_id", r.PaymentInfoID},
		{"instruction_id", r.InstructionID},
		{"mandate_id", r.MandateID},
		{"cheque_number", r.ChequeNumber},
		{"clearing_system_ref", r.ClearingSystemRef},
	} {
		if kv.value != "" {
			pairs = append(pairs, kv.key+"="+kv.value)
		}
	}
	return strings.Join(pairs, ", ")
}

// IsEmpty reports whether no reference data was found.
func (r TransactionRef) IsEmpty() bool {
	return r == TransactionRef{}
}
