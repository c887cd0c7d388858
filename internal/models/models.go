// Package models provides the normalized record model produced by CAMT.053
// extraction. All entities are immutable value objects: constructed once from
// a single XML subtree and never mutated afterwards.
package models

import "github.com/wax13003/CAMT53-parser/internal/parsererror"

// CreditOrDebit is the CdtDbtInd indicator as it appears on the wire.
type CreditOrDebit string

const (
	Credit CreditOrDebit = "CRDT"
	Debit  CreditOrDebit = "DBIT"
)

// ParseCreditOrDebit maps an indicator literal to the enumeration, failing
// with an InvalidEnumError on any other value.
func ParseCreditOrDebit(value string) (CreditOrDebit, error) {
	switch CreditOrDebit(value) {
	case Credit:
		return Credit, nil
	case Debit:
		return Debit, nil
	default:
		return "", &parsererror.InvalidEnumError{Value: value}
	}
}

// Operation is the normalized direction of a transaction. The stored amount
// is never negated; the direction is carried here.
type Operation string

const (
	OperationCredit Operation = "credit"
	OperationDebit  Operation = "debit"
)

// OperationFromIndicator maps a wire indicator to the normalized operation.
func OperationFromIndicator(ind CreditOrDebit) Operation {
	if ind == Debit {
		return OperationDebit
	}
	return OperationCredit
}
