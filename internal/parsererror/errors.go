// Package parsererror defines the error taxonomy for CAMT.053 extraction.
// All errors are fatal to the enclosing statement or document parse; there
// is no partial-statement recovery.
package parsererror

import "fmt"

// MissingFieldError reports a mandatory text field absent at the given path.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing mandatory element (%s)", e.Path)
}

// MissingAttributeError reports a mandatory attribute absent on an element.
type MissingAttributeError struct {
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing mandatory attribute (%s)", e.Attr)
}

// InvalidEnumError reports an unrecognized literal in a closed enumeration,
// such as a credit/debit indicator that is neither CRDT nor DBIT.
type InvalidEnumError struct {
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid enumeration value '%s'", e.Value)
}

// MissingAccountIDError reports a statement whose account identifier could
// not be constructed. The statement id is included when it was already known.
type MissingAccountIDError struct {
	StatementID string
}

func (e *MissingAccountIDError) Error() string {
	if e.StatementID != "" {
		return fmt.Sprintf("statement %s: missing account identifier", e.StatementID)
	}
	return "missing account identifier"
}

// MalformedDateError reports a calendar date that failed strict ISO-8601
// parsing and the truncation retry.
type MalformedDateError struct {
	Value string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date '%s': %v", e.Value, e.Err)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}

// MalformedTimestampError reports an unparsable ISO-8601 date-time.
type MalformedTimestampError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}

// ParseError reports a value that was present but could not be converted,
// such as a non-numeric amount.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
