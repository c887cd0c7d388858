package camtparser

import (
	"time"

	"github.com/wax13003/CAMT53-parser/internal/dateutils"
	"github.com/wax13003/CAMT53-parser/internal/models"
	"github.com/wax13003/CAMT53-parser/internal/parsererror"
	"github.com/wax13003/CAMT53-parser/internal/xmlutils"

	"github.com/shopspring/decimal"
	"gopkg.in/xmlpath.v2"
)

// ParseStatement extracts one statement from a Stmt node: mandatory
// identification and period fields, the account identifier, any opening and
// closing balances, and the entries in document order.
func ParseStatement(stmt *xmlpath.Node) (models.Statement, error) {
	statementID, err := xmlutils.MandatoryText(stmt, xpathStatementID)
	if err != nil {
		return models.Statement{}, err
	}
	createdTime, err := mandatoryTimestamp(stmt, xpathCreatedTime)
	if err != nil {
		return models.Statement{}, err
	}
	fromTime, err := mandatoryTimestamp(stmt, xpathFromTime)
	if err != nil {
		return models.Statement{}, err
	}
	toTime, err := mandatoryTimestamp(stmt, xpathToTime)
	if err != nil {
		return models.Statement{}, err
	}

	acctNode, ok := xmlutils.FindNode(stmt, xpathAccountID)
	if !ok {
		return models.Statement{}, &parsererror.MissingFieldError{Path: xpathAccountID}
	}
	accountID := parseAccountID(acctNode)
	if accountID == nil {
		return models.Statement{}, &parsererror.MissingAccountIDError{StatementID: statementID}
	}

	var openingBalance, closingBalance *models.Balance
	for _, bal := range xmlutils.FindAll(stmt, xpathBalance) {
		balance, typeCode, err := parseBalance(bal)
		if err != nil {
			return models.Statement{}, err
		}
		switch typeCode {
		case balanceTypeOpening:
			openingBalance = balance
		case balanceTypeClosing:
			closingBalance = balance
		}
	}

	entries := xmlutils.FindAll(stmt, xpathEntry)
	transactions := make([]models.Transaction, 0, len(entries))
	for _, ntry := range entries {
		tx, err := parseTransaction(ntry)
		if err != nil {
			return models.Statement{}, err
		}
		transactions = append(transactions, tx)
	}
	if len(transactions) == 0 {
		log.WithField("statement", statementID).Warning("No transactions found in statement")
	}

	return models.Statement{
		ID:             statementID,
		CreatedTime:    createdTime,
		FromTime:       fromTime,
		ToTime:         toTime,
		AccountID:      *accountID,
		OpeningBalance: openingBalance,
		ClosingBalance: closingBalance,
		Transactions:   transactions,
	}, nil
}

// parseBalance extracts one Bal block and its classifying type code. A DBIT
// indicator negates the stored amount; transactions do not share this rule.
func parseBalance(bal *xmlpath.Node) (*models.Balance, string, error) {
	date, err := mandatoryDate(bal, xpathBalanceDate)
	if err != nil {
		return nil, "", err
	}
	amount, currency, err := parseAmount(bal)
	if err != nil {
		return nil, "", err
	}
	indicator, err := parseIndicator(bal)
	if err != nil {
		return nil, "", err
	}
	if indicator == models.Debit {
		amount = amount.Neg()
	}
	typeCode, err := xmlutils.MandatoryText(bal, xpathBalanceTypeCode)
	if err != nil {
		return nil, "", err
	}

	return &models.Balance{Amount: amount, Currency: currency, Date: date}, typeCode, nil
}

// parseAmount reads the Amt element under node: the decimal text plus the
// mandatory Ccy attribute.
func parseAmount(node *xmlpath.Node) (decimal.Decimal, string, error) {
	amt, ok := xmlutils.FindNode(node, xpathAmount)
	if !ok {
		return decimal.Decimal{}, "", &parsererror.MissingFieldError{Path: xpathAmount}
	}
	currency, err := xmlutils.Attribute(amt, "Ccy")
	if err != nil {
		return decimal.Decimal{}, "", err
	}
	text, err := xmlutils.MandatoryText(amt, "")
	if err != nil {
		return decimal.Decimal{}, "", &parsererror.MissingFieldError{Path: xpathAmount}
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, "", &parsererror.ParseError{Field: xpathAmount, Value: text, Err: err}
	}
	return amount, currency, nil
}

// parseIndicator reads and validates the CdtDbtInd element under node.
func parseIndicator(node *xmlpath.Node) (models.CreditOrDebit, error) {
	text, err := xmlutils.MandatoryText(node, xpathCreditDebitInd)
	if err != nil {
		return "", err
	}
	return models.ParseCreditOrDebit(text)
}

// mandatoryDate reads a mandatory calendar date, logging a warning when the
// value only parsed after truncating a trailing time fragment.
func mandatoryDate(node *xmlpath.Node, expr string) (time.Time, error) {
	text, err := xmlutils.MandatoryText(node, expr)
	if err != nil {
		return time.Time{}, err
	}
	date, truncated, err := dateutils.ParseISODate(text)
	if err != nil {
		return time.Time{}, err
	}
	if truncated {
		log.WithField("value", text).Warning("Date-only field carried a time fragment, truncated")
	}
	return date, nil
}

// mandatoryTimestamp reads a mandatory ISO-8601 date-time.
func mandatoryTimestamp(node *xmlpath.Node, expr string) (time.Time, error) {
	text, err := xmlutils.MandatoryText(node, expr)
	if err != nil {
		return time.Time{}, err
	}
	t, err := dateutils.ParseISOTimestamp(text)
	if err != nil {
		return time.Time{}, &parsererror.MalformedTimestampError{Field: expr, Value: text, Err: err}
	}
	return t, nil
}
