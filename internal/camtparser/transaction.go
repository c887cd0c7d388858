package camtparser

import (
	"strings"

	"github.com/wax13003/CAMT53-parser/internal/models"
	"github.com/wax13003/CAMT53-parser/internal/xmlutils"

	"gopkg.in/xmlpath.v2"
)

// parseTransaction extracts one normalized transaction from an Ntry node.
// The stored amount keeps its wire sign; direction is carried by the
// operation field.
func parseTransaction(ntry *xmlpath.Node) (models.Transaction, error) {
	entryRef, err := xmlutils.MandatoryText(ntry, xpathEntryRef)
	if err != nil {
		return models.Transaction{}, err
	}
	refNode, _ := xmlutils.FindNode(ntry, xpathReferences)
	ref := parseTransactionRef(refNode)

	amount, currency, err := parseAmount(ntry)
	if err != nil {
		return models.Transaction{}, err
	}
	indicator, err := parseIndicator(ntry)
	if err != nil {
		return models.Transaction{}, err
	}

	valDate, err := mandatoryDate(ntry, xpathValueDate)
	if err != nil {
		return models.Transaction{}, err
	}
	bookDateTime := xmlutils.OptionalText(ntry, xpathBookDateTime)

	// A proprietary code is only attributed to BAI when the issuer says so;
	// codes from other issuer schemes stay out of the model.
	var baiCode string
	if xmlutils.OptionalText(ntry, xpathBankTxIssuer) == baiIssuer {
		baiCode = xmlutils.OptionalText(ntry, xpathBankTxCode)
	}

	var remoteParts []string
	for _, ustrd := range xmlutils.FindAll(ntry, xpathRemittance) {
		remoteParts = append(remoteParts, xmlutils.OptionalText(ustrd, ""))
	}
	remoteInfo := strings.Join(remoteParts, ", ")
	additionalInfo := xmlutils.OptionalText(ntry, xpathAdditionalTx)

	// Related-party resolution prefers the debtor side and falls back to the
	// creditor side only when the debtor subtree is structurally absent.
	var relatedAcctID *models.AccountID
	if node, ok := firstExisting(ntry, xpathDebtorAcct, xpathCreditorAcct); ok {
		relatedAcctID = parseAccountID(node)
	}
	var relatedBankID *models.BankID
	if node, ok := firstExisting(ntry, xpathDebtorAgent, xpathCreditorAgent); ok {
		relatedBankID = parseBankID(node)
	}

	return models.Transaction{
		Ref:            ref,
		EntryRef:       entryRef,
		Amount:         amount,
		Currency:       currency,
		Operation:      models.OperationFromIndicator(indicator),
		ValDate:        valDate,
		BookDateTime:   bookDateTime,
		BAICode:        baiCode,
		RemoteInfo:     remoteInfo,
		AdditionalInfo: additionalInfo,
		RelatedAcctID:  relatedAcctID,
		RelatedBankID:  relatedBankID,
	}, nil
}

// parseTransactionRef builds the reference bag from a Refs subtree. An
// absent subtree yields an empty bag, never an absent one: callers always
// receive a usable value.
func parseTransactionRef(refs *xmlpath.Node) models.TransactionRef {
	if refs == nil {
		return models.TransactionRef{}
	}
	return models.TransactionRef{
		MessageID:          xmlutils.OptionalText(refs, xpathRefMessageID),
		EndToEndID:         xmlutils.OptionalText(refs, xpathRefEndToEndID),
		AccountServicerRef: xmlutils.OptionalText(refs, xpathRefAcctSvcrRef),
		PaymentInfoID:      xmlutils.OptionalText(refs, xpathRefPaymentInfoID),
		InstructionID:      xmlutils.OptionalText(refs, xpathRefInstructionID),
		MandateID:          xmlutils.OptionalText(refs, xpathRefMandateID),
		ChequeNumber:       xmlutils.OptionalText(refs, xpathRefChequeNumber),
		ClearingSystemRef:  xmlutils.OptionalText(refs, xpathRefClrSysRef),
	}
}

// parseBankID builds a bank identifier from a FinInstnId subtree, trying BIC
// then BICFI for the primary code. Returns nil when no underlying data
// exists; a present container alone does not make an identifier.
func parseBankID(node *xmlpath.Node) *models.BankID {
	bic := xmlutils.OptionalText(node, xpathBIC)
	if bic == "" {
		bic = xmlutils.OptionalText(node, xpathBICFI)
	}
	return models.NewBankID(bic, xmlutils.OptionalText(node, xpathGenericID))
}

// parseAccountID builds an account identifier from an Id subtree. Same
// presence rule as parseBankID.
func parseAccountID(node *xmlpath.Node) *models.AccountID {
	return models.NewAccountID(
		xmlutils.OptionalText(node, xpathIBAN),
		xmlutils.OptionalText(node, xpathGenericID),
	)
}
