package camtparser

// XPath expressions for the CAMT.053 elements this parser consumes.
// Statement and entry paths are relative to their enclosing node.
const (
	xpathStatement = "//BkToCstmrStmt/Stmt"

	// Statement level
	xpathStatementID = "Id"
	xpathCreatedTime = "CreDtTm"
	xpathFromTime    = "FrToDt/FrDtTm"
	xpathToTime      = "FrToDt/ToDtTm"
	xpathAccountID   = "Acct/Id"
	xpathBalance     = "Bal"
	xpathEntry       = "Ntry"

	// Balance block
	xpathBalanceDate     = "Dt/Dt"
	xpathBalanceTypeCode = "Tp/CdOrPrtry/Cd"

	// Shared between balances and entries
	xpathAmount         = "Amt"
	xpathCreditDebitInd = "CdtDbtInd"

	// Entry level
	xpathEntryRef      = "NtryRef"
	xpathValueDate     = "ValDt/Dt"
	xpathBookDateTime  = "BookgDt/DtTm"
	xpathBankTxIssuer  = "BkTxCd/Prtry/Issr"
	xpathBankTxCode    = "BkTxCd/Prtry/Cd"
	xpathReferences    = "NtryDtls/TxDtls/Refs"
	xpathRemittance    = "NtryDtls/TxDtls/RmtInf/Ustrd"
	xpathAdditionalTx  = "NtryDtls/TxDtls/AddtlTxInf"
	xpathDebtorAcct    = "NtryDtls/TxDtls/RltdPties/DbtrAcct/Id"
	xpathCreditorAcct  = "NtryDtls/TxDtls/RltdPties/CdtrAcct/Id"
	xpathDebtorAgent   = "NtryDtls/TxDtls/RltdAgts/DbtrAgt/FinInstnId"
	xpathCreditorAgent = "NtryDtls/TxDtls/RltdAgts/CdtrAgt/FinInstnId"

	// Reference bag fields, relative to the Refs subtree
	xpathRefMessageID     = "MsgId"
	xpathRefEndToEndID    = "EndToEndId"
	xpathRefAcctSvcrRef   = "AcctSvcrRef"
	xpathRefPaymentInfoID = "PmtInfId"
	xpathRefInstructionID = "InstrId"
	xpathRefMandateID     = "MndtId"
	xpathRefChequeNumber  = "ChqNb"
	xpathRefClrSysRef     = "ClrSysRef"

	// Identifier fields, relative to an Id or FinInstnId subtree
	xpathBIC       = "BIC"
	xpathBICFI     = "BICFI"
	xpathIBAN      = "IBAN"
	xpathGenericID = "Othr/Id"
)

// Balance type codes classifying a Bal block. Other codes (e.g. intraday
// ITBD) are tolerated and ignored.
const (
	balanceTypeOpening = "OPBD"
	balanceTypeClosing = "CLBD"
)

// baiIssuer guards proprietary bank-transaction codes: a code is only a BAI
// code when the issuer field carries this literal.
const baiIssuer = "BAI"
