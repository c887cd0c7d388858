package camtparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wax13003/CAMT53-parser/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log = logrus.New()
	log.SetLevel(logrus.DebugLevel)
}

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <GrpHdr>
      <MsgId>MSG-1</MsgId>
      <CreDtTm>2024-02-01T00:06:00Z</CreDtTm>
    </GrpHdr>
    <Stmt>
      <Id>STMT-2024-001</Id>
      <CreDtTm>2024-02-01T00:06:00+01:00</CreDtTm>
      <FrToDt>
        <FrDtTm>2024-01-01T00:00:00+01:00</FrDtTm>
        <ToDtTm>2024-01-31T23:59:59+01:00</ToDtTm>
      </FrToDt>
      <Acct>
        <Id>
          <IBAN>CH9300762011623852957</IBAN>
        </Id>
      </Acct>
      <Bal>
        <Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp>
        <Amt Ccy="EUR">100.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Dt><Dt>2024-01-01</Dt></Dt>
      </Bal>
      <Bal>
        <Tp><CdOrPrtry><Cd>CLBD</Cd></CdOrPrtry></Tp>
        <Amt Ccy="EUR">50.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <Dt><Dt>2024-01-31</Dt></Dt>
      </Bal>
      <Ntry>
        <NtryRef>ENTRY-1</NtryRef>
        <Amt Ccy="EUR">150.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt><DtTm>2024-01-15T09:30:00+01:00</DtTm></BookgDt>
        <ValDt><Dt>2024-01-15</Dt></ValDt>
        <BkTxCd><Prtry><Cd>165</Cd><Issr>BAI</Issr></Prtry></BkTxCd>
        <NtryDtls>
          <TxDtls>
            <Refs>
              <MsgId>M-1</MsgId>
              <EndToEndId>E2E-1</EndToEndId>
            </Refs>
            <RmtInf><Ustrd>Invoice 123</Ustrd></RmtInf>
            <AddtlTxInf>Payment for invoice</AddtlTxInf>
            <RltdPties>
              <DbtrAcct><Id><IBAN>DE89370400440532013000</IBAN></Id></DbtrAcct>
            </RltdPties>
            <RltdAgts>
              <DbtrAgt><FinInstnId><BIC>COBADEFFXXX</BIC></FinInstnId></DbtrAgt>
            </RltdAgts>
          </TxDtls>
        </NtryDtls>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestParseEndToEnd(t *testing.T) {
	statements, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, "STMT-2024-001", stmt.ID)
	assert.Equal(t, "CH9300762011623852957", stmt.AccountID.String())
	assert.Equal(t, 2024, stmt.CreatedTime.Year())
	assert.Equal(t, 2024, stmt.FromTime.Year())
	assert.True(t, stmt.FromTime.Before(stmt.ToTime))

	require.NotNil(t, stmt.OpeningBalance)
	assert.True(t, decimal.RequireFromString("100.00").Equal(stmt.OpeningBalance.Amount))
	assert.Equal(t, "EUR", stmt.OpeningBalance.Currency)
	assert.Equal(t, "2024-01-01", stmt.OpeningBalance.Date.Format("2006-01-02"))

	require.NotNil(t, stmt.ClosingBalance, "closing balance extracted")
	assert.True(t, decimal.RequireFromString("-50.00").Equal(stmt.ClosingBalance.Amount),
		"DBIT balance is stored negated, got %s", stmt.ClosingBalance.Amount)

	require.Len(t, stmt.Transactions, 1)
	tx := stmt.Transactions[0]
	assert.Equal(t, "ENTRY-1", tx.EntryRef)
	assert.True(t, decimal.RequireFromString("150.00").Equal(tx.Amount),
		"transaction amount is never negated")
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, models.OperationCredit, tx.Operation)
	assert.Equal(t, "2024-01-15", tx.ValDate.Format("2006-01-02"))
	assert.Equal(t, "2024-01-15T09:30:00+01:00", tx.BookDateTime, "booking timestamp kept verbatim")
	assert.Equal(t, "165", tx.BAICode)
	assert.Equal(t, "Invoice 123", tx.RemoteInfo)
	assert.Equal(t, "Payment for invoice", tx.AdditionalInfo)
	assert.Equal(t, "Invoice 123 / Payment for invoice", tx.Info())
	assert.Equal(t, "M-1", tx.Ref.MessageID)
	assert.Equal(t, "E2E-1", tx.Ref.EndToEndID)
	require.NotNil(t, tx.RelatedAcctID)
	assert.Equal(t, "DE89370400440532013000", tx.RelatedAcctID.String())
	require.NotNil(t, tx.RelatedBankID)
	assert.Equal(t, "COBADEFFXXX", tx.RelatedBankID.String())

	related, ok := tx.RelatedAccount()
	require.True(t, ok)
	assert.Equal(t, "DE89370400440532013000/COBADEFFXXX", related)
}

func TestParseUnqualifiedDocument(t *testing.T) {
	unqualified := strings.Replace(sampleDocument,
		` xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"`, "", 1)

	statements, err := Parse([]byte(unqualified))
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, "STMT-2024-001", statements[0].ID)
}

func TestParseZeroStatements(t *testing.T) {
	doc := `<?xml version="1.0"?><Document><BkToCstmrStmt><GrpHdr><MsgId>M</MsgId></GrpHdr></BkToCstmrStmt></Document>`
	statements, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, statements)
}

func TestParseInvalidXML(t *testing.T) {
	_, err := Parse([]byte("<Document><unterminated"))
	assert.Error(t, err)
}

func TestParseDocumentOrder(t *testing.T) {
	doc := `<Document><BkToCstmrStmt>` +
		minimalStatement("STMT-A", "ENTRY-A1", "ENTRY-A2") +
		minimalStatement("STMT-B", "ENTRY-B1") +
		`</BkToCstmrStmt></Document>`

	statements, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, statements, 2)
	assert.Equal(t, "STMT-A", statements[0].ID)
	assert.Equal(t, "STMT-B", statements[1].ID)
	require.Len(t, statements[0].Transactions, 2)
	assert.Equal(t, "ENTRY-A1", statements[0].Transactions[0].EntryRef)
	assert.Equal(t, "ENTRY-A2", statements[0].Transactions[1].EntryRef)
	assert.Equal(t, "ENTRY-B1", statements[1].Transactions[0].EntryRef)
}

// minimalStatement builds a valid Stmt block with the given entry refs.
func minimalStatement(id string, entryRefs ...string) string {
	var b strings.Builder
	b.WriteString(`<Stmt><Id>` + id + `</Id>`)
	b.WriteString(`<CreDtTm>2024-02-01T00:06:00Z</CreDtTm>`)
	b.WriteString(`<FrToDt><FrDtTm>2024-01-01T00:00:00Z</FrDtTm><ToDtTm>2024-01-31T23:59:59Z</ToDtTm></FrToDt>`)
	b.WriteString(`<Acct><Id><IBAN>CH9300762011623852957</IBAN></Id></Acct>`)
	for _, ref := range entryRefs {
		b.WriteString(`<Ntry><NtryRef>` + ref + `</NtryRef>`)
		b.WriteString(`<Amt Ccy="EUR">10.00</Amt><CdtDbtInd>CRDT</CdtDbtInd>`)
		b.WriteString(`<ValDt><Dt>2024-01-15</Dt></ValDt></Ntry>`)
	}
	b.WriteString(`</Stmt>`)
	return b.String()
}

func TestParseFileAndConvertToCSV(t *testing.T) {
	tempDir := t.TempDir()
	xmlFile := filepath.Join(tempDir, "statement.xml")
	require.NoError(t, os.WriteFile(xmlFile, []byte(sampleDocument), 0600))

	statements, err := ParseFile(xmlFile)
	require.NoError(t, err)
	require.Len(t, statements, 1)

	csvFile := filepath.Join(tempDir, "out", "statement.csv")
	require.NoError(t, ConvertToCSV(xmlFile, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "statement_id")
	assert.Contains(t, content, "STMT-2024-001")
	assert.Contains(t, content, "ENTRY-1")
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}

func TestBatchConvert(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "good.xml"), []byte(sampleDocument), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad.xml"), []byte("<broken"), 0600))

	count, err := BatchConvert(inputDir, outputDir)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "broken file skipped with a warning")

	_, err = os.Stat(filepath.Join(outputDir, "good.csv"))
	assert.NoError(t, err)
}

func TestValidateFormat(t *testing.T) {
	tempDir := t.TempDir()

	validFile := filepath.Join(tempDir, "valid.xml")
	require.NoError(t, os.WriteFile(validFile, []byte(sampleDocument), 0600))
	valid, err := ValidateFormat(validFile)
	require.NoError(t, err)
	assert.True(t, valid)

	invalidFile := filepath.Join(tempDir, "invalid.xml")
	require.NoError(t, os.WriteFile(invalidFile, []byte(`<Document><Other/></Document>`), 0600))
	valid, err = ValidateFormat(invalidFile)
	require.NoError(t, err)
	assert.False(t, valid)

	notXMLFile := filepath.Join(tempDir, "notxml.xml")
	require.NoError(t, os.WriteFile(notXMLFile, []byte("plain < text"), 0600))
	valid, err = ValidateFormat(notXMLFile)
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = ValidateFormat(filepath.Join(tempDir, "missing.xml"))
	assert.Error(t, err)
}
