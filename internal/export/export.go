// Package export flattens parsed statements into tabular rows, one per
// transaction, for CSV output and downstream analytics. It consumes the
// immutable model produced by the parser and nothing else.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wax13003/CAMT53-parser/internal/dateutils"
	"github.com/wax13003/CAMT53-parser/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var delimiter rune = ','

// SetDelimiter sets the CSV output delimiter.
func SetDelimiter(delim rune) {
	delimiter = delim
}

// Row is one flattened transaction annotated with its parent statement.
// A statement without an opening or closing balance renders the
// corresponding cell empty rather than failing the export.
type Row struct {
	StatementID             string `csv:"statement_id"`
	StatementAccountID      string `csv:"statement_account_id"`
	StatementOpeningBalance string `csv:"statement_opening_balance"`
	StatementClosingBalance string `csv:"statement_closing_balance"`
	EntryRef                string `csv:"transaction_entry_ref"`
	Amount                  string `csv:"transaction_amount"`
	Currency                string `csv:"transaction_currency"`
	Operation               string `csv:"transaction_operation"`
	ValDate                 string `csv:"transaction_val_date"`
	BookDateTime            string `csv:"transaction_book_datetime"`
	BAICode                 string `csv:"transaction_bai_code"`
	RemoteInfo              string `csv:"transaction_remote_info"`
	AdditionalInfo          string `csv:"transaction_additional_transaction_info"`
	RefMessageID            string `csv:"transaction_ref_message_id"`
	RefEndToEndID           string `csv:"transaction_ref_end_to_end_id"`
	RefAccountServicerRef   string `csv:"transaction_ref_account_servicer_ref"`
	RefPaymentInfoID        string `csv:"transaction_ref_payment_info_id"`
	RefInstructionID        string `csv:"transaction_ref_instruction_id"`
	RefMandateID            string `csv:"transaction_ref_mandate_id"`
	RefChequeNumber         string `csv:"transaction_ref_cheque_number"`
	RefClearingSystemRef    string `csv:"transaction_ref_clearing_system_ref"`
	RelatedAccountID        string `csv:"transaction_related_account_id"`
	RelatedBankID           string `csv:"transaction_related_account_bank_id"`
	Info                    string `csv:"transaction_info"`
	RelatedAccount          string `csv:"transaction_related_account"`
}

// Rows flattens every transaction of every statement, preserving document
// order.
func Rows(statements []models.Statement) []Row {
	var rows []Row
	for _, stmt := range statements {
		opening := balanceAmount(stmt.OpeningBalance)
		closing := balanceAmount(stmt.ClosingBalance)
		for _, tx := range stmt.Transactions {
			related, _ := tx.RelatedAccount()
			rows = append(rows, Row{
				StatementID:             stmt.ID,
				StatementAccountID:      stmt.AccountID.String(),
				StatementOpeningBalance: opening,
				StatementClosingBalance: closing,
				EntryRef:                tx.EntryRef,
				Amount:                  tx.Amount.String(),
				Currency:                tx.Currency,
				Operation:               string(tx.Operation),
				ValDate:                 tx.ValDate.Format(dateutils.DateLayoutISO),
				BookDateTime:            tx.BookDateTime,
				BAICode:                 tx.BAICode,
				RemoteInfo:              tx.RemoteInfo,
				AdditionalInfo:          tx.AdditionalInfo,
				RefMessageID:            tx.Ref.MessageID,
				RefEndToEndID:           tx.Ref.EndToEndID,
				RefAccountServicerRef:   tx.Ref.AccountServicerRef,
				RefPaymentInfoID:        tx.Ref.PaymentInfoID,
				RefInstructionID:        tx.Ref.InstructionID,
				RefMandateID:            tx.Ref.MandateID,
				RefChequeNumber:         tx.Ref.ChequeNumber,
				RefClearingSystemRef:    tx.Ref.ClearingSystemRef,
				RelatedAccountID:        identifierString(tx.RelatedAcctID),
				RelatedBankID:           bankString(tx.RelatedBankID),
				Info:                    tx.Info(),
				RelatedAccount:          related,
			})
		}
	}
	return rows
}

// Write writes the flattened rows as CSV with a header line.
func Write(statements []models.Statement, w io.Writer) error {
	rows := Rows(statements)
	writer := csv.NewWriter(w)
	writer.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}

// WriteFile writes the flattened rows to a CSV file, creating parent
// directories as needed.
func WriteFile(statements []models.Statement, csvFile string) error {
	rows := Rows(statements)
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Writing transactions to CSV file")

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Write(statements, file)
}

func balanceAmount(b *models.Balance) string {
	if b == nil {
		return ""
	}
	return b.Amount.String()
}

func identifierString(id *models.AccountID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func bankString(id *models.BankID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
