// Package camtparser extracts normalized bank statements from CAMT.053 XML
// documents. The schema has many optional subtrees and alternate locations
// for equivalent data; this package enforces exactly the mandatory-field
// rules of the elements it consumes and nothing more (no XSD validation).
package camtparser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wax13003/CAMT53-parser/internal/export"
	"github.com/wax13003/CAMT53-parser/internal/models"
	"github.com/wax13003/CAMT53-parser/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		export.SetLogger(logger)
	}
}

// Parse extracts every statement from a CAMT.053 document, in document
// order. A document with zero statement nodes yields an empty slice, not an
// error. Any violated mandatory-field contract aborts the whole parse.
func Parse(data []byte) ([]models.Statement, error) {
	root, err := xmlutils.LoadDocument(data)
	if err != nil {
		return nil, err
	}

	nodes := xmlutils.FindAll(root, xpathStatement)
	statements := make([]models.Statement, 0, len(nodes))
	for _, node := range nodes {
		stmt, err := ParseStatement(node)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	log.WithField("count", len(statements)).Info("Extracted statements from CAMT.053 document")
	return statements, nil
}

// ParseFile parses a CAMT.053 XML file into its statements.
func ParseFile(xmlFile string) ([]models.Statement, error) {
	log.WithField("file", xmlFile).Info("Parsing CAMT.053 XML file")
	data, err := os.ReadFile(xmlFile)
	if err != nil {
		return nil, fmt.Errorf("error reading XML file: %w", err)
	}
	statements, err := Parse(data)
	if err != nil {
		log.WithError(err).Error("Failed to parse CAMT.053 file")
		return nil, err
	}
	return statements, nil
}

// ConvertToCSV parses a CAMT.053 XML file and writes one CSV row per
// transaction.
func ConvertToCSV(xmlFile, csvFile string) error {
	statements, err := ParseFile(xmlFile)
	if err != nil {
		return err
	}
	return export.WriteFile(statements, csvFile)
}

// BatchConvert converts all XML files in a directory to CSV files. Files
// that fail to convert are skipped with a warning; the count of successful
// conversions is returned.
func BatchConvert(inputDir, outputDir string) (int, error) {
	log.WithFields(logrus.Fields{
		"inputDir":  inputDir,
		"outputDir": outputDir,
	}).Info("Batch converting CAMT.053 XML files")

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.xml"))
	if err != nil {
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	var processed int
	for _, file := range files {
		baseName := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		outputFile := filepath.Join(outputDir, baseName+".csv")

		if err := ConvertToCSV(file, outputFile); err != nil {
			log.WithFields(logrus.Fields{
				"file":  file,
				"error": err,
			}).Warning("Failed to convert file, skipping")
			continue
		}
		processed++
	}

	log.WithField("count", processed).Info("Batch conversion completed")
	return processed, nil
}

// ValidateFormat checks whether a file looks like a CAMT.053 document by
// probing for the statement collection and a statement id. This is a cheap
// structural sniff, not schema validation.
func ValidateFormat(xmlFile string) (bool, error) {
	data, err := os.ReadFile(xmlFile)
	if err != nil {
		return false, fmt.Errorf("error reading XML file: %w", err)
	}

	root, err := xmlutils.LoadDocument(data)
	if err != nil {
		log.WithError(err).Debug("File is not valid XML")
		return false, nil
	}

	if _, ok := xmlutils.FindNode(root, "//BkToCstmrStmt"); !ok {
		log.Debug("Missing BkToCstmrStmt element, not a CAMT.053 file")
		return false, nil
	}
	if _, ok := xmlutils.FindNode(root, "//BkToCstmrStmt/Stmt/Id"); !ok {
		log.Debug("Missing required statement id, not a valid CAMT.053 file")
		return false, nil
	}
	return true, nil
}

// firstExisting returns the first candidate path that matches a node,
// stopping at structural existence regardless of extractable content. The
// precedence rule stays a flat, auditable list rather than nested branches.
func firstExisting(node *xmlpath.Node, candidates ...string) (*xmlpath.Node, bool) {
	for _, expr := range candidates {
		if found, ok := xmlutils.FindNode(node, expr); ok {
			return found, true
		}
	}
	return nil, false
}
