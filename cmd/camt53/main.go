// Package main provides the entry point for the camt53 CLI application.
package main

import (
	"github.com/wax13003/CAMT53-parser/internal/camtparser"
	"github.com/wax13003/CAMT53-parser/internal/config"
	"github.com/wax13003/CAMT53-parser/internal/export"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log       = logrus.New()
	xmlFile   string
	csvFile   string
	inputDir  string
	outputDir string
	validate  bool
)

var rootCmd = &cobra.Command{
	Use:   "camt53",
	Short: "Convert CAMT.053 XML bank statements to CSV.",
	Long: `camt53 parses ISO 20022 CAMT.053 bank-statement XML documents into a
normalized transaction model and flattens it to CSV rows for analytics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
		log = config.ConfigureLogging()
		camtparser.SetLogger(log)

		if cfg, err := config.InitializeConfig(); err != nil {
			log.WithError(err).Warn("Invalid configuration, using defaults")
		} else {
			export.SetDelimiter(cfg.DelimiterRune())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info("Use --help to see available commands")
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CAMT.053 XML file to CSV",
	Run:   convertFunc,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether an XML file is in CAMT.053 format",
	Run:   validateFunc,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert all CAMT.053 XML files in a directory to CSV",
	Run:   batchFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	log.WithFields(logrus.Fields{
		"input":  xmlFile,
		"output": csvFile,
	}).Info("Converting CAMT.053 XML to CSV")

	if validate {
		valid, err := camtparser.ValidateFormat(xmlFile)
		if err != nil {
			log.Fatalf("Error validating XML file: %v", err)
		}
		if !valid {
			log.Fatal("The XML file is not in valid CAMT.053 format")
		}
	}

	if err := camtparser.ConvertToCSV(xmlFile, csvFile); err != nil {
		log.Fatalf("Error converting XML to CSV: %v", err)
	}
	log.Info("Conversion completed successfully")
}

func validateFunc(cmd *cobra.Command, args []string) {
	valid, err := camtparser.ValidateFormat(xmlFile)
	if err != nil {
		log.Fatalf("Error validating XML file: %v", err)
	}
	if valid {
		log.Info("The XML file is in valid CAMT.053 format")
	} else {
		log.Info("The XML file is NOT in valid CAMT.053 format")
	}
}

func batchFunc(cmd *cobra.Command, args []string) {
	count, err := camtparser.BatchConvert(inputDir, outputDir)
	if err != nil {
		log.Fatalf("Error during batch conversion: %v", err)
	}
	log.Infof("Batch conversion completed, converted %d files", count)
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(batchCmd)

	convertCmd.Flags().StringVarP(&xmlFile, "input", "i", "", "Input XML file (required)")
	convertCmd.Flags().StringVarP(&csvFile, "output", "o", "", "Output CSV file (required)")
	convertCmd.Flags().BoolVarP(&validate, "validate", "v", false, "Validate XML format before conversion")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")

	validateCmd.Flags().StringVarP(&xmlFile, "input", "i", "", "Input XML file to validate (required)")
	_ = validateCmd.MarkFlagRequired("input")

	batchCmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory containing XML files (required)")
	batchCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for CSV files (required)")
	_ = batchCmd.MarkFlagRequired("input")
	_ = batchCmd.MarkFlagRequired("output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
