package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/qafoundry/tracematrix/internal/contract"
)

// writeWithFile handles the common pattern of creating an output file,
// writing to it, and confirming on stderr. It accepts a writer function
// that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, cfg *contract.Config, writer func(io.Writer) error, successMsg string) error {
	if err := contract.EnsureParentDir(outputFile); err != nil {
		return err
	}
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer func() { _ = file.Close() }()

	if err := writer(file); err != nil {
		return err
	}

	if cfg.UseEmojis {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	} else {
		fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}
