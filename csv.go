package divcast

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// This file handles ingestion of broker CSV exports (Trading 212 shape).
// Exports vary in which header names they use, so columns are sniffed from a
// known set of accepted names rather than fixed by index.

var (
	tickerColumns   = []string{"Ticker", "Stock Ticker", "Instrument"}
	quantityColumns = []string{"No. of shares", "Shares", "Shares Owned"}
	actionColumns   = []string{"Action", "Type", "Transaction Type"}
)

// ImportResult is the outcome of reading one or more transaction sources.
type ImportResult struct {
	Transactions []Transaction
	Warnings     []string // non-fatal conditions surfaced to the caller
	Duplicates   int      // raw rows dropped because they repeated an earlier row
}

// findColumn returns the index in header of the first accepted name present,
// or -1 when none matches.
func findColumn(header []string, accepted []string) int {
	for _, name := range accepted {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

// ReadTransactions reads a single CSV export.
//
// The ticker and quantity columns are mandatory; their absence is a
// *SchemaError that halts the import. The action column is optional: without
// it every row is classified ActionOther (a no-op for netting) and a warning
// is recorded.
func ReadTransactions(r io.Reader) (*ImportResult, error) {
	res := &ImportResult{}
	seen := make(map[string]bool)
	if err := readInto(r, res, seen); err != nil {
		return nil, err
	}
	return res, nil
}

// ReadTransactionFiles reads and combines several CSV exports.
// Exact duplicate rows across all files are removed before position
// resolution, mirroring re-uploaded or overlapping exports.
func ReadTransactionFiles(paths ...string) (*ImportResult, error) {
	res := &ImportResult{}
	seen := make(map[string]bool)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open transaction file: %w", err)
		}
		err = readInto(f, res, seen)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", path, err)
		}
	}
	return res, nil
}

// readInto parses one CSV stream and appends its rows to res, skipping rows
// whose full raw content was already seen.
func readInto(r io.Reader, res *ImportResult, seen map[string]bool) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // broker exports pad optional columns inconsistently

	header, err := cr.Read()
	if err == io.EOF {
		return nil // an empty file contributes nothing
	}
	if err != nil {
		return fmt.Errorf("cannot read CSV header: %w", err)
	}

	tickerIdx := findColumn(header, tickerColumns)
	if tickerIdx < 0 {
		return &SchemaError{Missing: "ticker", Header: header}
	}
	qtyIdx := findColumn(header, quantityColumns)
	if qtyIdx < 0 {
		return &SchemaError{Missing: "quantity", Header: header}
	}
	actionIdx := findColumn(header, actionColumns)
	if actionIdx < 0 {
		res.Warnings = append(res.Warnings, "no action column detected: all rows treated as non-trading and ignored for netting")
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cannot read CSV record: %w", err)
		}

		// Duplicate detection keys on the full raw row: two genuinely
		// distinct trades differ somewhere (time, order id), while the same
		// row re-uploaded in a second export is byte-identical.
		key := strings.Join(record, "\x1f")
		if seen[key] {
			res.Duplicates++
			continue
		}
		seen[key] = true

		if tickerIdx >= len(record) || qtyIdx >= len(record) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: too few fields, row skipped", line))
			continue
		}
		ticker := strings.TrimSpace(record[tickerIdx])
		if ticker == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: empty ticker, row skipped", line))
			continue
		}

		qty, err := strconv.ParseFloat(strings.TrimSpace(record[qtyIdx]), 64)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: unreadable quantity %q, row skipped", line, record[qtyIdx]))
			continue
		}
		if qty < 0 {
			// quantities are unsigned in exports; the sign belongs to the action
			qty = -qty
		}

		action := ActionOther
		if actionIdx >= 0 && actionIdx < len(record) {
			action = ParseAction(record[actionIdx])
		}

		res.Transactions = append(res.Transactions, Transaction{
			Ticker:   ticker,
			Action:   action,
			Quantity: Q(qty),
		})
	}
}

// WriteTransactions writes transactions in the canonical combined CSV shape,
// readable back by ReadTransactions.
func WriteTransactions(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Ticker", "Action", "No. of shares"}); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := cw.Write([]string{tx.Ticker, string(tx.Action), tx.Quantity.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
