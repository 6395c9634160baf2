package divcast

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTransactionsSniffsColumns(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"trading212", "Action,Time,Ticker,No. of shares\nMarket buy,2024-01-02,AAPL,10\n"},
		{"alternate names", "Instrument,Shares Owned,Transaction Type\nAAPL,10,Market buy\n"},
		{"case insensitive", "TICKER,no. OF shares,ACTION\nAAPL,10,Market buy\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := ReadTransactions(strings.NewReader(c.csv))
			if err != nil {
				t.Fatalf("ReadTransactions() error = %v", err)
			}
			if len(res.Transactions) != 1 {
				t.Fatalf("len = %d, want 1", len(res.Transactions))
			}
			tx := res.Transactions[0]
			if tx.Ticker != "AAPL" || tx.Action != ActionBuy || !tx.Quantity.Equal(Q(10)) {
				t.Errorf("tx = %+v, want AAPL/BUY/10", tx)
			}
		})
	}
}

func TestReadTransactionsSchemaError(t *testing.T) {
	cases := []struct {
		name    string
		csv     string
		missing string
	}{
		{"no ticker", "Action,No. of shares\nMarket buy,10\n", "ticker"},
		{"no quantity", "Action,Ticker\nMarket buy,AAPL\n", "quantity"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ReadTransactions(strings.NewReader(c.csv))
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("error = %v, want *SchemaError", err)
			}
			if schemaErr.Missing != c.missing {
				t.Errorf("Missing = %q, want %q", schemaErr.Missing, c.missing)
			}
		})
	}
}

func TestReadTransactionsMissingActionColumn(t *testing.T) {
	res, err := ReadTransactions(strings.NewReader("Ticker,No. of shares\nAAPL,10\nMSFT,5\n"))
	if err != nil {
		t.Fatalf("ReadTransactions() error = %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one about the action column", res.Warnings)
	}
	for _, tx := range res.Transactions {
		if tx.Action != ActionOther {
			t.Errorf("tx %s action = %v, want OTHER", tx.Ticker, tx.Action)
		}
	}
	// downstream: no BUYs means nothing to hold
	_, err = ResolvePositions(res.Transactions)
	if !errors.Is(err, ErrNoHoldings) {
		t.Errorf("ResolvePositions() error = %v, want ErrNoHoldings", err)
	}
}

func TestReadTransactionsSkipsBadRows(t *testing.T) {
	in := "Ticker,Action,No. of shares\n" +
		"AAPL,Market buy,10\n" +
		",Market buy,5\n" + // empty ticker
		"MSFT,Market buy,abc\n" + // unreadable quantity
		"GOOG,Market buy,-4\n" // sign belongs to the action
	res, err := ReadTransactions(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTransactions() error = %v", err)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("len = %d, want 2 (AAPL, GOOG)", len(res.Transactions))
	}
	if len(res.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2", res.Warnings)
	}
	goog := res.Transactions[1]
	if !goog.Quantity.Equal(Q(4)) || !goog.Signed().Equal(Q(4)) {
		t.Errorf("GOOG quantity = %v signed %v, want 4 and 4", goog.Quantity, goog.Signed())
	}
}

func TestReadTransactionFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")

	// b repeats the first row of a exactly and adds one new trade
	writeFile(t, a, "Ticker,Action,No. of shares\nAAPL,Market buy,10\nAAPL,Market buy,10\n")
	writeFile(t, b, "Ticker,Action,No. of shares\nAAPL,Market buy,10\nMSFT,Market buy,3\n")

	res, err := ReadTransactionFiles(a, b)
	if err != nil {
		t.Fatalf("ReadTransactionFiles() error = %v", err)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("len = %d, want 2 after deduplication", len(res.Transactions))
	}
	if res.Duplicates != 2 {
		t.Errorf("Duplicates = %d, want 2", res.Duplicates)
	}
}

func TestReadTransactionsEmptyFile(t *testing.T) {
	res, err := ReadTransactions(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadTransactions(empty) error = %v", err)
	}
	if len(res.Transactions) != 0 {
		t.Errorf("len = %d, want 0", len(res.Transactions))
	}
}

func TestWriteTransactionsRoundTrip(t *testing.T) {
	txs := []Transaction{
		{Ticker: "AAPL", Action: ActionBuy, Quantity: Q(10)},
		{Ticker: "AAPL", Action: ActionSell, Quantity: Q(2.5)},
		{Ticker: "MSFT", Action: ActionOther, Quantity: Q(1)},
	}
	var buf bytes.Buffer
	if err := WriteTransactions(&buf, txs); err != nil {
		t.Fatalf("WriteTransactions() error = %v", err)
	}
	res, err := ReadTransactions(&buf)
	if err != nil {
		t.Fatalf("ReadTransactions() error = %v", err)
	}
	if len(res.Transactions) != len(txs) {
		t.Fatalf("round trip len = %d, want %d", len(res.Transactions), len(txs))
	}
	for i, tx := range res.Transactions {
		if tx.Ticker != txs[i].Ticker || tx.Action != txs[i].Action || !tx.Quantity.Equal(txs[i].Quantity) {
			t.Errorf("round trip [%d] = %+v, want %+v", i, tx, txs[i])
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
